/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preview draws a sample shape in a resolved draw style.
package preview

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/fs"
)

// Canvas bounds.
const (
	MinWidth  = 128
	MaxWidth  = 16384
	MinHeight = 96
	MaxHeight = 16384
	MinDPI    = 72
	MaxDPI    = 1200

	DefaultWidth  = 3840
	DefaultHeight = 2160
	DefaultDPI    = 300
)

// Options sizes the canvas. Zero fields take the defaults.
type Options struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	DPI    int `yaml:"dpi" json:"dpi"`
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	return o
}

// Validate checks the options against the canvas bounds.
func (o Options) Validate() error {
	o = o.withDefaults()
	if o.Width < MinWidth || o.Width > MaxWidth {
		return fmt.Errorf("width %d out of range %d-%d", o.Width, MinWidth, MaxWidth)
	}
	if o.Height < MinHeight || o.Height > MaxHeight {
		return fmt.Errorf("height %d out of range %d-%d", o.Height, MinHeight, MaxHeight)
	}
	if o.DPI < MinDPI || o.DPI > MaxDPI {
		return fmt.Errorf("dpi %d out of range %d-%d", o.DPI, MinDPI, MaxDPI)
	}
	return nil
}

// point is in unit coordinates, y down.
type point struct{ x, y float64 }

// The sample: an outer ring with one hole, like a polygon record with two parts.
var (
	outerRing = []point{
		{0.10, 0.20}, {0.45, 0.08}, {0.88, 0.18}, {0.92, 0.62},
		{0.70, 0.90}, {0.30, 0.86}, {0.08, 0.58},
	}
	innerRing = []point{
		{0.38, 0.38}, {0.62, 0.36}, {0.64, 0.60}, {0.40, 0.62},
	}
)

// Draw renders the sample shape in style to a new context.
func Draw(style drawstyle.Style, opts Options) (*gg.Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	scale := float64(opts.DPI) / 72

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFillRuleEvenOdd()

	w, h := float64(opts.Width), float64(opts.Height)
	tracePath(dc, w, h)

	fill := style.FillColor
	switch style.FillStyle {
	case drawstyle.LineSolid:
		dc.SetRGBA(fill.R, fill.G, fill.B, style.Alpha())
		dc.FillPreserve()
	case drawstyle.LineDashed:
		dc.Clip()
		dc.SetRGBA(fill.R, fill.G, fill.B, style.Alpha())
		dc.SetLineWidth(scale)
		step := 8 * scale
		for x := -h; x < w; x += step {
			dc.DrawLine(x, 0, x+h, h)
		}
		dc.Stroke()
		dc.ResetClip()
		tracePath(dc, w, h)
	}

	if style.BorderStyle == drawstyle.LineNone || style.BorderWidth == 0 {
		dc.ClearPath()
		return dc, nil
	}
	border := style.BorderColor
	dc.SetRGB(border.R, border.G, border.B)
	dc.SetLineWidth(style.BorderWidth * scale)
	if style.BorderStyle == drawstyle.LineDashed {
		dash := 4 * style.BorderWidth * scale
		dc.SetDash(dash, dash/2)
	}
	dc.Stroke()
	dc.SetDash()
	return dc, nil
}

func tracePath(dc *gg.Context, w, h float64) {
	for _, ring := range [][]point{outerRing, innerRing} {
		dc.NewSubPath()
		for i, p := range ring {
			if i == 0 {
				dc.MoveTo(p.x*w, p.y*h)
			} else {
				dc.LineTo(p.x*w, p.y*h)
			}
		}
		dc.ClosePath()
	}
}

// Render draws the sample and encodes it as PNG to out.
func Render(out io.Writer, style drawstyle.Style, opts Options) error {
	dc, err := Draw(style, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(out)
}

// RenderFile draws the sample into a PNG file.
func RenderFile(filesystem fs.FileSystem, path string, style drawstyle.Style, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, style, opts); err != nil {
		return err
	}
	if err := filesystem.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
