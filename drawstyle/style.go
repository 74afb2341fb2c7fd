/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package drawstyle turns the declarations of a compiled stylesheet into the
// draw style a shape renderer consumes.
package drawstyle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"mapaware.top/shapestyle/stylesheet"
)

// LineStyle is how a border or a fill is drawn.
type LineStyle int

const (
	LineNone LineStyle = iota
	LineSolid
	LineDashed
)

func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	}
	return "none"
}

// ParseLineStyle accepts none, solid, dash and dashed.
func ParseLineStyle(value string) (LineStyle, error) {
	switch strings.ToLower(value) {
	case "none":
		return LineNone, nil
	case "solid":
		return LineSolid, nil
	case "dash", "dashed":
		return LineDashed, nil
	}
	return LineNone, fmt.Errorf("unknown line style %q", value)
}

// MarshalText implements encoding.TextMarshaler.
func (s LineStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Style is the resolved look of one shape.
type Style struct {
	BorderWidth float64        `json:"borderWidth" yaml:"borderWidth"`
	BorderStyle LineStyle      `json:"borderStyle" yaml:"borderStyle"`
	BorderColor colorful.Color `json:"-" yaml:"-"`
	FillOpacity int            `json:"fillOpacity" yaml:"fillOpacity"` // 0-100
	FillStyle   LineStyle      `json:"fillStyle" yaml:"fillStyle"`
	FillColor   colorful.Color `json:"-" yaml:"-"`
}

// Declaration keys understood by Apply.
const (
	KeyBorderWidth = "border-width"
	KeyBorderStyle = "border-style"
	KeyBorderColor = "border-color"
	KeyFillOpacity = "fill-opacity"
	KeyFillStyle   = "fill-style"
	KeyFillColor   = "fill-color"
)

// Default returns a 1px solid black border around an opaque white fill.
func Default() Style {
	return Style{
		BorderWidth: 1,
		BorderStyle: LineSolid,
		BorderColor: colorful.Color{R: 0, G: 0, B: 0},
		FillOpacity: 100,
		FillStyle:   LineSolid,
		FillColor:   colorful.Color{R: 1, G: 1, B: 1},
	}
}

// Apply sets the field named by key. Unknown keys are ignored.
// On a malformed value the field keeps its previous value.
func (s *Style) Apply(key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case KeyBorderWidth:
		var w float64
		if w, err = parseWidth(value); err == nil {
			s.BorderWidth = w
		}
	case KeyBorderStyle:
		var ls LineStyle
		if ls, err = ParseLineStyle(value); err == nil {
			s.BorderStyle = ls
		}
	case KeyBorderColor:
		var c colorful.Color
		if c, err = parseColor(value); err == nil {
			s.BorderColor = c
		}
	case KeyFillOpacity:
		var o int
		if o, err = parseOpacity(value); err == nil {
			s.FillOpacity = o
		}
	case KeyFillStyle:
		var ls LineStyle
		if ls, err = ParseLineStyle(value); err == nil {
			s.FillStyle = ls
		}
	case KeyFillColor:
		var c colorful.Color
		if c, err = parseColor(value); err == nil {
			s.FillColor = c
		}
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Resolve starts from Default and applies, in table order, the declarations
// of every selector matching selectors in pseudo-state state. Later
// declarations win. Every malformed value is reported in the joined error;
// the returned Style is usable either way.
func Resolve(t *stylesheet.Table, selectors []string, state stylesheet.Flags) (Style, error) {
	style := Default()
	var errs []error
	for _, i := range t.Match(selectors, state) {
		for key, value := range t.Declarations(i) {
			if err := style.Apply(key, value); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", t.Text(i), err))
			}
		}
	}
	return style, errors.Join(errs...)
}

// BorderHex returns the border color as #rrggbb.
func (s Style) BorderHex() string {
	return s.BorderColor.Hex()
}

// FillHex returns the fill color as #rrggbb.
func (s Style) FillHex() string {
	return s.FillColor.Hex()
}

// Alpha returns the fill opacity as a fraction.
func (s Style) Alpha() float64 {
	return float64(s.FillOpacity) / 100
}

func parseWidth(value string) (float64, error) {
	v := strings.TrimSpace(strings.TrimSuffix(strings.ToLower(value), "px"))
	w, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q", value)
	}
	if w < 0 {
		return 0, fmt.Errorf("negative width %q", value)
	}
	return w, nil
}

func parseOpacity(value string) (int, error) {
	o, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(value, "%")))
	if err != nil {
		return 0, fmt.Errorf("invalid opacity %q", value)
	}
	if o < 0 || o > 100 {
		return 0, fmt.Errorf("opacity %d out of range 0-100", o)
	}
	return o, nil
}

func parseColor(value string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}
