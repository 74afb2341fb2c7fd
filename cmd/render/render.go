/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/stylesheet"
)

// Formats accepted by the parse command.
const (
	FormatText     = "text"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// ValidFormats lists the output formats in help order.
func ValidFormats() []string {
	return []string{FormatText, FormatTable, FormatMarkdown, FormatJSON, FormatYAML}
}

// Row holds computed display values for a single token.
type Row struct {
	Index   int    // Table index
	Kind    string // Token kind
	Text    string // Source text
	Flags   string // Space-separated pseudo-states, selectors only
	Link    string // First linked key index or "-"
	IsColor bool   // Whether this is a value that parses as a color
}

// ComputeRows transforms a token table into display rows.
func ComputeRows(t *stylesheet.Table) []Row {
	rows := make([]Row, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		tok, _ := t.At(i)
		row := Row{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  t.Text(i),
			Flags: tok.Flags.String(),
			Link:  "-",
		}
		if link, ok := t.Link(i); ok {
			row.Link = strconv.Itoa(link)
		}
		if tok.Kind == stylesheet.KindValue {
			if _, err := csscolorparser.Parse(row.Text); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterRows keeps the rows of the given kind. An empty kind keeps all.
// The kind "selector" keeps class, id and wildcard rows.
func FilterRows(rows []Row, kind string) []Row {
	if kind == "" {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Kind == kind || (kind == "selector" && isSelectorKind(r.Kind)) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func isSelectorKind(kind string) bool {
	return kind == "class" || kind == "id" || kind == "wildcard"
}

// columns are the table headings in order.
var columns = []string{"index", "kind", "text", "flags", "link"}

func (r Row) cells() []string {
	return []string{strconv.Itoa(r.Index), r.Kind, r.Text, r.Flags, r.Link}
}

// ColumnWidths calculates the width needed for each column, headings included.
func ColumnWidths(rows []Row) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, r := range rows {
		for i, cell := range r.cells() {
			widths[i] = max(widths[i], len(cell))
		}
	}
	return widths
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table. Color values get a swatch when
// swatches is set.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	widths := ColumnWidths(rows)
	headings := make([]string, len(columns))
	for i, c := range columns {
		headings[i] = toTitleCase(c)
	}
	if _, err := fmt.Fprintln(w, formatLine(widths, headings)); err != nil {
		return err
	}
	for _, r := range rows {
		cells := r.cells()
		if swatches && r.IsColor {
			cells[2] = ColorSwatch(r.Text) + r.Text
		}
		if _, err := fmt.Fprintln(w, formatLine(widths, cells)); err != nil {
			return err
		}
	}
	return nil
}

func formatLine(widths []int, cells []string) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			sb.WriteString(cell)
			break
		}
		fmt.Fprintf(&sb, "%-*s  ", widths[i], cell)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Markdown renders rows as a markdown table.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	widths := ColumnWidths(rows)

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i, cell := range cells {
			fmt.Fprintf(&sb, " %-*s |", widths[i], escapeMarkdown(cell))
		}
		sb.WriteString("\n")
	}

	headings := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		headings[i] = toTitleCase(c)
		rule[i] = strings.Repeat("-", widths[i])
	}
	writeRow(headings)
	writeRow(rule)
	for _, r := range rows {
		writeRow(r.cells())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Text renders the table in stylesheet form.
func Text(w io.Writer, t *stylesheet.Table) error {
	return t.Print(w)
}

// JSON renders the table as an indented JSON array.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML renders v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// StyleView is the serialized form of a resolved draw style.
type StyleView struct {
	BorderWidth float64 `json:"borderWidth" yaml:"borderWidth"`
	BorderStyle string  `json:"borderStyle" yaml:"borderStyle"`
	BorderColor string  `json:"borderColor" yaml:"borderColor"`
	FillOpacity int     `json:"fillOpacity" yaml:"fillOpacity"`
	FillStyle   string  `json:"fillStyle" yaml:"fillStyle"`
	FillColor   string  `json:"fillColor" yaml:"fillColor"`
}

// ViewStyle converts a style for serialization.
func ViewStyle(s drawstyle.Style) StyleView {
	return StyleView{
		BorderWidth: s.BorderWidth,
		BorderStyle: s.BorderStyle.String(),
		BorderColor: s.BorderHex(),
		FillOpacity: s.FillOpacity,
		FillStyle:   s.FillStyle.String(),
		FillColor:   s.FillHex(),
	}
}

// Style renders a resolved draw style as declarations.
func Style(w io.Writer, s drawstyle.Style) error {
	v := ViewStyle(s)
	_, err := fmt.Fprintf(w,
		"%s: %gpx;\n%s: %s;\n%s: %s;\n%s: %d;\n%s: %s;\n%s: %s;\n",
		drawstyle.KeyBorderWidth, v.BorderWidth,
		drawstyle.KeyBorderStyle, v.BorderStyle,
		drawstyle.KeyBorderColor, v.BorderColor,
		drawstyle.KeyFillOpacity, v.FillOpacity,
		drawstyle.KeyFillStyle, v.FillStyle,
		drawstyle.KeyFillColor, v.FillColor,
	)
	return err
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
