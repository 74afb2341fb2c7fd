/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"strings"
	"testing"

	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/stylesheet"
	"mapaware.top/shapestyle/testutil"
)

func compileFixture(t *testing.T) *stylesheet.Table {
	t.Helper()
	src, err := stylesheet.NewSourceBytes(testutil.LoadFixtureFile(t, "fixtures/stylesheets/shapes.css"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table, err := stylesheet.Compile(src, stylesheet.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"index", "Index"},
		{"kind", "Kind"},
		{"link", "Link"},
		{"fill-color", "Fill-Color"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestComputeRows(t *testing.T) {
	rows := ComputeRows(compileFixture(t))
	if len(rows) != 25 {
		t.Fatalf("expected 25 rows, got %d", len(rows))
	}

	tests := []struct {
		index int
		want  Row
	}{
		{0, Row{Index: 0, Kind: "class", Text: ".polygon", Link: "1"}},
		{6, Row{Index: 6, Kind: "value", Text: "#FFFF00", Link: "-", IsColor: true}},
		{2, Row{Index: 2, Kind: "value", Text: "3px", Link: "-"}},
		{14, Row{Index: 14, Kind: "class", Text: ".line", Flags: "dragging", Link: "15"}},
	}
	for _, tt := range tests {
		if rows[tt.index] != tt.want {
			t.Errorf("row %d = %+v, want %+v", tt.index, rows[tt.index], tt.want)
		}
	}
}

func TestFilterRows(t *testing.T) {
	rows := ComputeRows(compileFixture(t))

	tests := []struct {
		kind string
		want int
	}{
		{"", 25},
		{"selector", 5},
		{"class", 3},
		{"id", 1},
		{"wildcard", 1},
		{"key", 10},
		{"value", 10},
		{"bogus", 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := len(FilterRows(rows, tt.kind)); got != tt.want {
				t.Errorf("FilterRows(%q) kept %d rows, want %d", tt.kind, got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	rows := FilterRows(ComputeRows(compileFixture(t)), "selector")
	var buf bytes.Buffer
	if err := Table(&buf, rows, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.CheckGolden(t, "golden/selectors-table.txt", buf.Bytes())
}

func TestTable_Swatches(t *testing.T) {
	rows := ComputeRows(compileFixture(t))
	var buf bytes.Buffer
	if err := Table(&buf, rows, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[48;2;255;255;0m") {
		t.Error("expected a swatch for #FFFF00")
	}
}

func TestMarkdown(t *testing.T) {
	src, _ := stylesheet.NewSource(".a hilight { k: a|b; }")
	table, err := stylesheet.Compile(src, stylesheet.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Markdown(&buf, ComputeRows(table)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "| Index | Kind  |") {
		t.Errorf("unexpected heading %q", lines[0])
	}
	if !strings.Contains(lines[4], `a\|b`) {
		t.Errorf("expected escaped pipe in %q", lines[4])
	}
}

func TestStyle(t *testing.T) {
	var buf bytes.Buffer
	if err := Style(&buf, drawstyle.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "border-width: 1px;\nborder-style: solid;\nborder-color: #000000;\n" +
		"fill-opacity: 100;\nfill-style: solid;\nfill-color: #ffffff;\n"
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, ViewStyle(drawstyle.Default())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "fillColor: '#ffffff'") {
		t.Errorf("unexpected YAML:\n%s", buf.String())
	}
}
