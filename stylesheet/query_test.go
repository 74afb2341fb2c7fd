/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"maps"
	"testing"

	"github.com/google/go-cmp/cmp"
	"mapaware.top/shapestyle/stylesheet"
)

func TestLookup(t *testing.T) {
	table := compileFixture(t)

	tests := []struct {
		selector string
		want     []int
	}{
		{".polygon", []int{0, 13}},
		{".line", []int{14}},
		{"*", []int{17}},
		{"#123", []int{22}},
		{".missing", nil},
		{"polygon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, table.Lookup(tt.selector)); diff != "" {
				t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	table := compileFixture(t)

	tests := []struct {
		name      string
		selectors []string
		state     stylesheet.Flags
		want      []int
	}{
		{"plain polygon", []string{".polygon"}, stylesheet.FlagNone, []int{0, 17}},
		{"hilighted polygon", []string{".polygon"}, stylesheet.FlagHilight, []int{0, 13, 17}},
		{"hilighted and hidden", []string{".polygon"}, stylesheet.FlagHilight | stylesheet.FlagHidden, []int{0, 13, 17}},
		{"line not dragging", []string{".line"}, stylesheet.FlagHilight, []int{17}},
		{"line dragging", []string{".line"}, stylesheet.FlagDragging, []int{14, 17}},
		{"polygon with id", []string{".polygon", "#123"}, stylesheet.FlagNone, []int{0, 17, 22}},
		{"unknown selector", []string{".circle"}, stylesheet.FlagNone, []int{17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, table.Match(tt.selectors, tt.state)); diff != "" {
				t.Errorf("Match mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeclarations(t *testing.T) {
	table := compileFixture(t)

	got := maps.Collect(table.Declarations(17))
	want := map[string]string{"border-width": "4px", "border-style": "dash"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Declarations mismatch (-want +got):\n%s", diff)
	}

	var keys []string
	for k := range table.Declarations(0) {
		keys = append(keys, k)
		if len(keys) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"border-width", "border-style"}, keys); diff != "" {
		t.Errorf("early break mismatch (-want +got):\n%s", diff)
	}

	for k, v := range table.Declarations(1) {
		t.Errorf("key token has declarations: %s: %s", k, v)
	}
}

func TestTableAccessors(t *testing.T) {
	table := compileFixture(t)

	if table.Len() != 25 || table.Cap() != 25 {
		t.Fatalf("expected 25/25 tokens, got %d/%d", table.Len(), table.Cap())
	}
	if !table.IsSelector(0) || table.IsSelector(1) {
		t.Error("IsSelector mismatch")
	}
	if k := table.Kind(100); k != stylesheet.KindNone {
		t.Errorf("expected KindNone out of range, got %v", k)
	}
	if f := table.Flags(14); f != stylesheet.FlagDragging {
		t.Errorf("expected dragging, got %v", f)
	}
	if link, ok := table.Link(14); !ok || link != 15 {
		t.Errorf("expected link 15, got %d %v", link, ok)
	}
	if link, ok := table.Link(15); ok || link != -1 {
		t.Errorf("expected no link for a key, got %d %v", link, ok)
	}
	off, n := table.Span(0)
	if got := table.Source().Text(off, n); got != ".polygon" {
		t.Errorf("span text = %q", got)
	}
	if _, ok := table.At(25); ok {
		t.Error("At past Len reported ok")
	}

	toks := table.Tokens()
	toks[0].Link = 99
	if link, _ := table.Link(0); link == 99 {
		t.Error("Tokens did not return a copy")
	}
}

func TestNewTable(t *testing.T) {
	if _, err := stylesheet.NewTable(-1); err == nil {
		t.Error("expected error for negative capacity")
	}
	if _, err := stylesheet.NewTable(stylesheet.MaxTokens); err == nil {
		t.Error("expected error at MaxTokens")
	}
	table, err := stylesheet.NewTable(stylesheet.MaxTokens - 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 0 || table.Cap() != stylesheet.MaxTokens-1 {
		t.Errorf("unexpected table %d/%d", table.Len(), table.Cap())
	}
}
