/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"errors"
	"strings"
	"testing"

	"mapaware.top/shapestyle/internal/mapfs"
	"mapaware.top/shapestyle/stylesheet"
)

func TestIsInline(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{".a { k: v; }", true},
		{"* {}", true},
		{"{ k: v; }", false},
		{"styles/shapes.css", false},
		{".a {", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			if got := stylesheet.IsInline(tt.arg); got != tt.want {
				t.Errorf("IsInline(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestStylesheetPath(t *testing.T) {
	tests := map[string]string{
		"file:///srv/shapes.css": "/srv/shapes.css",
		"C:\\styles\\a.css":      "C:/styles/a.css",
		"relative.css":           "relative.css",
	}
	for in, want := range tests {
		if got := stylesheet.StylesheetPath(in); got != want {
			t.Errorf("StylesheetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpen(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/srv/a.css", ".a { k: v; }", 0644)

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "inline", arg: "#1 { x: y; }", want: "#1 { x: y; }"},
		{name: "path", arg: "/srv/a.css", want: ".a { k: v; }"},
		{name: "file uri", arg: "file:///srv/a.css", want: ".a { k: v; }"},
		{name: "missing", arg: "/srv/b.css", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := stylesheet.Open(mfs, tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if src.String() != tt.want {
				t.Errorf("want %q, got %q", tt.want, src.String())
			}
		})
	}
}

func TestSourceSize(t *testing.T) {
	if _, err := stylesheet.NewSource(strings.Repeat(" ", stylesheet.MaxSourceSize-1)); err != nil {
		t.Errorf("unexpected error below the limit: %v", err)
	}
	_, err := stylesheet.NewSource(strings.Repeat(" ", stylesheet.MaxSourceSize))
	if !errors.Is(err, stylesheet.ErrSourceTooLarge) {
		t.Errorf("expected ErrSourceTooLarge, got %v", err)
	}

	mfs := mapfs.New()
	mfs.AddFile("big.css", strings.Repeat(" ", stylesheet.MaxSourceSize), 0644)
	if _, err := stylesheet.ReadFile(mfs, "big.css"); !errors.Is(err, stylesheet.ErrSourceTooLarge) {
		t.Errorf("expected ErrSourceTooLarge from ReadFile, got %v", err)
	}

	_, err = stylesheet.ReadSource(strings.NewReader(strings.Repeat(" ", stylesheet.MaxSourceSize+10)))
	if !errors.Is(err, stylesheet.ErrSourceTooLarge) {
		t.Errorf("expected ErrSourceTooLarge from ReadSource, got %v", err)
	}
}

func TestSourceStopsAtNUL(t *testing.T) {
	src, err := stylesheet.NewSource(".a { k: v; }\x00.b { x: y; }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Len() != 12 {
		t.Errorf("expected 12 bytes, got %d", src.Len())
	}
	table, err := stylesheet.Compile(src, stylesheet.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("expected 3 tokens, got %d", table.Len())
	}
}

func TestSourceText(t *testing.T) {
	src, _ := stylesheet.NewSource("abcdef")
	if got := src.Text(1, 3); got != "bcd" {
		t.Errorf("Text(1,3) = %q", got)
	}
	if got := src.Text(4, 5); got != "" {
		t.Errorf("out of range Text = %q", got)
	}
}
