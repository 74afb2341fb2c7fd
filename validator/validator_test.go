/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"strings"
	"testing"

	"mapaware.top/shapestyle/stylesheet"
	"mapaware.top/shapestyle/testutil"
	"mapaware.top/shapestyle/validator"
)

func compile(t *testing.T, css string) *stylesheet.Table {
	t.Helper()
	src, err := stylesheet.NewSource(css)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table, err := stylesheet.Compile(src, stylesheet.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func TestValidate_Fixture(t *testing.T) {
	src, err := stylesheet.NewSourceBytes(testutil.LoadFixtureFile(t, "fixtures/stylesheets/shapes.css"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table, err := stylesheet.Compile(src, stylesheet.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if errors := validator.Validate(table); len(errors) != 0 {
		t.Errorf("expected no errors for the fixture, got %d: %v", len(errors), errors)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		css        string
		message    string
		suggestion string
		offset     int
	}{
		{
			name:       "misspelled key",
			css:        ".a { border-widht: 3px; }",
			message:    `unknown key "border-widht"`,
			suggestion: "did you mean border-width?",
			offset:     5,
		},
		{
			name:       "unrelated key",
			css:        ".a { font: serif; }",
			message:    `unknown key "font"`,
			suggestion: "known keys:",
			offset:     5,
		},
		{
			name:    "malformed value",
			css:     ".a { fill-opacity: lots; }",
			message: "fill-opacity",
			offset:  19,
		},
		{
			name:       "duplicate key",
			css:        ".a { fill-style: solid; fill-style: none; }",
			message:    "fill-style declared more than once",
			suggestion: "the last value wins",
			offset:     24,
		},
		{
			name:       "trailing selector without block",
			css:        ".a { border-width: 1px; } .b {}",
			message:    "selector has no declarations",
			suggestion: "add a declaration block",
			offset:     26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := validator.ValidateWithPath(compile(t, tt.css), "shapes.css")
			if len(errors) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errors), errors)
			}
			got := errors[0]
			if !strings.Contains(got.Message, tt.message) {
				t.Errorf("message %q does not contain %q", got.Message, tt.message)
			}
			if !strings.Contains(got.Suggestion, tt.suggestion) {
				t.Errorf("suggestion %q does not contain %q", got.Suggestion, tt.suggestion)
			}
			if got.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", got.Offset, tt.offset)
			}
			if !strings.HasPrefix(got.Error(), "shapes.css: offset ") {
				t.Errorf("unexpected Error() %q", got.Error())
			}
		})
	}
}

func TestValidate_SharedBlockReportedOnce(t *testing.T) {
	errors := validator.Validate(compile(t, ".a, .b, #c { colour: red; }"))
	if len(errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errors), errors)
	}
	if errors[0].Selector != ".a" {
		t.Errorf("expected the first selector, got %q", errors[0].Selector)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &validator.ValidationError{Offset: 3, Message: "bad"}
	if got := err.Error(); got != "offset 3: bad" {
		t.Errorf("Error() = %q", got)
	}
}
