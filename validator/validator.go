/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks the declarations of a compiled stylesheet
// against the draw style vocabulary.
package validator

import (
	"fmt"
	"strings"

	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/stylesheet"
)

// ValidationError represents a problem with one token.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Selector is the selector whose block holds the problem.
	Selector string
	// Offset is the byte offset of the offending token in the source.
	Offset int
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "offset %d: ", e.Offset)
	if e.Selector != "" {
		sb.WriteString(e.Selector)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// knownKeys are the declaration keys the draw style understands.
var knownKeys = []string{
	drawstyle.KeyBorderWidth,
	drawstyle.KeyBorderStyle,
	drawstyle.KeyBorderColor,
	drawstyle.KeyFillOpacity,
	drawstyle.KeyFillStyle,
	drawstyle.KeyFillColor,
}

// Validate checks every selector block of t.
// Returns errors for:
// - Selectors without a declaration block
// - Keys the draw style does not understand
// - Values the draw style cannot interpret
// - Keys declared twice in one block
func Validate(t *stylesheet.Table) []ValidationError {
	return ValidateWithPath(t, "")
}

// ValidateWithPath validates t and includes file path in errors.
func ValidateWithPath(t *stylesheet.Table, filePath string) []ValidationError {
	var errors []ValidationError
	checked := make(map[int]bool)

	for i := 0; i < t.Len(); i++ {
		if !t.IsSelector(i) {
			continue
		}
		selector := t.Text(i)
		first, ok := t.Link(i)
		if !ok {
			offset, _ := t.Span(i)
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Selector:   selector,
				Offset:     offset,
				Message:    "selector has no declarations",
				Suggestion: "add a declaration block or remove the selector",
			})
			continue
		}
		// Selectors sharing a block report its problems once.
		if checked[first] {
			continue
		}
		checked[first] = true
		errors = append(errors, validateBlock(t, first, selector, filePath)...)
	}

	return errors
}

func validateBlock(t *stylesheet.Table, first int, selector, filePath string) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]bool)

	for k := first; k+1 < t.Len() && t.Kind(k) == stylesheet.KindKey; k += 2 {
		key, value := strings.ToLower(t.Text(k)), t.Text(k+1)
		offset, _ := t.Span(k)

		if !isKnownKey(key) {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Selector:   selector,
				Offset:     offset,
				Message:    fmt.Sprintf("unknown key %q", key),
				Suggestion: suggestKey(key),
			})
			continue
		}

		if seen[key] {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Selector:   selector,
				Offset:     offset,
				Message:    fmt.Sprintf("%s declared more than once", key),
				Suggestion: "the last value wins; remove the others",
			})
		}
		seen[key] = true

		style := drawstyle.Default()
		if err := style.Apply(key, value); err != nil {
			valueOffset, _ := t.Span(k + 1)
			errors = append(errors, ValidationError{
				FilePath: filePath,
				Selector: selector,
				Offset:   valueOffset,
				Message:  err.Error(),
			})
		}
	}

	return errors
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// suggestKey proposes the known key closest to key, if any is close.
func suggestKey(key string) string {
	best, bestDist := "", 3
	for _, k := range knownKeys {
		if d := distance(key, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best == "" {
		return "known keys: " + strings.Join(knownKeys, ", ")
	}
	return fmt.Sprintf("did you mean %s?", best)
}

// distance is the Levenshtein distance between a and b.
func distance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
