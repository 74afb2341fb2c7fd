/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"bytes"
	"fmt"

	"mapaware.top/shapestyle/internal/logger"
)

// selectorWord is one word of a selector list. Offsets are relative to the list.
type selectorWord struct {
	offset int
	length int
	kind   Kind // KindNone for a plain (pseudo-state) word
	flags  Flags
}

func isSelectorDelimiter(c byte) bool {
	return c == ' ' || c == ',' || c == '|' || c == 0
}

// splitSelectorList breaks list into words on space, comma, pipe and NUL.
func splitSelectorList(list []byte) []selectorWord {
	var words []selectorWord
	start := -1
	for i, c := range list {
		if isSelectorDelimiter(c) {
			if start >= 0 {
				words = append(words, selectorWord{offset: start, length: i - start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, selectorWord{offset: start, length: len(list) - start})
	}
	return words
}

// resolveSelectors classifies the words of a selector list and gives each
// selector the union of the pseudo-states named in its comma-group.
//
//	.a .b hidden hilight {}   .a and .b are both hidden and hilight
//	.a hidden, .b hilight {}  .a is hidden, .b is hilight
func resolveSelectors(list []byte, opts Options) ([]selectorWord, error) {
	words := splitSelectorList(list)

	for i := range words {
		w := &words[i]
		w.kind = KindOf(list[w.offset])
		if w.kind.IsSelector() {
			continue
		}
		w.flags = LookupFlag(list[w.offset : w.offset+w.length])
		if w.flags == FlagNone {
			name := list[w.offset : w.offset+w.length]
			if opts.Strict {
				return nil, fmt.Errorf("%w: %q in selector list %q", ErrUnknownFlag, name, list)
			}
			logger.Debug("unknown pseudo-state %q in selector list %q", name, list)
		}
	}

	for i := range words {
		sel := &words[i]
		if !sel.kind.IsSelector() {
			continue
		}
		groupStart := bytes.LastIndexByte(list[:sel.offset], ',') + 1
		groupEnd := len(list)
		if c := bytes.IndexByte(list[sel.offset+sel.length:], ','); c >= 0 {
			groupEnd = sel.offset + sel.length + c
		}
		for _, w := range words {
			if w.kind.IsSelector() || w.offset < groupStart || w.offset >= groupEnd {
				continue
			}
			sel.flags |= w.flags
		}
	}

	return words, nil
}
