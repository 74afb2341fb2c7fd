/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"fmt"
	"io"
	"strings"
)

// Flags is a set of pseudo-states attached to a selector.
type Flags uint16

// Pseudo-state bits, in vocabulary order.
const (
	FlagReadonly Flags = 1 << iota
	FlagHidden
	FlagHilight
	FlagPickup
	FlagDragging
	FlagDeleting
	FlagFault
	FlagFlash
	FlagZoomin
	FlagZoomout
	FlagPanning

	// FlagNone is the empty set, also returned for unknown names.
	FlagNone Flags = 0
)

// flagNames maps bit i to its pseudo-state name. At most 16 entries.
var flagNames = [...]string{
	"readonly",
	"hidden",
	"hilight",
	"pickup",
	"dragging",
	"deleting",
	"fault",
	"flash",
	"zoomin",
	"zoomout",
	"panning",
}

// Names shorter or longer than any vocabulary entry are rejected before lookup.
const (
	minFlagNameLen = 4
	maxFlagNameLen = 10
)

// FlagVocabulary returns the pseudo-state names in bit order.
func FlagVocabulary() []string {
	return append([]string(nil), flagNames[:]...)
}

// LookupFlag returns the bit for a pseudo-state name, or FlagNone.
func LookupFlag(name []byte) Flags {
	if len(name) < minFlagNameLen || len(name) > maxFlagNameLen {
		return FlagNone
	}
	for i, n := range flagNames {
		if len(n) == len(name) && n == string(name) {
			return 1 << i
		}
	}
	return FlagNone
}

// ParseFlags resolves pseudo-state names into a mask.
// Each argument may itself hold several names separated by spaces, commas or pipes.
func ParseFlags(words ...string) (Flags, error) {
	var mask Flags
	for _, w := range words {
		for _, name := range strings.FieldsFunc(w, isFlagSeparator) {
			bit := LookupFlag([]byte(name))
			if bit == FlagNone {
				return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
			}
			mask |= bit
		}
	}
	return mask, nil
}

func isFlagSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '|'
}

// FlagNames renders mask as names in vocabulary order, each followed by a space,
// then a NUL terminator.
//
// With a nil buf it returns the buffer size required, terminator included.
// Otherwise it fills buf and returns the number of bytes written before the
// terminator, or io.ErrShortBuffer when buf is smaller than required.
func FlagNames(mask Flags, buf []byte) (int, error) {
	size := 1
	for i, n := range flagNames {
		if mask&(1<<i) != 0 {
			size += len(n) + 1
		}
	}
	if buf == nil {
		return size, nil
	}
	if len(buf) < size {
		return 0, io.ErrShortBuffer
	}
	n := len(AppendFlagNames(buf[:0], mask))
	buf[n] = 0
	return n, nil
}

// AppendFlagNames appends the names in mask to dst, each followed by a space.
func AppendFlagNames(dst []byte, mask Flags) []byte {
	for i, n := range flagNames {
		if mask&(1<<i) != 0 {
			dst = append(dst, n...)
			dst = append(dst, ' ')
		}
	}
	return dst
}

// Names returns the names of the pseudo-states in f.
func (f Flags) Names() []string {
	var names []string
	for i, n := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return names
}

// String returns the space-separated names in f.
func (f Flags) String() string {
	return strings.Join(f.Names(), " ")
}

// Has reports whether every bit of other is set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}
