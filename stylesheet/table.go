/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import "fmt"

// Kind classifies a token.
type Kind uint8

const (
	KindNone Kind = iota
	KindClass
	KindID
	KindWildcard
	KindKey
	KindValue
)

// KindOf returns the selector kind introduced by a leading byte, or KindNone.
func KindOf(leading byte) Kind {
	switch leading {
	case '.':
		return KindClass
	case '#':
		return KindID
	case '*':
		return KindWildcard
	}
	return KindNone
}

// IsSelector reports whether k is a class, id or wildcard selector.
func (k Kind) IsSelector() bool {
	return k == KindClass || k == KindID || k == KindWildcard
}

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindID:
		return "id"
	case KindWildcard:
		return "wildcard"
	case KindKey:
		return "key"
	case KindValue:
		return "value"
	}
	return "none"
}

// Token is one selector, key or value: a span of the Source plus metadata.
type Token struct {
	Kind   Kind
	Flags  Flags // selectors only
	Offset int
	Length int

	// Link is, for selectors, the index of the first key of the selector's
	// declaration block. Zero means unresolved; keys and values keep zero.
	Link int
}

// Table is a fixed-capacity token table filled by Parse.
// It never grows: a larger table needs a new Table and another Parse.
type Table struct {
	tokens []Token
	used   int
	src    *Source
}

// NewTable allocates a table with room for capacity tokens.
func NewTable(capacity int) (*Table, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("negative table capacity %d", capacity)
	}
	if capacity >= MaxTokens {
		return nil, fmt.Errorf("%w: capacity %d (limit %d)", ErrTooManyTokens, capacity, MaxTokens-1)
	}
	return &Table{tokens: make([]Token, capacity)}, nil
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return len(t.tokens)
}

// Len returns the number of slots in use after a successful Parse.
func (t *Table) Len() int {
	return t.used
}

// Source returns the Source the table was last parsed from.
func (t *Table) Source() *Source {
	return t.src
}

// At returns token i. ok is false past the used count.
func (t *Table) At(i int) (tok Token, ok bool) {
	if i < 0 || i >= t.used {
		return Token{}, false
	}
	return t.tokens[i], true
}

// Kind returns the kind of token i, or KindNone out of range.
func (t *Table) Kind(i int) Kind {
	tok, _ := t.At(i)
	return tok.Kind
}

// Flags returns the pseudo-state mask of token i.
func (t *Table) Flags(i int) Flags {
	tok, _ := t.At(i)
	return tok.Flags
}

// Span returns the source offset and length of token i.
func (t *Table) Span(i int) (offset, length int) {
	tok, _ := t.At(i)
	return tok.Offset, tok.Length
}

// IsSelector reports whether token i is a selector.
func (t *Table) IsSelector(i int) bool {
	return t.Kind(i).IsSelector()
}

// Link returns the index of the first key linked from selector i.
// ok is false when the selector has no resolved declarations.
func (t *Table) Link(i int) (index int, ok bool) {
	tok, found := t.At(i)
	if !found || tok.Link == 0 {
		return -1, false
	}
	return tok.Link, true
}

// Text returns the source text of token i.
func (t *Table) Text(i int) string {
	tok, ok := t.At(i)
	if !ok || t.src == nil {
		return ""
	}
	return t.src.Text(tok.Offset, tok.Length)
}

// Tokens returns a copy of the used tokens.
func (t *Table) Tokens() []Token {
	return append([]Token(nil), t.tokens[:t.used]...)
}
