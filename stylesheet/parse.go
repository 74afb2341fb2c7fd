/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stylesheet compiles the shape style dialect, a small CSS-like
// language, into a flat token table.
//
// A stylesheet is a sequence of blocks:
//
//	.polygon hilight, #123 { border-width: 3px; fill-color: #00FFFF; }
//
// Selectors start with '.', '#' or '*'. Plain words in a selector list are
// pseudo-states (see FlagVocabulary) and attach to every selector in the same
// comma-separated group. Tokens are spans of the Source, not copies.
//
// Tables are sized by the caller in two phases: Parse with a nil table
// reports the count it needs (as a negative number), then Parse into a
// table of that capacity fills it. Compile does both.
package stylesheet

import (
	"bytes"
	"fmt"

	"mapaware.top/shapestyle/internal/logger"
)

// Options configures parsing.
type Options struct {
	// Strict turns tolerated oddities into errors: blocks without a
	// selector, unknown pseudo-states, unterminated comments or blocks,
	// and tables that cannot be linked.
	Strict bool
}

// Parse scans src and writes its tokens into dst.
//
// It returns the number of tokens stored on success. When dst is nil or
// smaller than needed, the scan still completes and the negated required
// count is returned; the table is left empty. Zero means nothing usable was
// found. Errors are reserved for ceiling violations and, with
// Options.Strict, structural problems.
//
// src is modified in place (see Source). Parse is not safe for concurrent
// use on the same Source.
func Parse(src *Source, dst *Table, opts Options) (int, error) {
	if dst != nil {
		dst.used = 0
		dst.src = src
	}
	if err := src.prepare(opts); err != nil {
		return 0, err
	}

	b := &builder{buf: src.buf, limit: src.limit, dst: dst, opts: opts}
	if err := b.scan(); err != nil {
		return 0, err
	}

	if dst == nil || b.count > dst.Cap() {
		return -b.count, nil
	}
	if !link(dst.tokens[:b.count]) {
		if opts.Strict {
			return 0, fmt.Errorf("%w: %d tokens", ErrUnlinked, b.count)
		}
		if b.count > 0 {
			logger.Debug("%d tokens but no selector leads a declaration block", b.count)
		}
		return 0, nil
	}
	dst.used = b.count
	return b.count, nil
}

// Compile measures src, allocates a table of the exact size and fills it.
func Compile(src *Source, opts Options) (*Table, error) {
	n, err := Parse(src, nil, opts)
	if err != nil {
		return nil, err
	}
	t, err := NewTable(-n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		t.src = src
		return t, nil
	}
	if _, err := Parse(src, t, opts); err != nil {
		return nil, err
	}
	return t, nil
}

// builder emits tokens into dst, or only counts them when dst is nil or full.
type builder struct {
	buf   []byte
	limit int
	dst   *Table
	opts  Options
	count int
}

func (b *builder) scan() error {
	pos := 0
	for pos < b.limit {
		open, next, ok := blockPattern.Find(b.buf, pos, b.limit)
		if !ok {
			return b.checkTail(pos)
		}

		sel := -1
		for i := pos; i < open; i++ {
			if KindOf(b.buf[i]).IsSelector() {
				sel = i
				break
			}
		}
		if sel < 0 {
			if b.opts.Strict {
				return fmt.Errorf("%w: block at offset %d", ErrMissingSelector, open)
			}
			logger.Debug("skipping block at offset %d: no selector", open)
			pos = next
			continue
		}

		if err := b.selectors(sel, open); err != nil {
			return err
		}
		if err := b.block(open, next); err != nil {
			return err
		}
		pos = next
	}
	return nil
}

// checkTail reports a '{' left without its '}'.
func (b *builder) checkTail(pos int) error {
	open := bytes.IndexByte(b.buf[pos:b.limit], '{')
	if open < 0 {
		return nil
	}
	if b.opts.Strict {
		return fmt.Errorf("%w: block at offset %d", ErrUnterminated, pos+open)
	}
	logger.Debug("unterminated block at offset %d, ignoring the rest of the stylesheet", pos+open)
	return nil
}

// selectors emits one token per selector in buf[begin:end].
func (b *builder) selectors(begin, end int) error {
	begin, end = trim(b.buf, begin, end)
	list := b.buf[begin:end]
	words, err := resolveSelectors(list, b.opts)
	if err != nil {
		return err
	}
	for _, w := range words {
		if !w.kind.IsSelector() {
			continue
		}
		if err := b.emit(Token{
			Kind:   w.kind,
			Flags:  w.flags,
			Offset: begin + w.offset,
			Length: w.length,
		}); err != nil {
			return err
		}
	}
	return nil
}

// block emits the key/value pairs of the block buf[open:next].
func (b *builder) block(open, next int) error {
	// Close the block with ';' so a last pair without one still matches,
	// and end the scan right after it.
	rw := rewriter{buf: b.buf}
	defer rw.restore()
	rw.set(next-1, ';')
	rw.set(next, 0)

	start := open + 1
	for start < next {
		colon, end, ok := pairPattern.Find(b.buf, start, next)
		if !ok {
			break
		}
		if err := b.span(KindKey, start, colon); err != nil {
			return err
		}
		if err := b.span(KindValue, colon, end); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// span emits a key or value token for buf[begin:end] after trimming.
func (b *builder) span(kind Kind, begin, end int) error {
	begin, end = trim(b.buf, begin, end)
	return b.emit(Token{Kind: kind, Offset: begin, Length: end - begin})
}

func (b *builder) emit(tok Token) error {
	if tok.Length > MaxTokenLen {
		return fmt.Errorf("%w: %d bytes at offset %d: %.32q...", ErrTokenTooLong,
			tok.Length, tok.Offset, b.buf[tok.Offset:tok.Offset+tok.Length])
	}
	if b.dst != nil && b.count < b.dst.Cap() {
		b.dst.tokens[b.count] = tok
	}
	b.count++
	if b.count >= MaxTokens {
		return fmt.Errorf("%w: stylesheet needs %d or more", ErrTooManyTokens, MaxTokens)
	}
	return nil
}

// trim drops leading ':', ';' and ' ' and trailing ';', '}' and ' '.
func trim(buf []byte, begin, end int) (int, int) {
	for begin < end && (buf[begin] == ':' || buf[begin] == ';' || buf[begin] == ' ') {
		begin++
	}
	for end > begin && (buf[end-1] == ';' || buf[end-1] == '}' || buf[end-1] == ' ') {
		end--
	}
	return begin, end
}
