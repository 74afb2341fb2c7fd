/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"bytes"
	"fmt"
)

// The three patterns the parser scans with.
var (
	commentPattern = MustCompilePattern(`/\*.*?\*/`)
	blockPattern   = MustCompilePattern(`{.*?}`)
	pairPattern    = MustCompilePattern(`:.*?;`)
)

type repeat uint8

const (
	repOne repeat = iota
	repGreedy
	repLazy
)

type atom struct {
	any bool
	ch  byte
	rep repeat
}

func (a atom) matches(c byte) bool {
	return a.any || a.ch == c
}

// Pattern is a compiled byte pattern supporting literals, '\' escapes,
// '.' (any byte), '*' (greedy) and '*?' (lazy) repetition.
//
// Matching stops at a NUL byte, which is how the parser bounds a scan to a
// single declaration block.
type Pattern struct {
	expr      string
	atoms     []atom
	firstStar int
}

// CompilePattern parses expr into a Pattern.
func CompilePattern(expr string) (*Pattern, error) {
	p := &Pattern{expr: expr, firstStar: -1}
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch c {
		case '*':
			if len(p.atoms) == 0 || p.atoms[len(p.atoms)-1].rep != repOne {
				return nil, fmt.Errorf("pattern %q: '*' at offset %d repeats nothing", expr, i)
			}
			last := &p.atoms[len(p.atoms)-1]
			last.rep = repGreedy
			if i+1 < len(expr) && expr[i+1] == '?' {
				last.rep = repLazy
				i++
			}
			if p.firstStar < 0 {
				p.firstStar = len(p.atoms) - 1
			}
		case '\\':
			if i+1 == len(expr) {
				return nil, fmt.Errorf("pattern %q: trailing backslash", expr)
			}
			i++
			p.atoms = append(p.atoms, atom{ch: expr[i]})
		case '.':
			p.atoms = append(p.atoms, atom{any: true})
		default:
			p.atoms = append(p.atoms, atom{ch: c})
		}
	}
	return p, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// Find returns the leftmost match in buf[from:to]. Lazy repetition yields
// the shortest match at that position. The scan also ends at the first NUL.
func (p *Pattern) Find(buf []byte, from, to int) (start, end int, ok bool) {
	if to > len(buf) {
		to = len(buf)
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		return -1, -1, false
	}
	if nul := bytes.IndexByte(buf[from:to], 0); nul >= 0 {
		to = from + nul
	}

	for s := from; s <= to; s++ {
		if len(p.atoms) > 0 && !p.atoms[0].any && p.atoms[0].rep == repOne {
			next := bytes.IndexByte(buf[s:to], p.atoms[0].ch)
			if next < 0 {
				break
			}
			s += next
		}
		e, exhausted := p.match(0, buf, s, to)
		if e >= 0 {
			return s, e, true
		}
		// The first repetition reached the end without a match: a later
		// start position only retries a subset of the same suffixes.
		if exhausted {
			break
		}
	}
	return -1, -1, false
}

// match tries atoms[n:] at position i and returns the match end or -1.
// exhausted is set when the first repetition ran to limit and failed.
func (p *Pattern) match(n int, buf []byte, i, limit int) (end int, exhausted bool) {
	if n == len(p.atoms) {
		return i, false
	}
	a := p.atoms[n]
	switch a.rep {
	case repLazy:
		for j := i; ; j++ {
			if e, _ := p.match(n+1, buf, j, limit); e >= 0 {
				return e, false
			}
			if j >= limit {
				return -1, n == p.firstStar
			}
			if !a.matches(buf[j]) {
				return -1, false
			}
		}
	case repGreedy:
		j := i
		for j < limit && a.matches(buf[j]) {
			j++
		}
		for k := j; k >= i; k-- {
			if e, _ := p.match(n+1, buf, k, limit); e >= 0 {
				return e, false
			}
		}
		return -1, j >= limit && n == p.firstStar
	default:
		if i < limit && a.matches(buf[i]) {
			return p.match(n+1, buf, i+1, limit)
		}
		return -1, false
	}
}
