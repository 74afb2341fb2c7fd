/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

// rewriter records temporary byte substitutions in a buffer so that they
// can be undone together. Use it as
//
//	rw := rewriter{buf: buf}
//	defer rw.restore()
type rewriter struct {
	buf   []byte
	saved [2]savedByte
	n     int
}

type savedByte struct {
	at int
	b  byte
}

// set replaces buf[at] with b. Offsets outside buf are ignored, which lets a
// terminator be placed "past the end" of a block that ends the buffer.
func (rw *rewriter) set(at int, b byte) {
	if at < 0 || at >= len(rw.buf) {
		return
	}
	if rw.n == len(rw.saved) {
		panic("stylesheet: too many pending rewrites")
	}
	rw.saved[rw.n] = savedByte{at: at, b: rw.buf[at]}
	rw.n++
	rw.buf[at] = b
}

// restore undoes every pending substitution, newest first.
func (rw *rewriter) restore() {
	for rw.n > 0 {
		rw.n--
		s := rw.saved[rw.n]
		rw.buf[s.at] = s.b
	}
}
