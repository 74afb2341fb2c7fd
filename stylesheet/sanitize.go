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

// sanitize replaces tab, CR and quotes with spaces and newlines with
// semicolons, in place. Offsets are unchanged.
func sanitize(buf []byte) {
	for i, c := range buf {
		switch c {
		case '\t', '\r', '"', '\'':
			buf[i] = ' '
		case '\n':
			buf[i] = ';'
		}
	}
}

// stripComments overwrites every /* ... */ span with spaces and returns the
// offset where block scanning must stop: the end of buf, or the start of an
// unterminated comment.
func stripComments(buf []byte, opts Options) (int, error) {
	pos := 0
	for pos < len(buf) {
		start, end, ok := commentPattern.Find(buf, pos, len(buf))
		if !ok {
			break
		}
		for i := start; i < end; i++ {
			buf[i] = ' '
		}
		pos = end
	}

	open := bytes.Index(buf[pos:], []byte("/*"))
	if open < 0 {
		return len(buf), nil
	}
	open += pos
	if opts.Strict {
		return 0, fmt.Errorf("%w: comment at offset %d", ErrUnterminated, open)
	}
	logger.Debug("unterminated comment at offset %d, ignoring the rest of the stylesheet", open)
	return open, nil
}
