/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"bufio"
	"io"
)

// Print writes every selector with its pseudo-states and linked
// declarations:
//
//	.polygon hilight {
//	  border-width: 3px;
//	}
func (t *Table) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var line []byte

	for i := 0; i < t.used; i++ {
		sel := t.tokens[i]
		if !sel.Kind.IsSelector() {
			continue
		}
		line = append(line[:0], t.Text(i)...)
		line = append(line, ' ')
		line = AppendFlagNames(line, sel.Flags)
		line = append(line, "{\n"...)

		if first, ok := t.Link(i); ok {
			for k := first; k+1 < t.used && t.tokens[k].Kind == KindKey; k += 2 {
				line = append(line, "  "...)
				line = append(line, t.Text(k)...)
				line = append(line, ": "...)
				line = append(line, t.Text(k+1)...)
				line = append(line, ";\n"...)
			}
		}
		line = append(line, "}\n"...)
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
