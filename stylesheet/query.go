/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"iter"
	"slices"
)

// Lookup returns the indexes of selectors whose text is exactly selector,
// leading '.', '#' or '*' included.
func (t *Table) Lookup(selector string) []int {
	var found []int
	for i := 0; i < t.used; i++ {
		if t.tokens[i].Kind.IsSelector() && t.Text(i) == selector {
			found = append(found, i)
		}
	}
	return found
}

// Match returns, in table order, the selectors that apply to a feature
// styled with the given selectors while in pseudo-state state: the wildcard
// and every listed selector whose own pseudo-states are all part of state.
// Later matches take precedence when their declarations are applied in order.
func (t *Table) Match(selectors []string, state Flags) []int {
	var found []int
	for i := 0; i < t.used; i++ {
		tok := t.tokens[i]
		if !tok.Kind.IsSelector() || !state.Has(tok.Flags) {
			continue
		}
		if tok.Kind == KindWildcard || slices.Contains(selectors, t.Text(i)) {
			found = append(found, i)
		}
	}
	return found
}

// Declarations yields the key and value text of every pair linked from
// selector i, in source order.
func (t *Table) Declarations(i int) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		first, ok := t.Link(i)
		if !ok {
			return
		}
		for k := first; k+1 < t.used && t.tokens[k].Kind == KindKey; k += 2 {
			if !yield(t.Text(k), t.Text(k+1)) {
				return
			}
		}
	}
}
