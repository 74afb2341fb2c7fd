/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

// link points every run of consecutive selectors at the key that follows
// the run. Keys and values get Link 0. Pairs with no selector run before
// them stay unreachable.
//
// It returns false, linking nothing, for fewer than two tokens or when the
// first token is not a selector.
func link(tokens []Token) bool {
	if len(tokens) < 2 || !tokens[0].Kind.IsSelector() {
		return false
	}

	start := 0
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Kind.IsSelector() {
			if !tokens[start].Kind.IsSelector() {
				start = i
			}
			continue
		}
		tokens[i].Link = 0
		if tokens[start].Kind.IsSelector() {
			for ; start < i; start++ {
				tokens[start].Link = i
			}
		}
	}
	return true
}
