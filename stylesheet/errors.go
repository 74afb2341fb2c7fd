/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import "errors"

// Ceiling violations. These abort a parse wherever they are detected.
var (
	// ErrSourceTooLarge indicates the stylesheet is MaxSourceSize bytes or longer.
	ErrSourceTooLarge = errors.New("stylesheet source too large")

	// ErrTokenTooLong indicates a selector, key or value longer than MaxTokenLen.
	ErrTokenTooLong = errors.New("stylesheet token too long")

	// ErrTooManyTokens indicates the token index space (MaxTokens) is exhausted.
	ErrTooManyTokens = errors.New("too many stylesheet tokens")
)

// Structural conditions. Lenient parsing absorbs these; strict parsing returns them.
var (
	// ErrMissingSelector indicates a declaration block with no selector before it.
	ErrMissingSelector = errors.New("declaration block without selector")

	// ErrUnknownFlag indicates a plain word in a selector list that is not a pseudo-state.
	ErrUnknownFlag = errors.New("unknown pseudo-state")

	// ErrUnterminated indicates an unterminated comment or declaration block.
	ErrUnterminated = errors.New("unterminated comment or block")

	// ErrUnlinked indicates a table whose selectors cannot be linked to declarations.
	ErrUnlinked = errors.New("no selector links to a declaration")
)
