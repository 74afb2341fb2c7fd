/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import "encoding/json"

// TokenView is the serialized form of a token.
type TokenView struct {
	Index  int      `json:"index" yaml:"index"`
	Kind   string   `json:"kind" yaml:"kind"`
	Text   string   `json:"text" yaml:"text"`
	Offset int      `json:"offset" yaml:"offset"`
	Length int      `json:"length" yaml:"length"`
	Flags  []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Link   *int     `json:"link,omitempty" yaml:"link,omitempty"`
}

// Views returns the used tokens in their serialized form.
func (t *Table) Views() []TokenView {
	views := make([]TokenView, 0, t.used)
	for i := 0; i < t.used; i++ {
		tok := t.tokens[i]
		v := TokenView{
			Index:  i,
			Kind:   tok.Kind.String(),
			Text:   t.Text(i),
			Offset: tok.Offset,
			Length: tok.Length,
			Flags:  tok.Flags.Names(),
		}
		if link, ok := t.Link(i); ok {
			v.Link = &link
		}
		views = append(views, v)
	}
	return views
}

// MarshalJSON encodes the used tokens as a JSON array.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Views())
}

// MarshalYAML implements yaml.Marshaler.
func (t *Table) MarshalYAML() (any, error) {
	return t.Views(), nil
}
