/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package drawstyle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/stylesheet"
	"mapaware.top/shapestyle/testutil"
)

func compile(t *testing.T, css string) *stylesheet.Table {
	t.Helper()
	src, err := stylesheet.NewSource(css)
	require.NoError(t, err)
	table, err := stylesheet.Compile(src, stylesheet.Options{Strict: true})
	require.NoError(t, err)
	return table
}

func TestDefault(t *testing.T) {
	s := drawstyle.Default()
	assert.Equal(t, 1.0, s.BorderWidth)
	assert.Equal(t, drawstyle.LineSolid, s.BorderStyle)
	assert.Equal(t, "#000000", s.BorderHex())
	assert.Equal(t, 100, s.FillOpacity)
	assert.Equal(t, "#ffffff", s.FillHex())
	assert.InDelta(t, 1.0, s.Alpha(), 1e-9)
}

func TestApply(t *testing.T) {
	tests := []struct {
		key, value string
		check      func(t *testing.T, s drawstyle.Style)
		wantErr    bool
	}{
		{key: "border-width", value: "3px", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, 3.0, s.BorderWidth)
		}},
		{key: "border-width", value: "2.5", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, 2.5, s.BorderWidth)
		}},
		{key: "border-width", value: "wide", wantErr: true},
		{key: "border-style", value: "dash", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, drawstyle.LineDashed, s.BorderStyle)
		}},
		{key: "border-style", value: "dotted", wantErr: true},
		{key: "border-color", value: "#FFFF00", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, "#ffff00", s.BorderHex())
		}},
		{key: "fill-color", value: "red", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, "#ff0000", s.FillHex())
		}},
		{key: "fill-color", value: "not-a-color", wantErr: true},
		{key: "fill-opacity", value: "40", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, 40, s.FillOpacity)
		}},
		{key: "fill-opacity", value: "140", wantErr: true},
		{key: "fill-style", value: "none", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, drawstyle.LineNone, s.FillStyle)
		}},
		{key: "font-size", value: "12px", check: func(t *testing.T, s drawstyle.Style) {
			assert.Equal(t, drawstyle.Default(), s)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := drawstyle.Default()
			err := s.Apply(tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, drawstyle.Default(), s, "malformed value must not change the style")
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestResolve_Fixture(t *testing.T) {
	src, err := stylesheet.NewSourceBytes(testutil.LoadFixtureFile(t, "fixtures/stylesheets/shapes.css"))
	require.NoError(t, err)
	table, err := stylesheet.Compile(src, stylesheet.Options{})
	require.NoError(t, err)

	plain, err := drawstyle.Resolve(table, []string{".polygon"}, stylesheet.FlagNone)
	require.NoError(t, err)
	// The wildcard block comes after .polygon, so it wins.
	assert.Equal(t, 4.0, plain.BorderWidth)
	assert.Equal(t, drawstyle.LineDashed, plain.BorderStyle)
	assert.Equal(t, "#ffff00", plain.BorderHex())
	assert.Equal(t, 1, plain.FillOpacity)
	assert.Equal(t, "#00ffff", plain.FillHex())

	withID, err := drawstyle.Resolve(table, []string{".polygon", "#123"}, stylesheet.FlagHilight)
	require.NoError(t, err)
	assert.Equal(t, 4.0, withID.BorderWidth)
	assert.Equal(t, "#00ccff", withID.FillHex())
}

func TestResolve_PseudoStateOrder(t *testing.T) {
	table := compile(t, "* { border-width: 1px; } .a { border-width: 2px; } .a hilight { border-width: 7px; }")

	s, err := drawstyle.Resolve(table, []string{".a"}, stylesheet.FlagNone)
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.BorderWidth)

	s, err = drawstyle.Resolve(table, []string{".a"}, stylesheet.FlagHilight|stylesheet.FlagFlash)
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.BorderWidth)
}

func TestResolve_JoinsErrors(t *testing.T) {
	table := compile(t, ".a { border-width: thick; fill-color: nope; fill-opacity: 50; }")

	s, err := drawstyle.Resolve(table, []string{".a"}, stylesheet.FlagNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "border-width")
	assert.Contains(t, err.Error(), "fill-color")
	assert.Equal(t, 50, s.FillOpacity)
	assert.Equal(t, 1.0, s.BorderWidth)
}

func TestParseLineStyle(t *testing.T) {
	for in, want := range map[string]drawstyle.LineStyle{
		"none": drawstyle.LineNone, "SOLID": drawstyle.LineSolid,
		"dash": drawstyle.LineDashed, "dashed": drawstyle.LineDashed,
	} {
		got, err := drawstyle.ParseLineStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := drawstyle.ParseLineStyle("groove")
	assert.Error(t, err)
}
