/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"mapaware.top/shapestyle/fs"
)

// Hard limits. Offsets fit in 20 bits, lengths in 8 and link indexes in 12.
const (
	// MaxSourceSize is the first source length that is rejected.
	MaxSourceSize = 1 << 20

	// MaxTokenLen is the longest accepted selector, key or value text.
	MaxTokenLen = 255

	// MaxTokens is the first token count that is rejected.
	MaxTokens = 4096
)

// FileURIPrefix is accepted, and stripped, in front of stylesheet paths.
const FileURIPrefix = "file://"

// Source is a mutable stylesheet buffer. Tokens refer to it by offset and
// length, so a Source must outlive every Table parsed from it.
//
// Parsing normalizes the buffer once: tabs, carriage returns and quotes
// become spaces, newlines become semicolons and comments are blanked.
// All other bytes are left as they were.
type Source struct {
	buf      []byte
	prepared bool
	limit    int
}

// NewSource copies text into a new Source.
func NewSource(text string) (*Source, error) {
	return NewSourceBytes([]byte(text))
}

// NewSourceBytes takes ownership of b. Text after the first NUL byte is ignored.
func NewSourceBytes(b []byte) (*Source, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) >= MaxSourceSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrSourceTooLarge, len(b), MaxSourceSize-1)
	}
	return &Source{buf: b, limit: len(b)}, nil
}

// ReadSource reads r to EOF into a new Source.
func ReadSource(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSourceSize))
	if err != nil {
		return nil, err
	}
	return NewSourceBytes(data)
}

// ReadFile loads a stylesheet file. A file:// prefix on path is stripped.
func ReadFile(filesystem fs.FileSystem, path string) (*Source, error) {
	path = StylesheetPath(path)
	info, err := filesystem.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() >= MaxSourceSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrSourceTooLarge, path, info.Size())
	}
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSourceBytes(data)
}

// IsInline reports whether a stylesheet argument is stylesheet text rather
// than a path: it holds both braces and does not start with one.
func IsInline(arg string) bool {
	open := strings.IndexByte(arg, '{')
	return open > 0 && strings.IndexByte(arg, '}') >= 0
}

// StylesheetPath strips a file:// prefix and normalizes backslashes.
func StylesheetPath(arg string) string {
	arg = strings.ReplaceAll(arg, "\\", "/")
	return strings.TrimPrefix(arg, FileURIPrefix)
}

// Open loads a stylesheet argument, which is either inline text or a path.
func Open(filesystem fs.FileSystem, arg string) (*Source, error) {
	if arg == "" {
		return nil, fmt.Errorf("empty stylesheet argument")
	}
	if IsInline(arg) {
		return NewSource(arg)
	}
	return ReadFile(filesystem, arg)
}

// Len returns the buffer length in bytes.
func (s *Source) Len() int {
	return len(s.buf)
}

// Bytes returns the underlying buffer. Callers must not modify it while a
// Table parsed from s is in use.
func (s *Source) Bytes() []byte {
	return s.buf
}

// String returns a copy of the buffer.
func (s *Source) String() string {
	return string(s.buf)
}

// Text returns the bytes at [offset, offset+length) as a string.
func (s *Source) Text(offset, length int) string {
	if offset < 0 || length < 0 || offset+length > len(s.buf) {
		return ""
	}
	return string(s.buf[offset : offset+length])
}

// prepare sanitizes and strips comments, once per Source.
func (s *Source) prepare(opts Options) error {
	if s.prepared {
		return nil
	}
	sanitize(s.buf)
	limit, err := stripComments(s.buf, opts)
	if err != nil {
		return err
	}
	s.limit = limit
	s.prepared = true
	return nil
}
