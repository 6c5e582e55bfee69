// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package stream - exposes an argument vector as a single forward-only stream of
characters.

Adjacent elements of the vector are joined by a virtual separator and a literal
'=' is normalized to that same separator, so the following inputs produce the
same stream:

	[]string{"--flag=value"}
	[]string{"--flag", "value"}
*/
package stream

import (
	"io"
	"log"
	"unicode/utf8"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

const (
	// EOF - returned once every element has been consumed.
	EOF rune = -1

	// Sep - returned at element boundaries and in place of '='.
	Sep rune = -2
)

// Stream - cursor into the argument vector.
type Stream struct {
	args    []string
	line    int  // index of the current element
	col     int  // byte offset of the current character within the element
	width   int  // byte width of the current character
	current rune // current logical character
}

// New - builds a Stream positioned on the first character of args.
func New(args []string) *Stream {
	s := &Stream{args: args}
	s.load()
	return s
}

// load - decodes the character under the cursor.
func (s *Stream) load() {
	if s.line >= len(s.args) {
		s.current, s.width = EOF, 0
		return
	}
	e := s.args[s.line]
	if s.col >= len(e) {
		// Boundary with the next element. An empty element is nothing but its boundary.
		s.current, s.width = Sep, 0
		return
	}
	r, w := utf8.DecodeRuneInString(e[s.col:])
	if r == '=' {
		r = Sep
	}
	s.current, s.width = r, w
}

// Current - returns the current logical character.
func (s *Stream) Current() rune {
	return s.current
}

// Next - advances the cursor and returns the new current character.
//
// The boundary between two elements is yielded exactly once. After the last
// element has been consumed Next keeps returning EOF.
func (s *Stream) Next() rune {
	if s.line >= len(s.args) {
		return EOF
	}
	if s.col >= len(s.args[s.line]) {
		// Leaving the boundary separator.
		s.line++
		s.col = 0
	} else {
		s.col += s.width
		if s.col >= len(s.args[s.line]) && s.line == len(s.args)-1 {
			// No boundary after the last element.
			s.line++
			s.col = 0
		}
	}
	s.load()
	Logger.Printf("line %d, col %d, current %s", s.line, s.col, Quote(s.current))
	return s.current
}

// Peek - returns the character after the current one without moving the cursor.
func (s *Stream) Peek() rune {
	c := *s
	return c.Next()
}

// SkipSeparators - advances while the current character is a separator.
func (s *Stream) SkipSeparators() rune {
	for s.current == Sep {
		s.Next()
	}
	return s.current
}

// AtElementStart - tells if the cursor is on the first character of an element.
func (s *Stream) AtElementStart() bool {
	return s.line < len(s.args) && s.col == 0
}

// Element - returns the element under the cursor or an empty string at EOF.
func (s *Stream) Element() string {
	if s.line >= len(s.args) {
		return ""
	}
	return s.args[s.line]
}

// Rest - consumes the stream and returns every element after the current one.
func (s *Stream) Rest() []string {
	rest := []string{}
	if s.line+1 < len(s.args) {
		rest = append(rest, s.args[s.line+1:]...)
	}
	s.line = len(s.args)
	s.col = 0
	s.load()
	return rest
}

// Quote - printable representation of a stream character.
func Quote(r rune) string {
	switch r {
	case EOF:
		return "EOF"
	case Sep:
		return "SEP"
	}
	return "'" + string(r) + "'"
}
