// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package stream

import "strings"

// NextToken - skips leading separators and returns the characters up to the
// next separator or EOF. The cursor is left on that separator or EOF.
//
// Returns an empty string when called at EOF.
// The token holds the element's bytes as given, invalid UTF-8 included.
func (s *Stream) NextToken() string {
	s.SkipSeparators()
	var b strings.Builder
	for s.current != Sep && s.current != EOF {
		b.WriteString(s.args[s.line][s.col : s.col+s.width])
		s.Next()
	}
	Logger.Printf("token '%s'", b.String())
	return b.String()
}
