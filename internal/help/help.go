// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - option table formatting.
package help

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/go-opts/internal/option"
	"github.com/DavidGamba/go-opts/text"
)

// argWidth - extra width for the " ARG" suffix.
const argWidth = 4

// longestNameLen - Given a schema it returns the length of the longest option
// name and whether any option takes an argument.
func longestNameLen(schema []option.Spec) (int, bool) {
	i := 0
	hasArg := false
	for _, s := range schema {
		if l := utf8.RuneCountInString(s.Name); l > i {
			i = l
		}
		hasArg = hasArg || s.HasArg
	}
	return i, hasArg
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// ColumnWidth - width of the flag column for the given schema: the longest
// option name plus padding.
func ColumnWidth(schema []option.Spec, padding int) int {
	l, hasArg := longestNameLen(schema)
	l += padding
	if hasArg {
		l += argWidth
	}
	return l
}

// OptionList - Return a two column table of flags and their descriptions, in schema order.
func OptionList(schema []option.Spec, padding int) string {
	if len(schema) == 0 {
		return ""
	}
	factor := ColumnWidth(schema, padding)
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", text.HelpOptionsHeader)
	for _, s := range schema {
		line := "    " + pad(s.Synopsis(), factor)
		if s.Description != "" {
			description := strings.ReplaceAll(s.Description, "\n", "\n    "+strings.Repeat(" ", factor))
			line += description
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}
