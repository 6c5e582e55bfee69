// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package opts

import (
	"fmt"
	"io"

	"github.com/DavidGamba/go-opts/internal/help"
)

// Padding - space added to the longest option name to build the first column
// of the help table.
var Padding = 4

// Help - Returns the option table for the schema.
//
// The first column holds the flag as written on the command line and the
// second the description. The column is as wide as the longest option name
// plus Padding, plus 4 when any option takes an argument.
func Help(schema []Spec) string {
	return help.OptionList(schema, Padding)
}

// PrintHelp - Writes the option table for the schema to w.
func PrintHelp(w io.Writer, schema []Spec) error {
	_, err := fmt.Fprint(w, Help(schema))
	return err
}
