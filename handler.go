// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package opts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-opts/text"
)

// Writer - Output for the diagnostics printed by DefaultErrorHandler.
var Writer io.Writer = os.Stderr

// exit is replaced in tests.
var exit = os.Exit

// ErrorHandler - Called by ParseOrExit when parsing fails.
// The handler is expected to transfer control away, by exiting or panicking.
// If it returns, ParseOrExit panics.
type ErrorHandler func(err *ParseError)

// DefaultErrorHandler - prints the offending option and the reason to Writer and exits with status 1.
func DefaultErrorHandler(err *ParseError) {
	fmt.Fprintf(Writer, text.ErrorDiagnostic, filepath.Base(os.Args[0]), err)
	exit(1)
}

// ParseOrExit - Parses args against the schema and hands any error to handler.
// A nil handler uses DefaultErrorHandler.
//
// Parsing never continues past an error: when the handler returns,
// ParseOrExit *panics*.
func ParseOrExit(schema []Spec, handler ErrorHandler, args []string) *Result {
	if handler == nil {
		handler = DefaultErrorHandler
	}
	r, err := Parse(schema, args)
	if err != nil {
		var pErr *ParseError
		if !errors.As(err, &pErr) {
			panic(err)
		}
		handler(pErr)
		panic(fmt.Sprintf("error handler returned after: %s", err))
	}
	return r
}

// ParseOS - Same as ParseOrExit on os.Args[1:].
// The Result's ProgramName is the base name of os.Args[0].
func ParseOS(schema []Spec, handler ErrorHandler) *Result {
	args := []string{}
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	r := ParseOrExit(schema, handler, args)
	if len(os.Args) > 0 {
		r.program = filepath.Base(os.Args[0])
	}
	return r
}
