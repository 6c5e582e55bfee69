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

	"github.com/DavidGamba/go-opts/text"
)

// ErrorUnknownOption - Indicates an option that is not part of the schema.
var ErrorUnknownOption = errors.New("unknown option")

// ErrorMissingArgument - Indicates an option that requires an argument didn't get one.
var ErrorMissingArgument = errors.New("missing argument")

// ErrorMissingRequiredArgument - Returned by GetRequiredArg when there are no arguments left.
var ErrorMissingRequiredArgument = errors.New("")

// ErrorKind - Classifies a ParseError.
type ErrorKind int

// Error Kinds
const (
	UnknownOption ErrorKind = iota
	MissingArgument
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "UnknownOption"
	case MissingArgument:
		return "MissingArgument"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError - Error returned by Parse.
// It carries the offending option name and the reason for the failure.
type ParseError struct {
	Kind   ErrorKind
	Option string // Option name without leading dashes
	Flag   string // Option as written on the command line, for example: -b or --bar
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(text.ErrorParsing, e.Flag, e.Reason)
}

// Is - allows errors.Is(err, ErrorUnknownOption) and errors.Is(err, ErrorMissingArgument).
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case UnknownOption:
		return target == ErrorUnknownOption
	case MissingArgument:
		return target == ErrorMissingArgument
	}
	return false
}

func newUnknownOptionError(dashes, name string) error {
	return &ParseError{Kind: UnknownOption, Option: name, Flag: dashes + name, Reason: text.ErrorUnknownOption}
}

func newMissingArgumentError(dashes, name string) error {
	return &ParseError{Kind: MissingArgument, Option: name, Flag: dashes + name, Reason: text.ErrorMissingArgument}
}
