// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorUnknownOption - reason given when the option is not in the schema.
var ErrorUnknownOption = "Unknown Option"

// ErrorMissingArgument - reason given when an option requires an argument
// and the next thing on the command line is another option or nothing at all.
var ErrorMissingArgument = "Expected an argument, none received"

// ErrorParsing - format of the diagnostic line.
// It has placeholders for the option as written on the command line and the reason.
var ErrorParsing = "%s: %s"

// ErrorDiagnostic - format of the line printed by the default error handler.
// It has placeholders for the program name and the error.
var ErrorDiagnostic = "%s: %s\n"

// ErrorMissingRequiredArgument - GetRequiredArg error when there are no positional arguments left.
var ErrorMissingRequiredArgument = "Missing required argument"

// ErrorMissingRequiredNamedArgument - GetRequiredArg error when the argument has a name.
// It has a string placeholder '%s' for the argument name.
var ErrorMissingRequiredNamedArgument = "Missing required argument: %s"

// HelpOptionsHeader - header of the option table.
var HelpOptionsHeader = "OPTIONS"
