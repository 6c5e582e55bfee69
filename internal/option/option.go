// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - option schema definition and lookup.
package option

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind - Indicates how the option is invoked on the command line.
type Kind int

// Option Kinds
const (
	Short Kind = iota // -o
	Long              // --option
)

func (k Kind) String() string {
	if k == Short {
		return "short"
	}
	return "long"
}

// Spec - Static definition of an option.
type Spec struct {
	Name        string // Name without leading dashes. A single character makes it a short option.
	HasArg      bool   // Indicates if the option requires an argument
	Tag         string // Grouping label used for category queries
	Description string // Optional description used for help
}

// Kind - Returns the kind derived from the name length.
func (s Spec) Kind() Kind {
	return KindOf(s.Name)
}

// Synopsis - Returns the way the option is written on the command line.
// For example: `-a`, `--foo`, `-b ARG`, `--bar ARG`.
func (s Spec) Synopsis() string {
	out := "--" + s.Name
	if s.Kind() == Short {
		out = "-" + s.Name
	}
	if s.HasArg {
		out += " ARG"
	}
	return out
}

// KindOf - Exactly one character is a short option, anything else is long.
func KindOf(name string) Kind {
	if utf8.RuneCountInString(name) == 1 {
		return Short
	}
	return Long
}

// Find - Returns the first entry in the schema whose kind and name match.
// The comparison is exact and case sensitive.
func Find(schema []Spec, kind Kind, name string) (*Spec, bool) {
	for i := range schema {
		if schema[i].Kind() == kind && schema[i].Name == name {
			Logger.Printf("found %s option '%s'", kind, name)
			return &schema[i], true
		}
	}
	Logger.Printf("%s option '%s' not found", kind, name)
	return nil, false
}

// Validate - *panics* if the schema has an empty name or a name defined twice.
// This is not an error because the programmer has to fix this!
func Validate(schema []Spec) {
	seen := make(map[string]int, len(schema))
	for i, s := range schema {
		if s.Name == "" {
			panic(fmt.Sprintf("Option name can't be empty (entry %d)", i))
		}
		if strings.ContainsAny(s.Name, "= ") || strings.HasPrefix(s.Name, "-") {
			panic(fmt.Sprintf("Option name '%s' can't start with '-' or contain '=' or spaces", s.Name))
		}
		// Since the kind derives from the name, equal names always share a kind.
		if j, ok := seen[s.Name]; ok {
			panic(fmt.Sprintf("Option '%s' is already defined (entries %d and %d)", s.Name, j, i))
		}
		seen[s.Name] = i
	}
}
