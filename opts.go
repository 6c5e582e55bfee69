// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package opts - POSIX/GNU style command line option parser driven by a static
option schema.

The argument vector is read as a single stream of characters where element
boundaries and '=' are both separators. That lets a single tokenizer handle
every spelling of an option and its argument:

	-a            short flag
	-abc          grouped short flags
	-bVALUE       short option with argument
	-b VALUE
	-b=VALUE
	--foo         long flag
	--bar VALUE   long option with argument
	--bar=VALUE
	--            everything after is a positional argument
	text          positional argument

Usage

	var schema = []opts.Spec{
		{Name: "v", Tag: "output", Description: "Verbose output"},
		{Name: "o", HasArg: true, Tag: "output", Description: "Output file"},
		{Name: "level", HasArg: true, Description: "Compression level"},
	}

	r, err := opts.Parse(schema, os.Args[1:])
	if err != nil {
		// errors.Is(err, opts.ErrorUnknownOption)
		// errors.Is(err, opts.ErrorMissingArgument)
	}
	if r.IsSet("v", "") {
		// ...
	}
	level, ok := r.Value("level", "")

Results are returned most recent first: when an option is repeated, Value
returns the last one given on the command line and Select returns all of them
starting with the last.

Callers that want the classic behaviour of printing a diagnostic and exiting
with status 1 use ParseOrExit or ParseOS.
*/
package opts

import (
	"io"
	"log"

	"github.com/DavidGamba/go-opts/internal/option"
	"github.com/DavidGamba/go-opts/internal/stream"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Spec - Static definition of an option.
//
// A Name of exactly one character defines a short option (-n), anything
// longer defines a long option (--name).
type Spec = option.Spec

type state int

const (
	scanningToken state = iota
	inShortOption
	inLongOption
	inArgument
	done
)

func (s state) String() string {
	switch s {
	case scanningToken:
		return "ScanningToken"
	case inShortOption:
		return "InShortOption"
	case inLongOption:
		return "InLongOption"
	case inArgument:
		return "InArgument"
	}
	return "Done"
}

type parser struct {
	schema []Spec
	s      *stream.Stream
	result *Result
}

// Parse - Parses args against the schema.
// args is expected to not include the program name, for example: os.Args[1:].
//
// On error the returned Result is nil, there are no partial results.
// The error is a *ParseError that matches either ErrorUnknownOption or ErrorMissingArgument.
//
// Parse will *panic* if the schema has empty or duplicate names.
func Parse(schema []Spec, args []string) (*Result, error) {
	option.Validate(schema)
	p := &parser{
		schema: schema,
		s:      stream.New(args),
		result: &Result{},
	}
	err := p.run()
	if err != nil {
		Logger.Printf("parse error: %s", err)
		return nil, err
	}
	return p.result, nil
}

func (p *parser) run() error {
	for {
		st := p.scan()
		Logger.Printf("state %s", st)
		var err error
		switch st {
		case inShortOption:
			err = p.shortOption()
		case inLongOption:
			err = p.longOption()
		case inArgument:
			p.argument()
		case done:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// scan - skips separators and decides what comes next from the current character.
func (p *parser) scan() state {
	c := p.s.SkipSeparators()
	if c == stream.EOF {
		return done
	}
	if p.s.AtElementStart() {
		switch p.s.Element() {
		case "--":
			// Terminator: everything after it is taken verbatim.
			for _, arg := range p.s.Rest() {
				p.result.addArgument(arg)
			}
			return done
		case "-":
			// Lone dash, usually stdin.
			return inArgument
		}
	}
	if c != '-' {
		return inArgument
	}
	if p.s.Peek() == '-' {
		return inLongOption
	}
	return inShortOption
}

// value - reads the argument of an option that requires one.
func (p *parser) value(dashes, name string) (string, error) {
	c := p.s.SkipSeparators()
	if c == '-' || c == stream.EOF {
		return "", newMissingArgumentError(dashes, name)
	}
	return p.s.NextToken(), nil
}

// shortOption - handles a run of grouped short options, for example: -abc.
// The cursor is on the leading dash.
//
// The run ends at a separator, at EOF or after an option that takes an
// argument, since the rest of the run is that argument: -abVALUE.
func (p *parser) shortOption() error {
	c := p.s.Next()
	if c == stream.Sep || c == stream.EOF {
		// -=VALUE
		return newUnknownOptionError("-", "")
	}
	for {
		name := string(c)
		spec, ok := option.Find(p.schema, option.Short, name)
		if !ok {
			return newUnknownOptionError("-", name)
		}
		if spec.HasArg {
			p.s.Next()
			v, err := p.value("-", name)
			if err != nil {
				return err
			}
			p.result.addOption(spec.Name, spec.Tag, v)
			return nil
		}
		p.result.addOption(spec.Name, spec.Tag, spec.Name)
		c = p.s.Next()
		if c == stream.Sep || c == stream.EOF {
			return nil
		}
	}
}

// longOption - handles --name, --name VALUE and --name=VALUE.
// The cursor is on the first dash.
func (p *parser) longOption() error {
	p.s.Next()
	p.s.Next()
	// The name ends at a separator, '=' included, so no separators are skipped
	// before it: '--=x' is the empty name.
	name := ""
	if p.s.Current() != stream.Sep {
		name = p.s.NextToken()
	}
	spec, ok := option.Find(p.schema, option.Long, name)
	if !ok {
		return newUnknownOptionError("--", name)
	}
	if !spec.HasArg {
		p.result.addOption(spec.Name, spec.Tag, spec.Name)
		return nil
	}
	v, err := p.value("--", name)
	if err != nil {
		return err
	}
	p.result.addOption(spec.Name, spec.Tag, v)
	return nil
}

func (p *parser) argument() {
	if arg := p.s.NextToken(); arg != "" {
		p.result.addArgument(arg)
	}
}
