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
	"strings"
)

// ParsedOption - An option found on the command line.
//
// Value is the argument text when the option takes one, otherwise it is the
// option's own Name.
type ParsedOption struct {
	Name  string
	Tag   string
	Value string
}

func (o ParsedOption) String() string {
	return fmt.Sprintf("%s(%s)=%s", o.Name, o.Tag, o.Value)
}

// Result - Options and positional arguments collected by Parse.
//
// Queries return entries most recent first, so the first match for a given
// name or tag is the last one that was passed on the command line.
//
// An empty name or tag given to a query acts as a wildcard.
type Result struct {
	program   string
	options   []ParsedOption // command line order
	arguments []string       // command line order
}

func (r *Result) addOption(name, tag, value string) {
	Logger.Printf("option %s, tag %s, value %s", name, tag, value)
	r.options = append(r.options, ParsedOption{Name: name, Tag: tag, Value: value})
}

func (r *Result) addArgument(arg string) {
	Logger.Printf("argument %s", arg)
	r.arguments = append(r.arguments, arg)
}

// Reset - releases every option and argument.
// It can be called any number of times.
func (r *Result) Reset() {
	r.options = nil
	r.arguments = nil
}

// ProgramName - base name of the program when the Result comes from ParseOS.
func (r *Result) ProgramName() string {
	return r.program
}

func matches(o ParsedOption, name, tag string) bool {
	return (name == "" || o.Name == name) && (tag == "" || o.Tag == tag)
}

// IsSet - Indicates if any option matching name and tag was passed on the command line.
func (r *Result) IsSet(name, tag string) bool {
	_, ok := r.Value(name, tag)
	return ok
}

// Value - Returns the value of the most recently parsed option matching name and tag.
func (r *Result) Value(name, tag string) (string, bool) {
	for i := len(r.options) - 1; i >= 0; i-- {
		if matches(r.options[i], name, tag) {
			return r.options[i].Value, true
		}
	}
	return "", false
}

// Equals - Indicates if the value returned by Value is equal to value.
// An option that wasn't passed is never equal.
func (r *Result) Equals(name, tag, value string) bool {
	v, ok := r.Value(name, tag)
	return ok && v == value
}

// Select - Returns the values of every option matching name and tag, most recent first.
// The returned slice is empty, not nil, when nothing matches.
func (r *Result) Select(name, tag string) []string {
	values := []string{}
	for i := len(r.options) - 1; i >= 0; i-- {
		if matches(r.options[i], name, tag) {
			values = append(values, r.options[i].Value)
		}
	}
	return values
}

// Options - Returns a copy of every parsed option, most recent first.
func (r *Result) Options() []ParsedOption {
	out := make([]ParsedOption, 0, len(r.options))
	for i := len(r.options) - 1; i >= 0; i-- {
		out = append(out, r.options[i])
	}
	return out
}

// Arguments - Returns the positional arguments, most recent first.
func (r *Result) Arguments() []string {
	out := make([]string, 0, len(r.arguments))
	for i := len(r.arguments) - 1; i >= 0; i-- {
		out = append(out, r.arguments[i])
	}
	return out
}

// Positional - Returns the positional arguments in command line order.
func (r *Result) Positional() []string {
	out := make([]string, len(r.arguments))
	copy(out, r.arguments)
	return out
}

func (r *Result) String() string {
	opts := []string{}
	for _, o := range r.Options() {
		opts = append(opts, o.String())
	}
	return fmt.Sprintf("options: [%s], arguments: %v", strings.Join(opts, " "), r.Arguments())
}
