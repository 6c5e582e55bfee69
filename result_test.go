// This file is part of go-opts.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package opts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, args ...string) *Result {
	t.Helper()
	r, err := Parse(testSchema, args)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func TestIsSet(t *testing.T) {
	r := mustParse(t, "-a", "--foo", "-c")

	require.True(t, r.IsSet("a", ""))
	require.True(t, r.IsSet("foo", ""))
	require.True(t, r.IsSet("", "opttag"))
	require.True(t, r.IsSet("c", "test_c"))
	require.True(t, r.IsSet("", ""))
	require.False(t, r.IsSet("b", ""))
	require.False(t, r.IsSet("c", "opttag"))
	require.False(t, r.IsSet("", "test_e"))
}

func TestValue(t *testing.T) {
	r := mustParse(t, "-a", "-b", "first", "--bar=x", "-b=second")

	v, ok := r.Value("a", "")
	require.True(t, ok)
	require.Equal(t, "a", v, "option without argument has its own name as value")

	v, ok = r.Value("b", "")
	require.True(t, ok)
	require.Equal(t, "second", v, "last one on the command line wins")

	v, ok = r.Value("", "test_e")
	require.True(t, ok)
	require.Equal(t, "x", v)

	v, ok = r.Value("", "")
	require.True(t, ok)
	require.Equal(t, "second", v)

	v, ok = r.Value("foo", "")
	require.False(t, ok)
	require.Equal(t, "", v)
}

func TestEquals(t *testing.T) {
	r := mustParse(t, "--bar", "baz", "-a")

	require.True(t, r.Equals("bar", "", "baz"))
	require.True(t, r.Equals("", "test_e", "baz"))
	require.True(t, r.Equals("a", "", "a"))
	require.False(t, r.Equals("bar", "", "qux"))
	require.False(t, r.Equals("b", "", ""), "absent option is never equal")
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		optName  string
		tag      string
		expected []string
	}{
		{"by name", []string{"-a", "--foo", "-c"}, "c", "", []string{"c"}},
		{"by tag", []string{"-a", "--foo", "-c"}, "", "test_c", []string{"c"}},
		{"by name and tag", []string{"-a", "--foo", "-c", "--baz"}, "baz", "opttag", []string{"baz"}},
		{"multiple by tag", []string{"-a", "--foo", "-c", "--baz"}, "", "opttag", []string{"baz", "foo"}},
		{"repeated values", []string{"-b1", "-b", "2", "--bar=x", "-b=3"}, "b", "", []string{"3", "2", "1"}},
		{"everything", []string{"-a", "--bar=x", "-c"}, "", "", []string{"c", "x", "a"}},
		{"no match", []string{"-a"}, "", "opttag", []string{}},
		{"no options", []string{"txt"}, "a", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustParse(t, tt.args...)
			got := r.Select(tt.optName, tt.tag)
			require.NotNil(t, got)
			require.Equal(t, tt.expected, got, resultError(nil, r))
		})
	}
}

func TestArguments(t *testing.T) {
	r := mustParse(t, "baz1")
	require.Equal(t, []string{"baz1"}, r.Arguments())

	r = mustParse(t, "baz1", "baz2")
	require.Equal(t, []string{"baz2", "baz1"}, r.Arguments())
	require.Equal(t, []string{"baz1", "baz2"}, r.Positional())

	r = mustParse(t, "-a")
	require.NotNil(t, r.Arguments())
	require.Empty(t, r.Arguments())
}

func TestOptions(t *testing.T) {
	r := mustParse(t, "-a", "--bar=x")
	require.Equal(t, []ParsedOption{
		{Name: "bar", Tag: "test_e", Value: "x"},
		{Name: "a", Tag: "test_a", Value: "a"},
	}, r.Options())
	require.Equal(t, "options: [bar(test_e)=x a(test_a)=a], arguments: []", r.String())
}

func TestReset(t *testing.T) {
	r := mustParse(t, "-a", "--bar=x", "-b", "y", "txt1", "txt2")
	require.True(t, r.IsSet("", ""))

	r.Reset()
	require.False(t, r.IsSet("", ""))
	for _, s := range testSchema {
		require.False(t, r.IsSet(s.Name, ""))
		require.False(t, r.IsSet("", s.Tag))
		require.Empty(t, r.Select(s.Name, s.Tag))
	}
	require.Empty(t, r.Arguments())
	require.Empty(t, r.Positional())

	require.NotPanics(t, r.Reset)
	require.False(t, r.IsSet("", ""))

	var zero Result
	require.NotPanics(t, zero.Reset)
	require.False(t, zero.IsSet("", ""))
}

func TestResultsAreIndependent(t *testing.T) {
	r1 := mustParse(t, "-a")
	r2 := mustParse(t, "-c")
	r1.Reset()
	require.True(t, r2.IsSet("c", ""))
	require.False(t, r2.IsSet("a", ""))
}

func TestGetRequiredArg(t *testing.T) {
	r := mustParse(t, "src", "-a", "dst")

	arg, rest, err := GetRequiredArg(r.Positional())
	require.NoError(t, err)
	require.Equal(t, "src", arg)
	require.Equal(t, []string{"dst"}, rest)

	arg, rest, err = GetRequiredArg(rest, "<dst>")
	require.NoError(t, err)
	require.Equal(t, "dst", arg)
	require.Empty(t, rest)

	_, _, err = GetRequiredArg(rest, "<extra>")
	require.ErrorIs(t, err, ErrorMissingRequiredArgument)
	require.Equal(t, "Missing required argument: <extra>", err.Error())

	_, _, err = GetRequiredArg(nil)
	require.ErrorIs(t, err, ErrorMissingRequiredArgument)
	require.Equal(t, "Missing required argument", err.Error())
}
