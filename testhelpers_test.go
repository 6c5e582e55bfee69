package opts

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/DavidGamba/go-opts/internal/option"
	"github.com/DavidGamba/go-opts/internal/stream"
	"github.com/davecgh/go-spew/spew"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the package Loggers and returns a
// function that prints the output if the test failed.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	option.Logger.SetOutput(buf)
	stream.Logger.SetOutput(buf)
	return func() {
		if t.Failed() && len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}

func resultError(expected, got *Result) string {
	return fmt.Sprintf("expected:\n%s\ngot:\n%s\n", spew.Sdump(expected), spew.Sdump(got))
}

// testSchema - option configuration shared by the tests.
var testSchema = []Spec{
	{Name: "a", HasArg: false, Tag: "test_a", Description: "A simple test option"},
	{Name: "b", HasArg: true, Tag: "test_b", Description: "A simple test option"},
	{Name: "c", HasArg: false, Tag: "test_c", Description: "A simple test option"},
	{Name: "foo", HasArg: false, Tag: "opttag", Description: "A simple test option"},
	{Name: "bar", HasArg: true, Tag: "test_e", Description: "A simple test option"},
	{Name: "baz", HasArg: false, Tag: "opttag", Description: "A simple test option"},
}
