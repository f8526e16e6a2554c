// Package testutils provides utilities for testing Z-- code in Go.
package testutils

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/zminus"
)

// Result is the outcome of running a SourceTestCase.
type Result struct {
	// Output is everything the program printed.
	Output string
	// Vars is the program's top-level variables after it stopped.
	Vars zminus.Vars
	// Err is the error that stopped the program, if any.
	Err error
}

// A SourceTestCase is a test case containing Z-- source code and a predicate
// to check the result.
type SourceTestCase struct {
	// Source is the Z-- source code to execute.
	Source string
	// Input is the text available to input statements.
	Input string
	// Pass is a predicate taking the result of executing Source. If Pass
	// returns a non-empty string, the test fails with that message.
	Pass func(Result) string
}

// Run executes the test case's source on a new VM.
func (c SourceTestCase) Run(ctx context.Context) Result {
	var out strings.Builder
	vm, err := zminus.RunLines(ctx, zminus.SplitLines(c.Source), strings.NewReader(c.Input), &out)
	return Result{Output: out.String(), Vars: vm.Vars, Err: err}
}

// TestFunc returns a test function for the test case.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		r := c.Run(context.Background())
		if msg := c.Pass(r); msg != "" {
			t.Errorf("%s: %q produced wrong result: %s", name, c.Source, msg)
			if r.Err != nil {
				t.Logf("error: %v", r.Err)
			}
			t.Logf("output:\n%s", r.Output)
		}
	}
}

// PassOutput returns a Pass function that requires the program to succeed
// and print exactly want.
func PassOutput(want string) func(Result) string {
	return func(r Result) string {
		if r.Err != nil {
			return "unexpected error: " + r.Err.Error()
		}
		if diff := cmp.Diff(want, r.Output); diff != "" {
			return "wrong output (-want +got):\n" + diff
		}
		return ""
	}
}

// PassLines is PassOutput with one printed line per argument.
func PassLines(lines ...string) func(Result) string {
	if len(lines) == 0 {
		return PassOutput("")
	}
	return PassOutput(strings.Join(lines, "\n") + "\n")
}

// PassSuccess returns a Pass function that requires the program to finish
// without error.
func PassSuccess() func(Result) string {
	return func(r Result) string {
		if r.Err != nil {
			return "unexpected error: " + r.Err.Error()
		}
		return ""
	}
}

// PassFailure returns a Pass function that requires the program to fail.
func PassFailure() func(Result) string {
	return func(r Result) string {
		if r.Err == nil {
			return "expected an error"
		}
		return ""
	}
}

// PassError returns a Pass function that requires the program to fail with an
// error of type E anywhere in its chain.
func PassError[E error]() func(Result) string {
	return func(r Result) string {
		if r.Err == nil {
			return "expected an error"
		}
		var e E
		if !errors.As(r.Err, &e) {
			return "wrong error type: " + r.Err.Error()
		}
		return ""
	}
}

// PassVars returns a Pass function that requires the program to succeed and
// leave each of the given variables bound to the given value. Other
// variables are ignored.
func PassVars(want map[string]zminus.Value) func(Result) string {
	return func(r Result) string {
		if r.Err != nil {
			return "unexpected error: " + r.Err.Error()
		}
		got := make(map[string]zminus.Value, len(want))
		for name := range want {
			if v, ok := r.Vars.Lookup(name); ok {
				got[name] = v
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			return "wrong variables (-want +got):\n" + diff
		}
		return ""
	}
}

// CheckCases runs each case as a subtest.
func CheckCases(t *testing.T, cases map[string]SourceTestCase) {
	t.Helper()
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
