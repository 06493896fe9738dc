// Package core provides the internal implementation of calcdouble's test double:
// the expectation list, call matching, and teardown verification.
package core

import (
	"fmt"
	"strings"
	"sync"
)

// TestReporter is the minimal interface the double needs from test frameworks.
// *testing.T and *testing.B satisfy it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Double is a configurable stand-in for an interface.
// Expectations are matched in registration order; the first live one whose matchers accept
// the arguments is consumed.
type Double struct {
	t TestReporter

	mu           sync.Mutex // Protects expectations and their counters
	expectations []*Expectation
}

// NewDouble creates a Double reporting to t.
// If t supports Cleanup (like *testing.T), the double is verified when the test completes.
func NewDouble(t TestReporter) *Double {
	double := &Double{t: t}

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(double.Verify)
	}

	return double
}

// Expect registers an expectation for methodName whose arguments are checked by validator.
// The validator returns nil for a match, or an error describing the mismatch.
// The expectation allows exactly one call until Times says otherwise.
func (d *Double) Expect(methodName, description string, validator func([]any) error) *Expectation {
	exp := &Expectation{
		double:      d,
		method:      methodName,
		description: description,
		validator:   validator,
		times:       1,
	}

	d.mu.Lock()
	d.expectations = append(d.expectations, exp)
	d.mu.Unlock()

	return exp
}

// Fatalf fails the test with a formatted message.
// Implements TestReporter interface.
func (d *Double) Fatalf(format string, args ...any) {
	d.t.Helper()
	d.t.Fatalf(format, args...)
}

// Helper marks the calling function as a test helper.
// Implements TestReporter interface.
func (d *Double) Helper() {
	d.t.Helper()
}

// Invoke records a call to methodName and returns the configured values of the expectation it consumed.
// A call no live expectation accepts fails the test immediately.
func (d *Double) Invoke(methodName string, args ...any) []any {
	d.t.Helper()

	d.mu.Lock()

	var reasons []string

	for _, exp := range d.expectations {
		if exp.method != methodName {
			continue
		}

		if exp.calls >= exp.times {
			reasons = append(reasons, fmt.Sprintf("%s: exhausted after %d call(s)", exp, exp.calls))

			continue
		}

		err := exp.validator(args)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: %v", exp, err))

			continue
		}

		exp.calls++
		returns, panicking, panicValue := exp.returns, exp.panicking, exp.panicValue
		d.mu.Unlock()

		if panicking {
			panic(panicValue)
		}

		return returns
	}

	d.mu.Unlock()

	msg := "unexpected call to " + formatCall(methodName, args)
	if len(reasons) == 0 {
		msg += ": no expectations registered for " + methodName
	} else {
		msg += ":\n  " + strings.Join(reasons, "\n  ")
	}

	d.t.Fatalf("%s", msg)

	return nil
}

// Pending returns the expectations that have not yet been consumed their configured number of times.
func (d *Double) Pending() []*Expectation {
	d.mu.Lock()
	defer d.mu.Unlock()

	var pending []*Expectation

	for _, exp := range d.expectations {
		if exp.calls != exp.times {
			pending = append(pending, exp)
		}
	}

	return pending
}

// Verify fails the test if any expectation was not consumed exactly its configured number of times.
// An unmet expectation is reported once, however many times Verify runs.
func (d *Double) Verify() {
	d.t.Helper()

	d.mu.Lock()

	var unmet []string

	for _, exp := range d.expectations {
		if exp.calls == exp.times || exp.reported {
			continue
		}

		exp.reported = true
		unmet = append(unmet, fmt.Sprintf("%s: called %d time(s)", exp, exp.calls))
	}

	d.mu.Unlock()

	if len(unmet) == 0 {
		return
	}

	d.t.Fatalf("unmet expectations:\n  %s", strings.Join(unmet, "\n  "))
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

func formatCall(methodName string, args []any) string {
	parts := make([]string, 0, len(args))

	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%#v", arg))
	}

	return methodName + "(" + strings.Join(parts, ", ") + ")"
}
