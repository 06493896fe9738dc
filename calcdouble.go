// Package calcdouble provides a test double for Go interfaces: register expectations per method,
// let the code under test call the double, and have unmet or unexpected calls fail the test.
//
// This is the public API entry point. Implementation lives in internal/core.
package calcdouble

import (
	"github.com/toejough/calcdouble/internal/core"
)

// Double is a configurable stand-in for an interface.
type Double = core.Double

// NewDouble creates a new Double. It verifies itself on teardown when t supports Cleanup.
func NewDouble(t TestReporter) *Double {
	return core.NewDouble(t)
}

// Expectation is a double's rule for one method: accepted arguments, exact call count, and results.
type Expectation = core.Expectation

// Method represents a method on a doubled interface.
type Method = core.Method

// NewMethod creates a new Method.
func NewMethod(double *Double, methodName string) *Method {
	return core.NewMethod(double, methodName)
}

// GetOrCreateDouble returns the Double for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Double instance.
func GetOrCreateDouble(t TestReporter) *Double {
	return core.GetOrCreateDouble(t)
}

// Verify checks every expectation registered under t.
func Verify(t TestReporter) {
	core.Verify(t)
}

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// TestReporter is the minimal interface calcdouble needs from test frameworks.
type TestReporter = core.TestReporter

// Any returns a matcher that matches any value.
func Any() Matcher {
	return core.Any()
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Satisfies returns a matcher that uses a predicate function to check for a match.
func Satisfies[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}
