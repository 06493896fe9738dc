package core

import (
	"fmt"
	"reflect"
	"strings"
)

// Method represents a method on a doubled interface.
// It provides the ways to register expectations for that specific method.
// Code generation creates one of these for each method in an interface.
type Method struct {
	double *Double
	name   string
}

// NewMethod creates a new Method.
// This is used by generated mock code.
func NewMethod(double *Double, name string) *Method {
	return &Method{
		double: double,
		name:   name,
	}
}

// Call invokes the double as this method with args, returning the consumed expectation's values.
// Generated implementations forward every interface call through here.
func (m *Method) Call(args ...any) []any {
	m.double.Helper()

	return m.double.Invoke(m.name, args...)
}

// ExpectCalledWithExactly registers an expectation for a call with exactly the specified arguments.
// Uses reflection-based DeepEqual for argument matching.
func (m *Method) ExpectCalledWithExactly(args ...any) *Expectation {
	validator := func(actualArgs []any) error {
		if len(actualArgs) != len(args) {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("expected %d args, got %d", len(args), len(actualArgs))
		}

		for i, expected := range args {
			if !valuesEqual(actualArgs[i], expected) {
				//nolint:err113 // validation error with dynamic context
				return fmt.Errorf("arg %d: expected %#v, got %#v", i, expected, actualArgs[i])
			}
		}

		return nil
	}

	return m.double.Expect(m.name, describeArgs(args), validator)
}

// ExpectCalledWithMatches registers an expectation for a call whose arguments satisfy the given matchers.
// Each matcher should implement the Matcher interface (compatible with gomega matchers);
// plain values are compared exactly.
func (m *Method) ExpectCalledWithMatches(matchers ...any) *Expectation {
	validator := func(actualArgs []any) error {
		if len(actualArgs) != len(matchers) {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("expected %d args, got %d", len(matchers), len(actualArgs))
		}

		for index, matcher := range matchers {
			ok, failureMsg := MatchValue(actualArgs[index], matcher)
			if !ok {
				if failureMsg != "" {
					//nolint:err113 // validation error with dynamic context
					return fmt.Errorf("arg %d: %s", index, failureMsg)
				}
				//nolint:err113 // validation error with dynamic context
				return fmt.Errorf("arg %d: matcher failed for value %#v", index, actualArgs[index])
			}
		}

		return nil
	}

	return m.double.Expect(m.name, describeArgs(matchers), validator)
}

// Name returns the qualified method name used in diagnostics.
func (m *Method) Name() string {
	return m.name
}

func describeArgs(args []any) string {
	parts := make([]string, 0, len(args))

	for _, arg := range args {
		if _, ok := arg.(Matcher); ok {
			parts = append(parts, fmt.Sprintf("<%T>", arg))

			continue
		}

		parts = append(parts, fmt.Sprintf("%#v", arg))
	}

	return strings.Join(parts, ", ")
}

// valuesEqual checks if two values are equal using reflect.DeepEqual.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
