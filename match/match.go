// Package match provides argument matchers for ExpectCalledWithMatches.
// Any gomega matcher works in the same position:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    "github.com/toejough/calcdouble/match"
//	)
//
//	mock.Add.ExpectCalledWithMatches(BeNumerically(">", 0), match.BeAny).InjectReturnValues(42)
package match

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// BeAny is a matcher that matches any value.
// It is the wildcard for an argument the test does not care about.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{}

// Equal returns a matcher that accepts values deeply equal to expected.
// Passing expected directly to ExpectCalledWithMatches does the same; Equal exists
// for composing with other matchers.
func Equal(expected any) Matcher {
	return equalMatcher{expected: expected}
}

// InRange returns a matcher accepting values of type T within [low, high].
func InRange[T cmp.Ordered](low, high T) Matcher {
	return Satisfy(func(value T) error {
		if value < low || value > high {
			//nolint:err113 // match failure with dynamic context
			return fmt.Errorf("expected value in [%v, %v], got %v", low, high, value)
		}

		return nil
	})
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	mock.Divide.ExpectCalledWithMatches(match.BeAny, match.Satisfy(func(y int) error {
//	    if y == 0 { return errors.New("expected non-zero divisor") }
//	    return nil
//	}))
func Satisfy[T any](predicate func(T) error) Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

// unexported variables.
var (
	errTypeMismatch = errors.New("type mismatch")
)

type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type equalMatcher struct {
	expected any
}

func (m equalMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v, got %#v", m.expected, actual)
}

func (m equalMatcher) Match(actual any) (bool, error) {
	return reflect.DeepEqual(actual, m.expected), nil
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}
