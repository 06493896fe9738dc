// Package calculator defines the arithmetic capability the application depends on, together with the
// implementations that satisfy it: the production client, an in-process one, and a memoizing decorator.
package calculator

import (
	"errors"
	"fmt"
)

// Exported variables.
var (
	ErrDivideByZero     = errors.New("division by zero")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
	ErrNotCallable      = errors.New("not callable outside production")
)

// Calculator is the capability a client for the external arithmetic service implements.
// The contract enforces no preconditions; division by zero is the implementer's concern.
type Calculator interface {
	// Add returns the sum of x and y.
	Add(x, y int) int
	// Subtract returns the difference of x and y.
	Subtract(x, y int) int
	// Multiply returns the product of x and y.
	Multiply(x, y int) int
	// Divide returns the quotient of x and y.
	Divide(x, y int) int
}

// External is the production client of the external arithmetic service.
// It is used by the real application, never during unit testing, so every method panics.
type External struct{}

// Add panics with ErrNotCallable.
func (External) Add(_, _ int) int {
	panic(notCallable("Add"))
}

// Divide panics with ErrNotCallable.
func (External) Divide(_, _ int) int {
	panic(notCallable("Divide"))
}

// Multiply panics with ErrNotCallable.
func (External) Multiply(_, _ int) int {
	panic(notCallable("Multiply"))
}

// Subtract panics with ErrNotCallable.
func (External) Subtract(_, _ int) int {
	panic(notCallable("Subtract"))
}

// Native computes true integer arithmetic in process.
type Native struct{}

// Add returns x + y.
func (Native) Add(x, y int) int {
	return x + y
}

// Divide returns x / y, truncated toward zero. It panics with ErrDivideByZero when y is 0.
func (Native) Divide(x, y int) int {
	if y == 0 {
		panic(fmt.Errorf("%w: %d / %d", ErrDivideByZero, x, y))
	}

	return x / y
}

// Multiply returns x * y.
func (Native) Multiply(x, y int) int {
	return x * y
}

// Subtract returns x - y.
func (Native) Subtract(x, y int) int {
	return x - y
}

func notCallable(method string) error {
	return fmt.Errorf("%w: External.%s can't be called in unit tests", ErrNotCallable, method)
}
