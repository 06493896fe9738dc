package core

import "fmt"

// Expectation is a double's rule for one method: which arguments it accepts,
// exactly how many calls it allows, and what those calls return.
type Expectation struct {
	double      *Double
	method      string
	description string
	validator   func([]any) error

	times      int
	calls      int
	returns    []any
	panicking  bool
	panicValue any
	reported   bool
}

// Calls returns how many calls this expectation has consumed so far.
func (e *Expectation) Calls() int {
	e.double.mu.Lock()
	defer e.double.mu.Unlock()

	return e.calls
}

// Method returns the name of the method this expectation applies to.
func (e *Expectation) Method() string {
	return e.method
}

// Panic makes matching calls panic with value instead of returning.
func (e *Expectation) Panic(value any) *Expectation {
	e.double.mu.Lock()
	e.panicking = true
	e.panicValue = value
	e.double.mu.Unlock()

	return e
}

// Remaining returns how many more calls this expectation accepts.
func (e *Expectation) Remaining() int {
	e.double.mu.Lock()
	defer e.double.mu.Unlock()

	return e.times - e.calls
}

// Return sets the values matching calls return.
// Missing values leave the corresponding results at their zero value.
func (e *Expectation) Return(values ...any) *Expectation {
	e.double.mu.Lock()
	e.returns = values
	e.double.mu.Unlock()

	return e
}

// Satisfied reports whether the expectation was consumed exactly its configured number of times.
func (e *Expectation) Satisfied() bool {
	e.double.mu.Lock()
	defer e.double.mu.Unlock()

	return e.calls == e.times
}

// String describes the expectation for diagnostics, e.g. `Calculator.Add(100, 0) x1`.
func (e *Expectation) String() string {
	return fmt.Sprintf("%s(%s) x%d", e.method, e.description, e.times)
}

// Times sets exactly how many calls the expectation must receive. Times(0) means never.
// A negative count fails the test.
func (e *Expectation) Times(n int) *Expectation {
	if n < 0 {
		e.double.Helper()
		e.double.Fatalf("invalid call count %d for %s: must not be negative", n, e.method)

		return e
	}

	e.double.mu.Lock()
	e.times = n
	e.double.mu.Unlock()

	return e
}
