package app_test

import (
	"fmt"
	"runtime"
	"sync"
)

// fakeReporter records failures instead of failing the test.
// Fatalf ends the calling goroutine like testing.T does, so code under test must be driven through Run.
type fakeReporter struct {
	mu       sync.Mutex
	failures []string
}

func (f *fakeReporter) Failures() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.failures...)
}

func (f *fakeReporter) Fatalf(format string, args ...any) {
	f.mu.Lock()
	f.failures = append(f.failures, fmt.Sprintf(format, args...))
	f.mu.Unlock()

	runtime.Goexit()
}

func (f *fakeReporter) Helper() {}

// Run runs fn in its own goroutine and reports whether it returned normally.
func (f *fakeReporter) Run(fn func()) bool {
	var (
		wg       sync.WaitGroup
		returned bool
	)

	wg.Add(1)

	go func() {
		defer wg.Done()
		fn()

		returned = true
	}()

	wg.Wait()

	return returned
}
