package core

import "sync"

// GetOrCreateDouble returns the Double for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Double, so every mock
// built for one test shares a single expectation list and a single teardown check.
//
// If the TestReporter supports Cleanup (like *testing.T), the Double is verified and
// removed from the registry when the test completes.
func GetOrCreateDouble(t TestReporter) *Double {
	registryMu.Lock()
	defer registryMu.Unlock()

	if double, ok := registry[t]; ok {
		return double
	}

	double := NewDouble(t)
	registry[t] = double

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return double
}

// Verify checks the expectations of the Double registered under t.
// If no Double has been created for t yet, Verify returns immediately.
func Verify(t TestReporter) {
	registryMu.Lock()

	double, ok := registry[t]

	registryMu.Unlock()

	if !ok {
		return
	}

	double.Verify()
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[TestReporter]*Double)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)
