package calculator

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// Cached memoizes the results of another Calculator.
// Each distinct (operation, x, y) reaches the inner calculator at most once while it stays in the cache.
type Cached struct {
	inner Calculator
	cache *lru.Cache
}

// NewCached wraps inner with a least-recently-used cache holding up to size results.
func NewCached(inner Calculator, size int) (*Cached, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCacheSize, size)
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	return &Cached{inner: inner, cache: cache}, nil
}

// Add returns the cached sum, asking the inner calculator on a miss.
func (c *Cached) Add(x, y int) int {
	return c.lookup(opAdd, x, y, c.inner.Add)
}

// Divide returns the cached quotient, asking the inner calculator on a miss.
func (c *Cached) Divide(x, y int) int {
	return c.lookup(opDivide, x, y, c.inner.Divide)
}

// Len returns the number of cached results.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Multiply returns the cached product, asking the inner calculator on a miss.
func (c *Cached) Multiply(x, y int) int {
	return c.lookup(opMultiply, x, y, c.inner.Multiply)
}

// Subtract returns the cached difference, asking the inner calculator on a miss.
func (c *Cached) Subtract(x, y int) int {
	return c.lookup(opSubtract, x, y, c.inner.Subtract)
}

// A panic from the inner calculator propagates and nothing is cached.
func (c *Cached) lookup(op operation, x, y int, compute func(x, y int) int) int {
	key := cacheKey{op: op, x: x, y: y}

	if value, ok := c.cache.Get(key); ok {
		if result, ok := value.(int); ok {
			return result
		}
	}

	result := compute(x, y)
	c.cache.Add(key, result)

	return result
}

type cacheKey struct {
	op   operation
	x, y int
}

type operation int

// unexported constants.
const (
	opAdd operation = iota
	opSubtract
	opMultiply
	opDivide
)
