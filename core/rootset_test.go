package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorot/roots/core"
)

// TestRoots_EmptyAndSingle verifies the two constructors.
func TestRoots_EmptyAndSingle(t *testing.T) {
	empty := core.Empty[float64]()
	assert.Equal(t, 0, empty.Len(), "Empty must contain no roots")
	assert.Empty(t, empty.All())

	one := core.Single(1.5)
	assert.Equal(t, 1, one.Len(), "Single must contain exactly one root")
	assert.Equal(t, []float64{1.5}, one.All())
}

// TestRoots_InsertKeepsOrderAndUniqueness replays the growth sequence of
// the container: inserts arrive unordered, duplicates are dropped, and the
// set stays strictly ascending throughout.
func TestRoots_InsertKeepsOrderAndUniqueness(t *testing.T) {
	rs := core.Single(float32(1))

	rs = rs.Insert(1)
	assert.Equal(t, []float32{1}, rs.All(), "exact duplicate must be elided")

	rs = rs.Insert(0)
	assert.Equal(t, []float32{0, 1}, rs.All(), "insert before existing roots")

	rs = rs.Insert(0)
	assert.Equal(t, []float32{0, 1}, rs.All(), "duplicate of the minimum must be elided")

	rs = rs.Insert(3)
	assert.Equal(t, []float32{0, 1, 3}, rs.All(), "insert after existing roots")

	rs = rs.Insert(2)
	assert.Equal(t, []float32{0, 1, 2, 3}, rs.All(), "insert between existing roots")
}

// TestRoots_ValueSemantics confirms that Insert never mutates its receiver.
func TestRoots_ValueSemantics(t *testing.T) {
	base := core.Single(1.0)
	grown := base.Insert(2.0)

	assert.Equal(t, []float64{1}, base.All(), "receiver must stay unchanged")
	assert.Equal(t, []float64{1, 2}, grown.All())
}

// TestRoots_At covers indexed access and its bounds panic.
func TestRoots_At(t *testing.T) {
	rs := core.Single(-1.0).Insert(1.0)

	assert.Equal(t, -1.0, rs.At(0))
	assert.Equal(t, 1.0, rs.At(1))
	assert.Panics(t, func() { rs.At(2) }, "out-of-range access must panic")
}

// TestRoots_CapacityViolationPanics asserts the degree-bound contract: a
// fifth distinct root is a programmer error, not a recoverable condition.
func TestRoots_CapacityViolationPanics(t *testing.T) {
	rs := core.Single(1.0).Insert(2).Insert(3).Insert(4)
	require.Equal(t, 4, rs.Len())

	assert.Panics(t, func() { rs.Insert(5) })
	assert.NotPanics(t, func() { rs.Insert(4) }, "duplicate of a full set is still elided, not rejected")
}
