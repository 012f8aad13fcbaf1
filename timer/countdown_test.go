package timer

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNewCountdownDefault(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		c = NewCountdown()
	)

	require.NotNil(c)
	assert.Equal(DefaultMaxDuration, c.MaxDuration())
	assert.Zero(c.Value())
	assert.False(c.Enabled())
	assert.False(c.Interrupted())
}

func testNewCountdownWithMaxDuration(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = NewCountdown(WithMaxDuration(10))
	)

	assert.Equal(10, c.MaxDuration())
}

func TestNewCountdown(t *testing.T) {
	t.Run("Default", testNewCountdownDefault)
	t.Run("WithMaxDuration", testNewCountdownWithMaxDuration)
}

func testCountdownSetInvalid(t *testing.T) {
	for _, duration := range []int{-1, 0, DefaultMaxDuration + 1} {
		t.Run(strconv.Itoa(duration), func(t *testing.T) {
			var (
				assert = assert.New(t)
				c      = NewCountdown()
			)

			assert.Equal(ErrInvalidDuration, c.Set(duration))
			assert.Zero(c.Value())
			assert.False(c.Enabled())
		})
	}
}

func testCountdownSetValid(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = NewCountdown()
	)

	assert.NoError(c.Set(DefaultMaxDuration))
	assert.Equal(DefaultMaxDuration, c.Value())
	assert.True(c.Enabled())
	assert.False(c.Interrupted())
}

func TestCountdownSet(t *testing.T) {
	t.Run("Invalid", testCountdownSetInvalid)
	t.Run("Valid", testCountdownSetValid)
}

// TestCountdownExpiration mirrors the canonical lifecycle through the
// single-mode surface.
func TestCountdownExpiration(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		c       = NewCountdown()
	)

	require.NoError(c.Set(5))

	for _, v := range []int{4, 3, 2, 1, 0} {
		assert.True(c.Advance())
		assert.Equal(v, c.Value())
	}

	assert.False(c.Advance())
	assert.True(c.CheckInterrupt())
	assert.True(c.Interrupted())
	assert.False(c.Enabled())
	assert.False(c.CheckInterrupt())

	c.Reset()
	assert.Zero(c.Value())
	assert.False(c.Enabled())
	assert.False(c.Interrupted())
}
