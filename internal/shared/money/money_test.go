package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRate(t *testing.T) {
	assert.Equal(t, int64(250), ApplyRate(2500, 0.10))
	assert.Equal(t, int64(900), ApplyRate(120_000, 0.0075))
	assert.Equal(t, int64(0), ApplyRate(0, 0.10))

	// Rounds half away from zero.
	assert.Equal(t, int64(3), ApplyRate(25, 0.10))
	assert.Equal(t, int64(-3), ApplyRate(-25, 0.10))
	assert.Equal(t, int64(2), ApplyRate(24, 0.10))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "27.50", Format(2750))
	assert.Equal(t, "0.05", Format(5))
	assert.Equal(t, "-1.00", Format(-100))
}
