package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	var res Result
	assert.True(t, res.IsValid())

	res.AddWarning("looks unusual")
	assert.True(t, res.IsValid(), "warnings never block")

	res.AddError("amount", "cannot be negative")
	assert.False(t, res.IsValid())
	assert.Equal(t, FieldError{Field: "amount", Message: "cannot be negative"}, res.Errors[0])
}

func TestResult_Merge(t *testing.T) {
	var a, b Result
	a.AddError("x", "first")
	b.AddError("y", "second")
	b.AddWarning("advisory")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Equal(t, "x", a.Errors[0].Field)
	assert.Equal(t, "y", a.Errors[1].Field)
	assert.Equal(t, []string{"advisory"}, a.Warnings)
}
