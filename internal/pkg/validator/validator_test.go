package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("8a0e3c92-3f6e-4e1d-9c54-2f6f3d9f1a01"))
	assert.True(t, IsValidUUID("8A0E3C92-3F6E-4E1D-9C54-2F6F3D9F1A01"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("8a0e3c92-3f6e-4e1d-9c54"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-06-30")
	require.True(t, ok)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 30, d.Day())

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("30-06-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	minutes, ok := IsValidTimeOfDay("09:00")
	require.True(t, ok)
	assert.Equal(t, 540, minutes)

	minutes, ok = IsValidTimeOfDay("23:59")
	require.True(t, ok)
	assert.Equal(t, 1439, minutes)

	_, ok = IsValidTimeOfDay("24:00")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("9am")
	assert.False(t, ok)
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "is required"},
		{Field: "period_end", Message: "must not be before period_start"},
	}

	assert.Equal(t, "employee_id: is required; period_end: must not be before period_start", errs.Error())
	assert.Equal(t, map[string]string{
		"employee_id": "is required",
		"period_end":  "must not be before period_start",
	}, errs.ToMap())
}
