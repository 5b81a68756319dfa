package utils

import (
	"errors"
	"testing"

	"hdmonks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	req := models.BookingRequest{FullName: "Asha", Email: "not-an-email", BusinessType: "msme", TimeSlotID: "s1"}

	err := ValidateStruct(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "phone is required")

	req.Email = "asha@example.com"
	req.Phone = "+91-9000000000"
	assert.NoError(t, ValidateStruct(req))
}
