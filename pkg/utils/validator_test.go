package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "postal-pickup-api/pkg/errors"
)

type sampleAddress struct {
	City         string `validate:"required"`
	PostalCode   string `validate:"required,postal_code"`
	ContactPhone string `validate:"required,sl_phone"`
}

type sampleRequest struct {
	ServiceType string        `validate:"required,service_type"`
	Description string        `validate:"required,min=10,max=500"`
	Weight      float64       `validate:"required,min=0.1"`
	Address     sampleAddress `validate:"required"`
}

func validSample() sampleRequest {
	return sampleRequest{
		ServiceType: "package",
		Description: "A box of ceramic plates, fragile",
		Weight:      2.3,
		Address: sampleAddress{
			City:         "Colombo",
			PostalCode:   "00100",
			ContactPhone: "+94771234567",
		},
	}
}

func TestValidateStructAccepts(t *testing.T) {
	require.NoError(t, ValidateStruct(validSample()))
}

func TestValidateStructPhonePattern(t *testing.T) {
	valid := []string{"+94771234567", "0771234567", "0112345678"}
	invalid := []string{"", "94771234567", "+9477123456", "+947712345678", "077123456a", "+1771234567"}

	for _, phone := range valid {
		s := validSample()
		s.Address.ContactPhone = phone
		assert.NoError(t, ValidateStruct(s), "phone %q should be valid", phone)
	}
	for _, phone := range invalid {
		s := validSample()
		s.Address.ContactPhone = phone
		assert.Error(t, ValidateStruct(s), "phone %q should be invalid", phone)
	}
}

func TestValidateStructPostalCode(t *testing.T) {
	for _, code := range []string{"1234", "123456", "12a45", ""} {
		s := validSample()
		s.Address.PostalCode = code
		assert.Error(t, ValidateStruct(s), "postal code %q should be invalid", code)
	}
}

func TestValidateStructDescriptionBounds(t *testing.T) {
	s := validSample()
	s.Description = "too short"
	assert.Error(t, ValidateStruct(s))

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	s.Description = string(long)
	assert.Error(t, ValidateStruct(s))
}

func TestValidateStructWeightMinimum(t *testing.T) {
	s := validSample()
	s.Weight = 0.05
	assert.Error(t, ValidateStruct(s))
}

func TestValidateStructFieldMessages(t *testing.T) {
	s := validSample()
	s.ServiceType = "parcel"
	s.Address.ContactPhone = "12345"

	err := ValidateStruct(s)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "ServiceType")
	assert.Contains(t, appErr.Fields, "Address.ContactPhone")
}
