package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailAddress_NormalizesCaseAndWhitespace(t *testing.T) {
	email, err := NewEmailAddress("  User@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email.String())
}

func TestNewEmailAddress_ValidFormats(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"first.last@example.co",
		"user+tag@sub.example.org",
		"user_name%x@example-host.io",
	}

	for _, address := range valid {
		_, err := NewEmailAddress(address)
		assert.NoError(t, err, "expected %q to be accepted", address)
	}
}

func TestNewEmailAddress_InvalidFormats(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"not-an-email",
		"missing@domain",
		"@example.com",
		"user@.com",
		"user@com",
	}

	for _, address := range invalid {
		_, err := NewEmailAddress(address)
		require.Error(t, err, "expected %q to be rejected", address)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ana@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
}
