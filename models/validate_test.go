package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookface/apperr"
)

func TestNewRegistration(t *testing.T) {
	t.Run("trims names and normalizes email", func(t *testing.T) {
		reg, err := NewRegistration("  John ", " Doe ", " John.Doe@Test.COM ", "secret1", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "John", reg.FirstName)
		assert.Equal(t, "Doe", reg.LastName)
		assert.Equal(t, "john.doe@test.com", reg.Email)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		cases := []struct {
			name     string
			first    string
			last     string
			email    string
			password string
			confirm  string
			want     error
		}{
			{"missing first name", "  ", "Doe", "a@b.com", "secret1", "secret1", apperr.ErrFirstNameRequired},
			{"missing last name", "John", "", "a@b.com", "secret1", "secret1", apperr.ErrLastNameRequired},
			{"missing email", "John", "Doe", "   ", "secret1", "secret1", apperr.ErrEmailRequired},
			{"short password", "John", "Doe", "a@b.com", "12345", "12345", apperr.ErrPasswordTooShort},
			{"password mismatch", "John", "Doe", "a@b.com", "secret1", "secret2", apperr.ErrPasswordMismatch},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewRegistration(tc.first, tc.last, tc.email, tc.password, tc.confirm)
				assert.ErrorIs(t, err, tc.want)
				assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
			})
		}
	})
}

func TestNewProfileUpdate(t *testing.T) {
	upd, err := NewProfileUpdate(" John ", "Doe", "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", upd.Bio)

	_, err = NewProfileUpdate("John", "Doe", strings.Repeat("x", MaxBioLength+1))
	assert.ErrorIs(t, err, apperr.ErrBioTooLong)
}

func TestValidateContent(t *testing.T) {
	content, err := ValidateContent("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	_, err = ValidateContent("   ")
	assert.ErrorIs(t, err, apperr.ErrEmptyContent)

	_, err = ValidateContent(strings.Repeat("x", MaxContentLength+1))
	assert.ErrorIs(t, err, apperr.ErrContentTooLong)

	content, err = ValidateContent(strings.Repeat("x", MaxContentLength))
	require.NoError(t, err)
	assert.Len(t, content, MaxContentLength)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.COM "))
}
