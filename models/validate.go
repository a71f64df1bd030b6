package models

import (
	"strings"

	"bookface/apperr"
)

const (
	MaxContentLength = 1000
	MaxBioLength     = 500
	MinPasswordLen   = 6
)

// Registration holds trimmed, normalized signup input.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func NewRegistration(firstName, lastName, email, password, confirmPassword string) (*Registration, error) {
	r := &Registration{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     NormalizeEmail(email),
	}
	if r.FirstName == "" {
		return nil, apperr.ErrFirstNameRequired
	}
	if r.LastName == "" {
		return nil, apperr.ErrLastNameRequired
	}
	if r.Email == "" {
		return nil, apperr.ErrEmailRequired
	}
	if len(password) < MinPasswordLen {
		return nil, apperr.ErrPasswordTooShort
	}
	if password != confirmPassword {
		return nil, apperr.ErrPasswordMismatch
	}
	r.Password = password
	return r, nil
}

type ProfileUpdate struct {
	FirstName string
	LastName  string
	Bio       string
}

func NewProfileUpdate(firstName, lastName, bio string) (*ProfileUpdate, error) {
	p := &ProfileUpdate{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Bio:       strings.TrimSpace(bio),
	}
	if p.FirstName == "" {
		return nil, apperr.ErrFirstNameRequired
	}
	if p.LastName == "" {
		return nil, apperr.ErrLastNameRequired
	}
	if len(p.Bio) > MaxBioLength {
		return nil, apperr.ErrBioTooLong
	}
	return p, nil
}

// ValidateContent trims post, comment and message bodies and enforces the
// shared length limit.
func ValidateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperr.ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return "", apperr.ErrContentTooLong
	}
	return content, nil
}

// NormalizeEmail makes email comparison case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
