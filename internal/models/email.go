package models

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmailAddress is a validated, normalized (trimmed, lowercased) email.
type EmailAddress string

func NewEmailAddress(address string) (EmailAddress, error) {
	if strings.TrimSpace(address) == "" {
		return "", fmt.Errorf("%w: email address cannot be empty", ErrInvalidInput)
	}

	normalized := strings.ToLower(strings.TrimSpace(address))
	if !emailPattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: invalid email address format: %s", ErrInvalidInput, address)
	}

	return EmailAddress(normalized), nil
}

func (e EmailAddress) String() string {
	return string(e)
}

func IsValidEmail(address string) bool {
	_, err := NewEmailAddress(address)
	return err == nil
}
