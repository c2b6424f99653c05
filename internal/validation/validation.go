// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var userIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var digitRegex = regexp.MustCompile(`[0-9]`)

var letterRegex = regexp.MustCompile(`[a-zA-Z]`)

// ValidateUserID checks if a user id meets requirements
func ValidateUserID(userID string) error {
	if len(userID) < 3 {
		return fmt.Errorf("user ID must be at least 3 characters long")
	}

	if len(userID) > 30 {
		return fmt.Errorf("user ID must not exceed 30 characters")
	}

	// Only allow alphanumeric, underscores, and hyphens
	if !userIDRegex.MatchString(userID) {
		return fmt.Errorf("user ID can only contain letters, numbers, underscores, and hyphens")
	}

	// Cannot start or end with underscore/hyphen
	if userID[0] == '_' || userID[0] == '-' || userID[len(userID)-1] == '_' || userID[len(userID)-1] == '-' {
		return fmt.Errorf("user ID cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	// Check minimum length
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	// Check maximum length (prevent unreasonable inputs)
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	if !letterRegex.MatchString(password) {
		return fmt.Errorf("password must contain at least one letter")
	}

	if !digitRegex.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

// ValidateDisplayName checks if a display name meets requirements
func ValidateDisplayName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if len(name) > 100 {
		return fmt.Errorf("name must not exceed 100 characters")
	}

	return nil
}
