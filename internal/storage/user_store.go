// Package storage provides functionality for persisting and retrieving users
// and tasks. This file handles stored user credentials.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash returns the bcrypt hash of password as stored in the user file.
func PasswordHash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// PasswordHashed reports whether stored looks like a bcrypt hash.
func PasswordHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

// PasswordMatch compares a stored credential with the password a user typed.
// Stored values may be plain text or bcrypt hashes.
func PasswordMatch(stored, password string) (bool, error) {
	if !PasswordHashed(stored) {
		return stored == password, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("failed to compare passwords: %w", err)
	}
	return true, nil
}
