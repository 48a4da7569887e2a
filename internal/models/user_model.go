// Package models defines the data structures shared by the task manager packages.
package models

import "strings"

// User is a registered account. Password holds whatever the user store keeps,
// plain text by default or a bcrypt hash when hashing is enabled.
type User struct {
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

func NewUser(username, password string) User {
	return User{
		Username: username,
		Password: password,
	}
}

// TextValid reports whether s can be stored in a delimited record.
func TextValid(s string) bool {
	return !strings.ContainsAny(s, ";\r\n")
}
