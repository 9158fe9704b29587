package models

import "strings"

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// ValidUsername reports whether s can name both a credential row and a
// ledger file: non-empty, no path separators, not a dot entry, no NUL.
func ValidUsername(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}
