package model

// User exists for schema completeness; no route reads or writes users yet.
// PasswordHash is a bcrypt hash, never the plain password.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
