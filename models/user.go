package models

// User is a registered account, member or admin.
// Accounts are created once and never edited or deleted; Password
// holds a bcrypt hash, never the plaintext.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}
