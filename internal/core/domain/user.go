package domain

// User is a registered user of the application. PasswordHash is a bcrypt
// hash; the plaintext never leaves the auth handler.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsVerified   bool   `json:"isVerified"`
	AuditFields
}
