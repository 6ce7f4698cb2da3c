package domain

// User models an authenticated operator. Users are never created or
// destroyed at runtime; a User value only exists as an identity resolved
// from a valid session token.
type User struct {
	Username string `json:"username"`
}

// Credential is a static username/password-hash pair loaded once at startup.
type Credential struct {
	Username     string
	PasswordHash string
}
