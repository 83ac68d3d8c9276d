package domain

// AuthProvider identifies the credential scheme that created and owns an account.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user identity record.
type User struct {
	UserID       string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash *string      `json:"-"` // only for ProviderLocal
	AuthProvider AuthProvider `json:"authProvider"`
	ExternalID   *string      `json:"-"` // only for ProviderGoogle
	Timestamps
}

// WithoutCredentials returns a copy of the user with the password hash stripped.
func (u User) WithoutCredentials() User {
	u.PasswordHash = nil
	return u
}

// ExternalIdentity is the narrow result of verifying a third-party identity assertion.
type ExternalIdentity struct {
	ExternalID string
	Email      string
	Name       string
}

// AuthResult is returned by signup and the login flows.
type AuthResult struct {
	User  User
	Token string
}

// Owner is the public subset of a user shown next to the things they posted.
type Owner struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
