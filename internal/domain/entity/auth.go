package entity

// Failure messages returned by password authentication.
// Unknown identity and wrong secret share one message so accounts cannot be enumerated.
const (
	MessageAuthenticationFailed = "Authentication failed."
	MessageFailedToStartSession = "Failed to start session."
)

// AuthConfig names the list and fields used for password authentication.
type AuthConfig struct {
	ListKey       string // The list holding authenticatable items, e.g. "User".
	IdentityField string // Unique field used to look an item up, e.g. "email".
	SecretField   string // Field holding the hashed secret, e.g. "password".
	SessionData   string // GraphQL selection set attached to every session, defaults to "id".
}

// AuthResult is the outcome of a password authentication attempt.
// Exactly one of Success and Failure is set.
type AuthResult struct {
	Success *AuthSuccess
	Failure *AuthFailure
}

// AuthSuccess carries the minted session token and the authenticated item.
type AuthSuccess struct {
	SessionToken string
	Item         Item
}

// AuthFailure carries a generic, user-facing failure message.
type AuthFailure struct {
	Message string
}

// NewAuthSuccess builds a successful result.
func NewAuthSuccess(token string, item Item) *AuthResult {
	return &AuthResult{Success: &AuthSuccess{SessionToken: token, Item: item}}
}

// NewAuthFailure builds a failed result.
func NewAuthFailure(message string) *AuthResult {
	return &AuthResult{Failure: &AuthFailure{Message: message}}
}

// IsSuccess reports whether the attempt succeeded.
func (r *AuthResult) IsSuccess() bool {
	return r != nil && r.Success != nil
}
