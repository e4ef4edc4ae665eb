package domain

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload for issued tokens. The custom fields mirror
// Principal; issued-at and expiry live in the embedded RegisteredClaims.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Principal returns the identity encoded in the claims.
func (c *Claims) Principal() Principal {
	return Principal{ID: c.UserID, Username: c.Username, Role: c.Role}
}
