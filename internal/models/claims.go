package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload issued by the platform's auth layer. This
// service only validates and reads it; token issuance happens elsewhere.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Country string `json:"country"`
}
