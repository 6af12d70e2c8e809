package types

import "github.com/golang-jwt/jwt/v5"

// Claims carried in the signed JWT for every authenticated request.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
