package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	AdminID uint
	Email   string
	Name    string
	JTI     string
}

// AccessTokenClaims represents the typed JWT issued to the admin panel.
type AccessTokenClaims struct {
	AdminID uint   `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}
