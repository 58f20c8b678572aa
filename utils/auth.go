package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Claims represents the verified identity carried by a bearer token.
type Claims struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
	jwt.StandardClaims
}

// TokenVerifier checks a bearer token and returns the identity it proves.
// Token issuance belongs to the external identity provider; the API only
// ever verifies.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// JWTVerifier verifies HS256 tokens signed with the secret shared with the
// identity provider.
type JWTVerifier struct {
	key []byte
}

// NewJWTVerifier creates a verifier for the given shared secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{key: []byte(secret)}
}

// Verify parses and validates a token string.
func (v *JWTVerifier) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GenerateJWT signs a token for the given identity. Used by tooling and
// tests; the production issuer is the identity provider.
func GenerateJWT(secret, email, uid string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Email: email,
		UID:   uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
