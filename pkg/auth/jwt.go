package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig configures token validation. The identity provider issuing the
// tokens is a black box; we only verify signature, issuer and expiry.
type JWTConfig struct {
	SecretKey string
	Issuer    string
}

// JWTValidator validates bearer tokens and extracts user claims.
type JWTValidator struct {
	config JWTConfig
}

// NewJWTValidator creates a validator for HS256-signed tokens.
func NewJWTValidator(config JWTConfig) (*JWTValidator, error) {
	if config.SecretKey == "" {
		return nil, fmt.Errorf("jwt secret key is required")
	}
	return &JWTValidator{config: config}, nil
}

// Validate parses the token and returns the user's claims.
func (v *JWTValidator) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.config.Issuer))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(v.config.SecretKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	claims := &Claims{UserID: sub}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}

	return claims, nil
}
