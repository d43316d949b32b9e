package utils

import (
	"errors" // Claim validation errors
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ScopeTokenTTL is how long a browser keeps its storage scope without visiting
const ScopeTokenTTL = 365 * 24 * time.Hour

// ErrMissingClientID is returned for a validly signed token without a client ID
var ErrMissingClientID = errors.New("scope token has no client id")

// ScopeClaims names the storage scope a browser owns
type ScopeClaims struct {
	ClientID             string `json:"client_id"` // Browser client ID, the storage scope
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateScopeToken creates a signed token binding a browser to clientID
func GenerateScopeToken(clientID, secret string) (string, error) {
	now := time.Now()
	// Set token claims
	claims := ScopeClaims{
		ClientID: clientID, // Custom claim for the client ID
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ScopeTokenTTL)), // Token expires with the scope
			IssuedAt:  jwt.NewNumericDate(now),                    // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseScopeToken parses and validates a scope token string
func ParseScopeToken(tokenStr, secret string) (*ScopeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &ScopeClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*ScopeClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid // Return error if token is invalid
	}
	if claims.ClientID == "" {
		return nil, ErrMissingClientID
	}
	return claims, nil
}
