// Package jwt provides the signed session tokens carried by the auth cookie.
//
// A session token is a compact HS256 JWT whose subject is the account id.
// Tokens are valid for 15 days; logout only clears the cookie, so a token
// remains cryptographically valid until its natural expiry. There is no
// server-side blacklist.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("jwt: invalid token")
	ErrExpiredToken     = errors.New("jwt: token has expired")
	ErrTokenNotFound    = errors.New("jwt: token not found")
	ErrInvalidClaims    = errors.New("jwt: invalid claims")
	ErrTokenNotYetValid = errors.New("jwt: token not yet valid")
)

// SessionTTL is the session token lifetime, mirrored by the cookie max-age.
const SessionTTL = 15 * 24 * time.Hour

// TokenService creates and validates session tokens.
// Create one instance and reuse it throughout the application.
type TokenService struct {
	secret []byte
	issuer string
	expiry time.Duration
	parser *jwt.Parser
}

// NewTokenService builds a TokenService around the server-held signing
// secret. The parser is configured restrictively: HS256 only, expiration
// required, strict base64 decoding, issuer checked.
func NewTokenService(secret, issuer string) *TokenService {
	parser := jwt.NewParser(
		// Only accept HS256 - prevents "algorithm confusion" attacks.
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithIssuer(issuer),
	)

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		expiry: SessionTTL,
		parser: parser,
	}
}

// GenerateSessionToken mints a signed token for the given account id.
func (s *TokenService) GenerateSessionToken(ctx context.Context, subject string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("creating session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a token string and returns its claims.
func (s *TokenService) ParseSessionToken(ctx context.Context, tokenString string) (*jwt.RegisteredClaims, error) {
	if tokenString == "" {
		return nil, ErrTokenNotFound
	}

	claims := &jwt.RegisteredClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, convertError(err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetSubjectFromToken extracts the account id from a session token.
func (s *TokenService) GetSubjectFromToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.ParseSessionToken(ctx, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// convertError transforms jwt library errors into our custom errors.
func convertError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpiredToken, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %v", ErrTokenNotYetValid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: token is malformed", ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: signature is invalid", ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}
