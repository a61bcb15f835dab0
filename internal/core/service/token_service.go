package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// DefaultTokenTTL is how long an issued access token stays valid.
const DefaultTokenTTL = time.Hour

var errNoSecret = errors.New("access token secret is not configured")

var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// TokenService signs caller-supplied payloads and verifies them back. Tokens
// are never stored server-side, so a token is trusted until it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs claims with HS256, adding iat (unless present) and exp. A
// payload that already has exp is rejected.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	if len(s.secret) == 0 {
		return "", errNoSecret
	}
	if _, ok := claims["exp"]; ok {
		return "", fmt.Errorf("%w: payload already has an exp property", domain.ErrInvalidClaims)
	}

	now := s.now()
	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	if _, ok := mc["iat"]; !ok {
		mc["iat"] = now.Unix()
	}
	mc["exp"] = now.Add(s.ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
}

// Verify checks the signature and expiry of token and returns its payload.
// Every failure is reported as domain.ErrUnauthorized.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	if len(s.secret) == 0 || token == "" {
		return nil, domain.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods(hmacMethods), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	return domain.Claims(claims), nil
}
