package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was well-formed and correctly signed but
	// its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers everything else: bad signature, malformed
	// structure, wrong signing method, missing claim.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenService issues and verifies the signed bearer tokens that carry a
// user's email claim. The secret and lifetime are injected at construction so
// there is no ambient signing state; rotating the secret invalidates every
// outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given email, valid for the configured ttl.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded email claim.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", ErrTokenInvalid
	}
	return email, nil
}
