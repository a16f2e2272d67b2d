package security

import (
	"strconv"
	"time"

	"notes-be/internal/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and decodes the stateless bearer tokens used for
// request authentication. Tokens are HS256-signed and carry the user id as
// the subject claim. Expiry is enforced; clients obtain a fresh token by
// logging in again.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *TokenManager) Issue(userId uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userId), 10),
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the signature and extracts the subject user id. Every
// failure mode (bad signature, expired, missing or non-numeric subject)
// collapses into an InvalidToken outcome.
func (m *TokenManager) Decode(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.InvalidToken("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.InvalidToken("Invalid claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, apperr.InvalidToken("Invalid token")
	}

	userId, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, apperr.InvalidToken("Invalid token")
	}
	return uint(userId), nil
}
