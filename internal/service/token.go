package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// DefaultAudience - aud, который Supabase Auth ставит в токены вошедших пользователей.
const DefaultAudience = "authenticated"

var ErrInvalidToken = errors.New("invalid access token")

// TokenVerifier проверяет access токены, выпущенные Supabase Auth (HS256).
// Выпуск токенов остаётся на стороне провайдера авторизации.
type TokenVerifier struct {
	secret   []byte
	audience string
}

// NewTokenVerifier создаёт верификатор. Пустой audience отключает проверку aud.
func NewTokenVerifier(secret, audience string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), audience: audience}
}

// Verify проверяет подпись и срок действия и извлекает identity из sub, email и role.
func (v *TokenVerifier) Verify(token string) (identity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Identity{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil || userID == uuid.Nil {
		return identity.Identity{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return identity.Identity{UserID: userID, Email: email, Role: role}, nil
}
