package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guillenLawn/bodega-backend/models"
)

var (
	ErrTokenFaltante = errors.New("token de acceso requerido")
	ErrTokenInvalido = errors.New("token inválido")
	ErrTokenExpirado = errors.New("token expirado")
)

// Claims are the identity claims embedded in a bearer token. They are
// trusted as of issuance; verification never touches the database.
type Claims struct {
	ID    uint       `json:"id"`
	Email string     `json:"email"`
	Rol   models.Rol `json:"rol"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 tokens with a shared secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: 24 * time.Hour}
}

// Issue signs a token carrying the user's id, email and role, valid for 24h.
func (s *Service) Issue(u *models.Usuario) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    u.ID,
		Email: u.Email,
		Rol:   u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a bearer token string, returning the embedded
// claims. Missing, malformed/forged and expired tokens each map to a
// distinct error.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenFaltante
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}
	if !token.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
