package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the fixed shape of an access token payload. The subject is the
// user's email; expiry and issue time come from RegisteredClaims. Nothing
// else is embedded: role is always re-read from the store on resolution.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService defines access token operations.
type JWTService interface {
	GenerateToken(email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	AccessExpiry() time.Duration
}

type jwtService struct {
	secret       string
	method       jwt.SigningMethod
	accessExpiry time.Duration
}

// NewJWTService creates a JWTService signing with the named symmetric
// algorithm (HS256, HS384 or HS512). Asymmetric or unknown algorithm names
// are a configuration error.
func NewJWTService(secret, algorithm string, accessExpiry time.Duration) (JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", algorithm)
	}

	return &jwtService{
		secret:       secret,
		method:       method,
		accessExpiry: accessExpiry,
	}, nil
}

func (s *jwtService) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpiry)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

func (s *jwtService) AccessExpiry() time.Duration {
	return s.accessExpiry
}
