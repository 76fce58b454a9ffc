package auth

//go:generate mockgen -destination=mock_auth.go -package=auth . HashServiceInterface,JWTServiceInterface,TokenVerifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	issuer          = "seva"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	errEmptySecret  = errors.New("jwt secret cannot be empty")
)

type TokenVerifier interface {
	Verify(tokenString string) (int, error)
}

type JWTServiceInterface interface {
	TokenVerifier
	Issue(userID int) (string, error)
}

type Claims struct {
	UserID int `json:"user_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for userID that expires after the configured TTL.
func (s *JWTService) Issue(userID int) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, fmt.Errorf("%w: missing token", ErrInvalidToken)
	}

	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: malformed token", ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return 0, fmt.Errorf("%w: invalid token claims", ErrInvalidToken)
	}
	if !claims.VerifyExpiresAt(s.now().Unix(), true) {
		return 0, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	return claims.UserID, nil
}
