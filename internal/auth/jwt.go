package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/potluck/internal/models"
)

// TokenIssuer is the iss claim of every session token.
const TokenIssuer = "potluck"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// JWTManager issues and checks member session tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// Claims identify a member and the one group their session is valid for.
type Claims struct {
	MemberID string `json:"member_id"`
	GroupID  string `json:"group_id"`
	jwt.RegisteredClaims
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Generate signs an HS256 session token for member.
func (m *JWTManager) Generate(member *models.Member) (string, error) {
	issuedAt := time.Now()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		MemberID: member.ID,
		GroupID:  member.GroupID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   member.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
	}).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature, expiry and issuer of a token and returns its claims.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.MemberID == "" || claims.GroupID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
