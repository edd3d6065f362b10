package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/upparakash/AspireBrandApi/apperror"
)

// Roles a token can carry. Tokens without a role belong to customers.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Claims identify a logged-in customer or admin.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token was issued to an admin account.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Tokens issues and verifies HS256 tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a customer token.
func (t *Tokens) Issue(customerID uint, email string) (string, error) {
	return t.issue(customerID, email, RoleCustomer)
}

// IssueAdmin signs an admin token.
func (t *Tokens) IssueAdmin(adminID uint, email string) (string, error) {
	return t.issue(adminID, email, RoleAdmin)
}

func (t *Tokens) issue(id uint, email, role string) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: id,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses token and returns its claims. Any failure is Unauthorized.
func (t *Tokens) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, apperror.Unauthorized("Authorization header is missing")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Unauthorized("Token expired")
		}
		return nil, apperror.Unauthorized("Invalid or expired token")
	}
	if claims.UserID == 0 {
		return nil, apperror.Unauthorized("Invalid token claims")
	}
	return claims, nil
}
