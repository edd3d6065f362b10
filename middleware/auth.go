package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/auth"
)

// CustomerKey holds the authenticated customer's id on the gin context.
const CustomerKey = "customer_id"

type Verifier interface {
	Verify(token string) (*auth.Claims, error)
}

func bearer(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}

// customerClaims verifies token and refuses admin tokens, whose ids are not
// customer ids.
func customerClaims(tokens Verifier, token string) (*auth.Claims, error) {
	claims, err := tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.IsAdmin() {
		return nil, apperror.Unauthorized("Customer token required")
	}
	return claims, nil
}

// ValidateToken rejects requests without a valid customer token.
func ValidateToken(tokens Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := customerClaims(tokens, bearer(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperror.Message(err)})
			return
		}
		c.Set(CustomerKey, claims.UserID)
		c.Next()
	}
}

// OptionalToken identifies the customer when a token is sent. A missing
// header passes through; a bad token is still rejected.
func OptionalToken(tokens Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := customerClaims(tokens, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperror.Message(err)})
			return
		}
		c.Set(CustomerKey, claims.UserID)
		c.Next()
	}
}

// CustomerID returns the id set by ValidateToken or OptionalToken.
func CustomerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CustomerKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
