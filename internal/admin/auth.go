package admin

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var ErrUnauthorized = errors.New("admin: unauthorized")

// TokenValidator validates an admin token.
type TokenValidator interface {
	Validate(token string) error
}

// StaticToken validates a single shared token. Intended for development and
// single-operator deployments.
type StaticToken struct {
	Token string
}

func (s StaticToken) Validate(token string) error {
	if s.Token == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(s.Token), []byte(token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// requireToken gates a route on the X-Admin-Token header.
func requireToken(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := v.Validate(c.GetHeader("X-Admin-Token")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
