package middleware

import (
	"net/http"
	"strings"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Authenticate requires a valid "Bearer <token>" header and stores the caller
// identity on the context.
func Authenticate(verifier TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, domain.ErrUnauthenticated)
			return
		}

		identity, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			abort(c, http.StatusUnauthorized, domain.ErrUnauthenticated)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireCapability must run after Authenticate.
func RequireCapability(capability domain.Capability) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, domain.ErrUnauthenticated)
			return
		}
		if !identity.Role.Allows(capability) {
			abort(c, http.StatusForbidden, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}

// SetIdentity is used by tests that bypass token verification.
func SetIdentity(c *ginext.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

func abort(c *ginext.Context, status int, err error) {
	if c.GetString("error") == "" {
		c.Set("error", err.Error())
	}
	c.AbortWithStatusJSON(status, ginext.H{"error": err.Error()})
}
