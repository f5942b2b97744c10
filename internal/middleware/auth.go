package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"poi-be-svc/internal/auth"
	"poi-be-svc/pkg/utils"
)

const callerKey = "caller"

// TokenVerifier turns a bearer token into a caller identity
type TokenVerifier interface {
	Verify(token string) (auth.Caller, error)
}

// SetCaller stores the caller on the request context
func SetCaller(c *gin.Context, caller auth.Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom returns the caller stored by the auth middleware, or anonymous
func CallerFrom(c *gin.Context) auth.Caller {
	if value, ok := c.Get(callerKey); ok {
		if caller, ok := value.(auth.Caller); ok {
			return caller
		}
	}
	return auth.Anonymous()
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// Authenticate requires a valid bearer token
func Authenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "No token, authorization denied")
			return
		}

		caller, err := tokens.Verify(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Token is not valid")
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

// OptionalAuthenticate attaches the caller when a valid token is present and
// otherwise lets the request through as anonymous
func OptionalAuthenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if caller, err := tokens.Verify(token); err == nil {
				SetCaller(c, caller)
			}
		}
		c.Next()
	}
}

// Authorize allows only callers holding one of roles. It must run after Authenticate.
func Authorize(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if !caller.IsAuthenticated() {
			utils.UnauthorizedResponse(c, "Not authenticated")
			return
		}
		if !caller.Role.In(roles...) {
			utils.ForbiddenResponse(c, "Access denied")
			return
		}
		c.Next()
	}
}
