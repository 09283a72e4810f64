package utils

import (
	"crypto/subtle"

	"github.com/kataras/iris/v12"
)

// Authorizer decides whether a presented admin credential is acceptable.
// The static token check lives behind this so a real credential system
// can replace it without touching route handlers.
type Authorizer interface {
	Authorize(presented string) bool
}

// StaticTokenAuthorizer accepts exactly one shared-secret token.
type StaticTokenAuthorizer struct {
	token string
}

func NewStaticTokenAuthorizer(token string) *StaticTokenAuthorizer {
	return &StaticTokenAuthorizer{token: token}
}

func (a *StaticTokenAuthorizer) Authorize(presented string) bool {
	if presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(a.token)) == 1
}

// AdminAuthMiddleware guards admin routes with the X-Admin-Token header.
// Fails closed: missing or mismatched tokens get a 401 and the request
// never reaches the handler.
func AdminAuthMiddleware(auth Authorizer) iris.Handler {
	return func(ctx iris.Context) {
		if !auth.Authorize(ctx.GetHeader("X-Admin-Token")) {
			JSONMessage(ctx, iris.StatusUnauthorized, "Unauthorized access to admin resource")
			return
		}
		ctx.Next()
	}
}
