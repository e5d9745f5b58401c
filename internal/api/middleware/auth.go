package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/pkg/jwthelper"
)

// Context keys set by VerifyJWT for downstream handlers.
const (
	CtxKeyStudentID = "studentID"
	CtxKeyIsAdmin   = "isAdmin"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT validates the bearer token and stores the student id and admin
// flag on the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(CtxKeyStudentID, claims.StudentID)
		ctx.Set(CtxKeyIsAdmin, claims.IsAdmin)
		ctx.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after VerifyJWT.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool(CtxKeyIsAdmin) {
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		ctx.Next()
	}
}
