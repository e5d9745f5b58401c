package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/api/middleware"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func studentIDFromContext(ctx *gin.Context) string {
	return ctx.GetString(middleware.CtxKeyStudentID)
}

func isAdminFromContext(ctx *gin.Context) bool {
	return ctx.GetBool(middleware.CtxKeyIsAdmin)
}
