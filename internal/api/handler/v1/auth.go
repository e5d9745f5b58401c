package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/api/handler/v1/request"
	"github.com/campuselect/election-api/internal/api/handler/v1/response"
	"github.com/campuselect/election-api/internal/config"
	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/pkg/jwthelper"
	"github.com/campuselect/election-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, studentID, password string) (domain.User, error)
	UpdateProfile(ctx context.Context, studentID, name, currentPassword, newPassword string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login with student id and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.StudentID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.StudentID, user.IsAdmin, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleUpdateProfile godoc
// @Summary      Update the logged-in student's name and optionally password
// @Description  Requires a successful credential scan earlier in the session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.UpdateProfileRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /profile [put]
// @Security BearerAuth
func (h *AuthHandler) HandleUpdateProfile(ctx *gin.Context) {
	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studentID := studentIDFromContext(ctx)
	user, err := h.svc.UpdateProfile(ctx.Request.Context(), studentID, req.Name, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotVerified):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "studentID", studentID))
		default:
			err = fmt.Errorf("v1.HandleUpdateProfile -> h.svc.UpdateProfile -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}
