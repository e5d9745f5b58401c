package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/api/handler/v1/request"
	"github.com/campuselect/election-api/internal/api/handler/v1/response"
	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/service"
)

type RegistryService interface {
	Positions() []domain.Position
	Candidates(ctx context.Context) ([]domain.Candidate, error)
	AddCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	UpdateCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
	ToggleElection(ctx context.Context, active bool) (domain.ElectionState, error)
	ResetAllVotes(ctx context.Context) error
	ClearAllData(ctx context.Context) error
}

type CandidateHandler struct {
	svc RegistryService
}

func NewCandidateHandler(svc RegistryService) *CandidateHandler {
	return &CandidateHandler{
		svc: svc,
	}
}

// HandleGetPositions godoc
// @Summary      List the position catalog
// @Tags         candidates
// @Produce      json
// @Success      200  {array}   domain.Position
// @Failure      401  {object}  response.Err
// @Router       /positions [get]
// @Security BearerAuth
func (h *CandidateHandler) HandleGetPositions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.Positions())
}

// HandleGetCandidates godoc
// @Summary      List all candidates grouped by insertion order
// @Tags         candidates
// @Produce      json
// @Success      200  {array}   domain.Candidate
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /candidates [get]
// @Security BearerAuth
func (h *CandidateHandler) HandleGetCandidates(ctx *gin.Context) {
	candidates, err := h.svc.Candidates(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCandidates -> h.svc.Candidates -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleCreateCandidate godoc
// @Summary      Add a candidate
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.SaveCandidateRequest true "request body"
// @Success      201      {object}   domain.Candidate
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/candidates [post]
// @Security BearerAuth
func (h *CandidateHandler) HandleCreateCandidate(ctx *gin.Context) {
	req, ok := bindCandidate(ctx)
	if !ok {
		return
	}

	created, err := h.svc.AddCandidate(ctx.Request.Context(), req)
	if err != nil {
		renderRegistryErr(ctx, err, req.ID)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCandidate godoc
// @Summary      Update a candidate
// @Description  All fields except the vote counter are replaced; the tally survives edits.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        candidateID  path      string                        true  "candidate id"
// @Param        request      body      request.SaveCandidateRequest  true  "request body"
// @Success      200          {object}  domain.Candidate
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/candidates/{candidateID} [put]
// @Security BearerAuth
func (h *CandidateHandler) HandleUpdateCandidate(ctx *gin.Context) {
	req, ok := bindCandidate(ctx)
	if !ok {
		return
	}
	req.ID = ctx.Param("candidateID")

	updated, err := h.svc.UpdateCandidate(ctx.Request.Context(), req)
	if err != nil {
		renderRegistryErr(ctx, err, req.ID)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCandidate godoc
// @Summary      Delete a candidate
// @Tags         admin
// @Produce      json
// @Param        candidateID  path      string true "candidate id"
// @Success      204
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/candidates/{candidateID} [delete]
// @Security BearerAuth
func (h *CandidateHandler) HandleDeleteCandidate(ctx *gin.Context) {
	id := ctx.Param("candidateID")

	if err := h.svc.DeleteCandidate(ctx.Request.Context(), id); err != nil {
		renderRegistryErr(ctx, err, id)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindCandidate(ctx *gin.Context) (domain.Candidate, bool) {
	var req request.SaveCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return domain.Candidate{}, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return domain.Candidate{}, false
	}

	return domain.Candidate{
		Name:       req.Name,
		StudentID:  req.StudentID,
		Position:   req.Position,
		Department: req.Department,
		Session:    req.Session,
		Manifesto:  req.Manifesto,
		Symbol:     req.Symbol,
	}, true
}

func renderRegistryErr(ctx *gin.Context, err error, candidateID string) {
	switch {
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrPositionNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrCandidateNotFound):
		response.RenderErr(ctx, response.ErrNotFound("candidate", "id", candidateID))
	default:
		err = fmt.Errorf("v1.renderRegistryErr -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
