package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/api/handler/v1/request"
	"github.com/campuselect/election-api/internal/api/handler/v1/response"
	"github.com/campuselect/election-api/internal/domain"
)

type ElectionStateReader interface {
	Turnout(ctx context.Context) (domain.ElectionState, error)
}

type ElectionHandler struct {
	svc      RegistryService
	results  ElectionStateReader
	notifier ResultsNotifier
}

func NewElectionHandler(svc RegistryService, results ElectionStateReader, notifier ResultsNotifier) *ElectionHandler {
	return &ElectionHandler{
		svc:      svc,
		results:  results,
		notifier: notifier,
	}
}

// HandleGetElection godoc
// @Summary      Get the election state and turnout counters
// @Tags         election
// @Produce      json
// @Success      200  {object}  domain.ElectionState
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /election [get]
// @Security BearerAuth
func (h *ElectionHandler) HandleGetElection(ctx *gin.Context) {
	state, err := h.results.Turnout(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetElection -> h.results.Turnout -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// HandleToggleElection godoc
// @Summary      Open or close the election
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.ToggleElectionRequest true "request body"
// @Success      200      {object}   domain.ElectionState
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/election [put]
// @Security BearerAuth
func (h *ElectionHandler) HandleToggleElection(ctx *gin.Context) {
	var req request.ToggleElectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	state, err := h.svc.ToggleElection(ctx.Request.Context(), *req.IsActive)
	if err != nil {
		err = fmt.Errorf("v1.HandleToggleElection -> h.svc.ToggleElection -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// HandleResetVotes godoc
// @Summary      Zero all candidate tallies and the voter counter
// @Description  Ballot records are NOT cleared: voters who already voted for a position remain locked out of it. Use the clear-data operation to fully restart an election.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/reset-votes [post]
// @Security BearerAuth
func (h *ElectionHandler) HandleResetVotes(ctx *gin.Context) {
	if err := h.svc.ResetAllVotes(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleResetVotes -> h.svc.ResetAllVotes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.notifier.PushUpdate(ctx.Request.Context())

	ctx.JSON(http.StatusOK, gin.H{"message": "all vote tallies reset"})
}

// HandleClearData godoc
// @Summary      Wipe the whole store
// @Description  Removes candidates, election state, ballot records and identity overrides. The election state is re-created with defaults on next read.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/data [delete]
// @Security BearerAuth
func (h *ElectionHandler) HandleClearData(ctx *gin.Context) {
	if err := h.svc.ClearAllData(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("v1.HandleClearData -> h.svc.ClearAllData -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.notifier.PushUpdate(ctx.Request.Context())

	ctx.JSON(http.StatusOK, gin.H{"message": "all data cleared"})
}
