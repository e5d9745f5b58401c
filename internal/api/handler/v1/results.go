package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/api/handler/v1/response"
	"github.com/campuselect/election-api/internal/domain"
)

type ResultsService interface {
	AllResults(ctx context.Context) ([]domain.PositionResult, error)
	Turnout(ctx context.Context) (domain.ElectionState, error)
}

type ResultsHandler struct {
	svc ResultsService
}

func NewResultsHandler(svc ResultsService) *ResultsHandler {
	return &ResultsHandler{
		svc: svc,
	}
}

// HandleGetResults godoc
// @Summary      Get rankings for every position
// @Description  Voters get ranks and the leader flag only. Admins additionally get vote counts and percentages.
// @Tags         results
// @Produce      json
// @Success      200  {object}  response.ResultsResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /results [get]
// @Security BearerAuth
func (h *ResultsHandler) HandleGetResults(ctx *gin.Context) {
	resp, err := buildResultsResponse(ctx.Request.Context(), h.svc, isAdminFromContext(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func buildResultsResponse(ctx context.Context, svc ResultsService, includeCounts bool) (response.ResultsResponse, error) {
	results, err := svc.AllResults(ctx)
	if err != nil {
		return response.ResultsResponse{}, fmt.Errorf("svc.AllResults -> %w", err)
	}

	state, err := svc.Turnout(ctx)
	if err != nil {
		return response.ResultsResponse{}, fmt.Errorf("svc.Turnout -> %w", err)
	}

	positions := make([]response.PositionResultView, 0, len(results))
	for _, r := range results {
		positions = append(positions, response.NewPositionResultView(r, includeCounts))
	}

	return response.ResultsResponse{
		VotedCount:  state.VotedCount,
		TotalVoters: state.TotalVoters,
		Positions:   positions,
	}, nil
}
