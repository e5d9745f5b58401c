package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuselect/election-api/internal/api/handler/v1/request"
	"github.com/campuselect/election-api/internal/api/handler/v1/response"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/service"
)

type VoteService interface {
	CastVote(ctx context.Context, candidateID, positionID, studentID string) error
	VotedPositions(ctx context.Context, studentID string) ([]string, error)
}

type ScanVerifier interface {
	Verify(scannedRaw, studentID string) bool
	IsVerified(studentID string) bool
}

// ResultsNotifier pushes refreshed tallies to live subscribers after a vote
// is accepted.
type ResultsNotifier interface {
	PushUpdate(ctx context.Context)
}

type VoteHandler struct {
	svc      VoteService
	verifier ScanVerifier
	notifier ResultsNotifier
}

func NewVoteHandler(svc VoteService, verifier ScanVerifier, notifier ResultsNotifier) *VoteHandler {
	return &VoteHandler{
		svc:      svc,
		verifier: verifier,
		notifier: notifier,
	}
}

// HandleVerifyScan godoc
// @Summary      Verify a scanned credential against the logged-in student
// @Description  Extracts a student id from the raw scan text and suffix-matches it against the session's student id. A match marks the student verified for the rest of the session.
// @Tags         vote
// @Accept       json
// @Produce      json
// @Param        request   body      request.VerifyScanRequest true "request body"
// @Success      200      {object}   response.VerifyResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Router       /vote/verify [post]
// @Security BearerAuth
func (h *VoteHandler) HandleVerifyScan(ctx *gin.Context) {
	var req request.VerifyScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studentID := studentIDFromContext(ctx)
	verified := h.verifier.Verify(req.ScannedData, studentID)

	ctx.JSON(http.StatusOK, response.VerifyResponse{
		Verified:    verified,
		ExtractedID: service.ExtractStudentID(req.ScannedData),
	})
}

// HandleVoteStatus godoc
// @Summary      Get the logged-in voter's ballot progress
// @Tags         vote
// @Produce      json
// @Success      200      {object}   response.VoteStatusResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vote/status [get]
// @Security BearerAuth
func (h *VoteHandler) HandleVoteStatus(ctx *gin.Context) {
	studentID := studentIDFromContext(ctx)

	voted, err := h.svc.VotedPositions(ctx.Request.Context(), studentID)
	if err != nil {
		err = fmt.Errorf("v1.HandleVoteStatus -> h.svc.VotedPositions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.VoteStatusResponse{
		Verified:       h.verifier.IsVerified(studentID),
		VotedPositions: voted,
		TotalPositions: len(dao.Positions),
	})
}

// HandleCastVote godoc
// @Summary      Cast a vote for a candidate
// @Description  Accepts at most one vote per position per voter. The election must be active and the voter verified by a credential scan this session.
// @Tags         vote
// @Accept       json
// @Produce      json
// @Param        request   body      request.CastVoteRequest true "request body"
// @Success      200      {object}   response.CastVoteResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /vote [post]
// @Security BearerAuth
func (h *VoteHandler) HandleCastVote(ctx *gin.Context) {
	var req request.CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	studentID := studentIDFromContext(ctx)
	err := h.svc.CastVote(ctx.Request.Context(), req.CandidateID, req.Position, studentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrElectionInactive):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrNotVerified):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrAlreadyVoted):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrCandidateNotFound):
			response.RenderErr(ctx, response.ErrNotFound("candidate", "id", req.CandidateID))
		default:
			err = fmt.Errorf("v1.HandleCastVote -> h.svc.CastVote -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	h.notifier.PushUpdate(ctx.Request.Context())

	ctx.JSON(http.StatusOK, response.CastVoteResponse{
		Message: "vote accepted",
	})
}
