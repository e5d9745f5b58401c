package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/campuselect/election-api/internal/api/handler/v1"
	"github.com/campuselect/election-api/internal/api/middleware"
	"github.com/campuselect/election-api/internal/service"
)

type stubVoteService struct {
	castErr error
	voted   []string
}

func (s *stubVoteService) CastVote(_ context.Context, _, _, _ string) error {
	return s.castErr
}

func (s *stubVoteService) VotedPositions(_ context.Context, _ string) ([]string, error) {
	return s.voted, nil
}

type stubVerifier struct {
	verified bool
}

func (s *stubVerifier) Verify(_, _ string) bool {
	return s.verified
}

func (s *stubVerifier) IsVerified(_ string) bool {
	return s.verified
}

type spyNotifier struct {
	pushed int
}

func (s *spyNotifier) PushUpdate(_ context.Context) {
	s.pushed++
}

func newVoteTestRouter(svc *stubVoteService, verifier *stubVerifier, notifier *spyNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := v1.NewVoteHandler(svc, verifier, notifier)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.CtxKeyStudentID, "2019331502")
	})
	router.POST("/vote", handler.HandleCastVote)
	router.POST("/vote/verify", handler.HandleVerifyScan)
	router.GET("/vote/status", handler.HandleVoteStatus)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

func TestHandleCastVote(t *testing.T) {
	const body = `{"candidate_id":"c1","position":"VP"}`

	tests := []struct {
		name       string
		castErr    error
		body       string
		wantCode   int
		wantPushed int
	}{
		{
			name:       "accepted",
			body:       body,
			wantCode:   http.StatusOK,
			wantPushed: 1,
		},
		{
			name:     "election closed",
			castErr:  service.ErrElectionInactive,
			body:     body,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "not verified",
			castErr:  service.ErrNotVerified,
			body:     body,
			wantCode: http.StatusForbidden,
		},
		{
			name:     "already voted",
			castErr:  service.ErrAlreadyVoted,
			body:     body,
			wantCode: http.StatusConflict,
		},
		{
			name:     "unknown candidate",
			castErr:  service.ErrCandidateNotFound,
			body:     body,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing fields",
			body:     `{"candidate_id":"c1"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &spyNotifier{}
			router := newVoteTestRouter(&stubVoteService{castErr: tt.castErr}, &stubVerifier{verified: true}, notifier)

			resp := postJSON(t, router, "/vote", tt.body)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantPushed, notifier.pushed)
		})
	}
}

func TestHandleVerifyScan(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		router := newVoteTestRouter(&stubVoteService{}, &stubVerifier{verified: true}, &spyNotifier{})

		resp := postJSON(t, router, "/vote/verify", `{"scanned_data":"ID: 2019331502"}`)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"verified":true,"extracted_id":"2019331502"}`, resp.Body.String())
	})

	t.Run("empty scan is rejected", func(t *testing.T) {
		router := newVoteTestRouter(&stubVoteService{}, &stubVerifier{verified: true}, &spyNotifier{})

		resp := postJSON(t, router, "/vote/verify", `{"scanned_data":""}`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleVoteStatus(t *testing.T) {
	router := newVoteTestRouter(&stubVoteService{voted: []string{"VP", "GS"}}, &stubVerifier{verified: true}, &spyNotifier{})

	req, err := http.NewRequest(http.MethodGet, "/vote/status", nil)
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"verified":true,"voted_positions":["VP","GS"],"total_positions":5}`, resp.Body.String())
}
