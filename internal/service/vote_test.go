package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/service"
	"github.com/campuselect/election-api/internal/store"
)

func newTestKV(t *testing.T) *store.Store {
	t.Helper()

	kv, err := store.Open(filepath.Join(t.TempDir(), "election.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		kv.Close()
	})

	return kv
}

type voteFixture struct {
	kv            *store.Store
	electionRepo  *repository.ElectionRepository
	candidateRepo *repository.CandidateRepository
	ballotRepo    *repository.BallotRepository
	verifier      *service.VerifyService
	svc           *service.VoteService
}

func newVoteFixture(t *testing.T, active bool) *voteFixture {
	t.Helper()

	kv := newTestKV(t)
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(kv), kv)
	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(kv))
	ballotRepo := repository.NewBallotRepository(dao.NewBallotDAO(kv))
	verifier := service.NewVerifyService()

	err := electionRepo.Save(context.Background(), domain.ElectionState{IsActive: active, TotalVoters: 5})
	require.NoError(t, err)

	return &voteFixture{
		kv:            kv,
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		ballotRepo:    ballotRepo,
		verifier:      verifier,
		svc:           service.NewVoteService(electionRepo, candidateRepo, ballotRepo, verifier),
	}
}

func (f *voteFixture) addCandidate(t *testing.T, name, position string) domain.Candidate {
	t.Helper()

	created, err := f.candidateRepo.Create(context.Background(), domain.Candidate{
		Name:       name,
		StudentID:  "2019331599",
		Position:   position,
		Department: "Computer Science & Engineering",
		Symbol:     "Chair",
	})
	require.NoError(t, err)

	return created
}

func (f *voteFixture) verifyStudent(t *testing.T, studentID string) {
	t.Helper()
	require.True(t, f.verifier.Verify("ID: "+studentID, studentID))
}

func TestVoteService_CastVote(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a first vote and counts the voter", func(t *testing.T) {
		f := newVoteFixture(t, true)
		candidate := f.addCandidate(t, "Rahim Uddin", "VP")
		f.verifyStudent(t, "2019331502")

		err := f.svc.CastVote(ctx, candidate.ID, "VP", "2019331502")
		require.NoError(t, err)

		got, err := f.candidateRepo.FindByID(ctx, candidate.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Votes)

		voted, err := f.svc.VotedPositions(ctx, "2019331502")
		require.NoError(t, err)
		assert.Equal(t, []string{"VP"}, voted)

		state, err := f.electionRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, state.VotedCount)
	})

	t.Run("rejects votes while the election is closed", func(t *testing.T) {
		f := newVoteFixture(t, false)
		candidate := f.addCandidate(t, "Rahim Uddin", "VP")
		f.verifyStudent(t, "2019331502")

		err := f.svc.CastVote(ctx, candidate.ID, "VP", "2019331502")
		require.ErrorIs(t, err, service.ErrElectionInactive)

		got, err := f.candidateRepo.FindByID(ctx, candidate.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Votes)
	})

	t.Run("rejects unverified voters", func(t *testing.T) {
		f := newVoteFixture(t, true)
		candidate := f.addCandidate(t, "Rahim Uddin", "VP")

		err := f.svc.CastVote(ctx, candidate.ID, "VP", "2019331502")
		require.ErrorIs(t, err, service.ErrNotVerified)
	})

	t.Run("rejects a second vote for the same position", func(t *testing.T) {
		f := newVoteFixture(t, true)
		first := f.addCandidate(t, "Rahim Uddin", "VP")
		second := f.addCandidate(t, "Karima Akter", "VP")
		f.verifyStudent(t, "2019331502")

		require.NoError(t, f.svc.CastVote(ctx, first.ID, "VP", "2019331502"))
		err := f.svc.CastVote(ctx, second.ID, "VP", "2019331502")
		require.ErrorIs(t, err, service.ErrAlreadyVoted)

		got, err := f.candidateRepo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Votes)
	})

	t.Run("counts a voter once across positions", func(t *testing.T) {
		f := newVoteFixture(t, true)
		vp := f.addCandidate(t, "Rahim Uddin", "VP")
		gs := f.addCandidate(t, "Karima Akter", "GS")
		f.verifyStudent(t, "2019331502")

		require.NoError(t, f.svc.CastVote(ctx, vp.ID, "VP", "2019331502"))
		require.NoError(t, f.svc.CastVote(ctx, gs.ID, "GS", "2019331502"))

		state, err := f.electionRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, state.VotedCount)

		voted, err := f.svc.VotedPositions(ctx, "2019331502")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"VP", "GS"}, voted)
	})

	t.Run("rejects a candidate submitted under the wrong position", func(t *testing.T) {
		f := newVoteFixture(t, true)
		candidate := f.addCandidate(t, "Rahim Uddin", "VP")
		f.verifyStudent(t, "2019331502")

		err := f.svc.CastVote(ctx, candidate.ID, "GS", "2019331502")
		require.ErrorIs(t, err, service.ErrCandidateNotFound)
	})

	t.Run("rejects an unknown candidate", func(t *testing.T) {
		f := newVoteFixture(t, true)
		f.verifyStudent(t, "2019331502")

		err := f.svc.CastVote(ctx, "no-such-id", "VP", "2019331502")
		require.ErrorIs(t, err, service.ErrCandidateNotFound)
	})

	t.Run("accepts exactly one of two simultaneous casts", func(t *testing.T) {
		f := newVoteFixture(t, true)
		candidate := f.addCandidate(t, "Rahim Uddin", "VP")
		f.verifyStudent(t, "2019331502")

		start := make(chan struct{})
		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				errs[i] = f.svc.CastVote(ctx, candidate.ID, "VP", "2019331502")
			}(i)
		}
		close(start)
		wg.Wait()

		accepted, rejected := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, service.ErrAlreadyVoted):
				rejected++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, accepted)
		assert.Equal(t, 1, rejected)

		got, err := f.candidateRepo.FindByID(ctx, candidate.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Votes)

		voted, err := f.svc.VotedPositions(ctx, "2019331502")
		require.NoError(t, err)
		assert.Equal(t, []string{"VP"}, voted)

		state, err := f.electionRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, state.VotedCount)
	})
}
