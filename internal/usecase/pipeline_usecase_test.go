package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func ownedJobFixture(recruiterID string) *domain.Job {
	return &domain.Job{
		ID:       10,
		PostedBy: recruiterID,
		Title:    "Backend Engineer",
		Status:   domain.JobStatusOpen,
	}
}

func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T", err)
	assert.Equal(t, kind, appErr.Kind)
}

func TestAddToPipelineStageValidation(t *testing.T) {
	pipelineRepo := new(MockPipelineRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)
	ctx := context.Background()

	t.Run("Should reject unknown stage before touching storage", func(t *testing.T) {
		_, err := uc.AddToPipeline(ctx, "rec1", "cand1", 10, "phone_screen", "")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
		jobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		pipelineRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should accept every defined stage", func(t *testing.T) {
		for _, s := range domain.Stages() {
			jobRepo := new(MockJobRepo)
			userRepo := new(MockUserRepo)
			pipelineRepo := new(MockPipelineRepo)
			uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)

			jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
			userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
			pipelineRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.PipelineEntry")).Return(nil)

			entry, err := uc.AddToPipeline(ctx, "rec1", "cand1", 10, string(s), "")
			assert.NoError(t, err)
			assert.Equal(t, s, entry.Stage)
		}
	})
}

func TestAddToPipelineOwnership(t *testing.T) {
	pipelineRepo := new(MockPipelineRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)
	ctx := context.Background()

	t.Run("Should be forbidden for a job posted by someone else", func(t *testing.T) {
		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("other_recruiter"), nil)

		_, err := uc.AddToPipeline(ctx, "rec1", "cand1", 10, "shortlisted", "")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindForbidden)
		pipelineRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should be not found for a missing job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.AddToPipeline(ctx, "rec1", "cand1", 99, "shortlisted", "")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindNotFound)
	})
}

func TestAddToPipelineUpsert(t *testing.T) {
	pipelineRepo := new(MockPipelineRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)
	ctx := context.Background()

	jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
	userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
	pipelineRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.PipelineEntry")).Return(nil).Run(func(args mock.Arguments) {
		e := args.Get(1).(*domain.PipelineEntry)
		assert.Equal(t, "rec1", e.RecruiterUserID)
		assert.Equal(t, "cand1", e.CandidateUserID)
		assert.Equal(t, int64(10), e.JobID)
		assert.Equal(t, domain.StageShortlisted, e.Stage)
		if assert.NotNil(t, e.Notes) {
			assert.Equal(t, "strong portfolio", *e.Notes)
		}
	})

	entry, err := uc.AddToPipeline(ctx, "rec1", "cand1", 10, "shortlisted", "strong portfolio")
	assert.NoError(t, err)
	assert.Equal(t, domain.StageShortlisted, entry.Stage)
	pipelineRepo.AssertExpectations(t)
}

func TestAddToPipelineEmptyNotesStaysNil(t *testing.T) {
	pipelineRepo := new(MockPipelineRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, userRepo)
	ctx := context.Background()

	jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
	userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
	pipelineRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.PipelineEntry")).Return(nil)

	entry, err := uc.AddToPipeline(ctx, "rec1", "cand1", 10, "applied", "")
	assert.NoError(t, err)
	assert.Nil(t, entry.Notes)
}

func TestMoveCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown stage", func(t *testing.T) {
		pipelineRepo := new(MockPipelineRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))

		_, err := uc.MoveCandidate(ctx, "rec1", "cand1", 10, "ghosted", nil)
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
		jobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should be not found when candidate is not in the pipeline", func(t *testing.T) {
		pipelineRepo := new(MockPipelineRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		pipelineRepo.On("GetByCandidateAndJob", ctx, "rec1", "cand1", int64(10)).Return(nil, domain.ErrNotFound)

		_, err := uc.MoveCandidate(ctx, "rec1", "cand1", 10, "interviewing", nil)
		assert.Error(t, err)
		assertKind(t, err, apperror.KindNotFound)
		pipelineRepo.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should allow moving backward", func(t *testing.T) {
		pipelineRepo := new(MockPipelineRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))

		existing := &domain.PipelineEntry{
			ID:              7,
			RecruiterUserID: "rec1",
			CandidateUserID: "cand1",
			JobID:           10,
			Stage:           domain.StageJobOffer,
		}
		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		pipelineRepo.On("GetByCandidateAndJob", ctx, "rec1", "cand1", int64(10)).Return(existing, nil)
		pipelineRepo.On("UpdateStage", ctx, int64(7), domain.StageInterviewing, (*string)(nil)).Return(nil)

		entry, err := uc.MoveCandidate(ctx, "rec1", "cand1", 10, "interviewing", nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.StageInterviewing, entry.Stage)
		pipelineRepo.AssertExpectations(t)
	})

	t.Run("Should pass through replacement notes", func(t *testing.T) {
		pipelineRepo := new(MockPipelineRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))

		existing := &domain.PipelineEntry{ID: 7, RecruiterUserID: "rec1", CandidateUserID: "cand1", JobID: 10, Stage: domain.StageApplied}
		notes := "asked for async interview"
		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		pipelineRepo.On("GetByCandidateAndJob", ctx, "rec1", "cand1", int64(10)).Return(existing, nil)
		pipelineRepo.On("UpdateStage", ctx, int64(7), domain.StageOnHold, &notes).Return(nil)

		entry, err := uc.MoveCandidate(ctx, "rec1", "cand1", 10, "on_hold", &notes)
		assert.NoError(t, err)
		if assert.NotNil(t, entry.Notes) {
			assert.Equal(t, notes, *entry.Notes)
		}
	})
}

func TestGetPipelineForJob(t *testing.T) {
	pipelineRepo := new(MockPipelineRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))
	ctx := context.Background()

	jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
	pipelineRepo.On("ListByJob", ctx, int64(10)).Return([]domain.PipelineCandidate{
		{CandidateUserID: "c1", Stage: domain.StageShortlisted},
		{CandidateUserID: "c2", Stage: domain.StageShortlisted},
		{CandidateUserID: "c3", Stage: domain.StageHired},
	}, nil)

	board, err := uc.GetPipelineForJob(ctx, "rec1", 10)
	assert.NoError(t, err)

	// Every stage has a key even when empty
	assert.Len(t, board, len(domain.Stages()))
	for _, s := range domain.Stages() {
		_, ok := board[s]
		assert.True(t, ok, "missing stage %s", s)
	}

	assert.Len(t, board[domain.StageShortlisted], 2)
	assert.Equal(t, "c1", board[domain.StageShortlisted][0].CandidateUserID)
	assert.Len(t, board[domain.StageHired], 1)
	assert.Empty(t, board[domain.StageRejected])
}

func TestRemoveFromPipeline(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be not found when entry does not exist", func(t *testing.T) {
		pipelineRepo := new(MockPipelineRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		pipelineRepo.On("Delete", ctx, "rec1", "cand1", int64(10)).Return(domain.ErrNotFound)

		err := uc.RemoveFromPipeline(ctx, "rec1", "cand1", 10)
		assert.Error(t, err)
		assertKind(t, err, apperror.KindNotFound)
	})

	t.Run("Should delete an existing entry", func(t *testing.T) {
		pipelineRepo := new(MockPipelineRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewPipelineUsecase(pipelineRepo, jobRepo, new(MockUserRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		pipelineRepo.On("Delete", ctx, "rec1", "cand1", int64(10)).Return(nil)

		err := uc.RemoveFromPipeline(ctx, "rec1", "cand1", 10)
		assert.NoError(t, err)
		pipelineRepo.AssertExpectations(t)
	})
}
