package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a pending invitation", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewInvitationUsecase(invRepo, jobRepo, userRepo)

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
		invRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Invitation")).Return(true, nil)

		inv, err := uc.SendInvitation(ctx, "rec1", "cand1", 10, "Come work with us")
		assert.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusPending, inv.Status)
		if assert.NotNil(t, inv.Message) {
			assert.Equal(t, "Come work with us", *inv.Message)
		}
	})

	t.Run("Should be idempotent on resend", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewInvitationUsecase(invRepo, jobRepo, userRepo)

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		userRepo.On("GetByID", ctx, "cand1").Return(&domain.User{ID: "cand1", Role: domain.RoleCandidate}, nil)
		// Upsert reports the row already existed and fills in the stored one
		invRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Invitation")).Return(false, nil).Run(func(args mock.Arguments) {
			inv := args.Get(1).(*domain.Invitation)
			inv.ID = 42
			inv.Status = domain.InvitationStatusPending
		})

		inv, err := uc.SendInvitation(ctx, "rec1", "cand1", 10, "Come work with us")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), inv.ID)
	})

	t.Run("Should be forbidden for a job posted by someone else", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewInvitationUsecase(invRepo, jobRepo, new(MockUserRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("other_recruiter"), nil)

		_, err := uc.SendInvitation(ctx, "rec1", "cand1", 10, "")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindForbidden)
		invRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject inviting another recruiter", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewInvitationUsecase(invRepo, jobRepo, userRepo)

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		userRepo.On("GetByID", ctx, "rec2").Return(&domain.User{ID: "rec2", Role: domain.RoleRecruiter}, nil)

		_, err := uc.SendInvitation(ctx, "rec1", "rec2", 10, "")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
	})
}

func TestRespondToInvitation(t *testing.T) {
	ctx := context.Background()

	pending := func() *domain.Invitation {
		return &domain.Invitation{
			ID:              42,
			RecruiterUserID: "rec1",
			CandidateUserID: "cand1",
			JobID:           10,
			Status:          domain.InvitationStatusPending,
		}
	}

	t.Run("Should accept a pending invitation", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		uc := usecase.NewInvitationUsecase(invRepo, new(MockJobRepo), new(MockUserRepo))

		invRepo.On("GetByID", ctx, int64(42)).Return(pending(), nil)
		invRepo.On("UpdateStatus", ctx, int64(42), domain.InvitationStatusAccepted).Return(nil)

		inv, err := uc.RespondToInvitation(ctx, "cand1", 42, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusAccepted, inv.Status)
		invRepo.AssertExpectations(t)
	})

	t.Run("Should decline a pending invitation", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		uc := usecase.NewInvitationUsecase(invRepo, new(MockJobRepo), new(MockUserRepo))

		invRepo.On("GetByID", ctx, int64(42)).Return(pending(), nil)
		invRepo.On("UpdateStatus", ctx, int64(42), domain.InvitationStatusDeclined).Return(nil)

		inv, err := uc.RespondToInvitation(ctx, "cand1", 42, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusDeclined, inv.Status)
	})

	t.Run("Should be forbidden for a different candidate", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		uc := usecase.NewInvitationUsecase(invRepo, new(MockJobRepo), new(MockUserRepo))

		invRepo.On("GetByID", ctx, int64(42)).Return(pending(), nil)

		_, err := uc.RespondToInvitation(ctx, "someone_else", 42, true)
		assert.Error(t, err)
		assertKind(t, err, apperror.KindForbidden)
		invRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should conflict when already responded", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		uc := usecase.NewInvitationUsecase(invRepo, new(MockJobRepo), new(MockUserRepo))

		answered := pending()
		answered.Status = domain.InvitationStatusDeclined
		invRepo.On("GetByID", ctx, int64(42)).Return(answered, nil)

		_, err := uc.RespondToInvitation(ctx, "cand1", 42, true)
		assert.Error(t, err)
		assertKind(t, err, apperror.KindConflict)
		invRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should be not found for a missing invitation", func(t *testing.T) {
		invRepo := new(MockInvitationRepo)
		uc := usecase.NewInvitationUsecase(invRepo, new(MockJobRepo), new(MockUserRepo))

		invRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.RespondToInvitation(ctx, "cand1", 99, true)
		assert.Error(t, err)
		assertKind(t, err, apperror.KindNotFound)
	})
}
