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

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a company profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("GetByOwnerUserID", ctx, "rec1").Return(nil, domain.ErrNotFound)

		err := uc.CreateJob(ctx, "rec1", &domain.Job{Title: "Backend Engineer", Description: "Go services"})
		assert.Error(t, err)
		assertKind(t, err, apperror.KindNotFound)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should stamp company and recruiter, defaulting to draft", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("GetByOwnerUserID", ctx, "rec1").Return(&domain.Company{ID: 5, OwnerUserID: "rec1", Name: "Acme"}, nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job := &domain.Job{Title: "Backend Engineer", Description: "Go services"}
		err := uc.CreateJob(ctx, "rec1", job)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), job.CompanyID)
		assert.Equal(t, "rec1", job.PostedBy)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewJobUsecase(jobRepo, companyRepo)

		companyRepo.On("GetByOwnerUserID", ctx, "rec1").Return(&domain.Company{ID: 5, Name: "Acme"}, nil)

		err := uc.CreateJob(ctx, "rec1", &domain.Job{Title: "X", Description: "Y", Status: "archived"})
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
	})
}

func TestUpdateJobStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should allow reopening a closed job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

		closed := ownedJobFixture("rec1")
		closed.Status = domain.JobStatusClosed
		jobRepo.On("GetByID", ctx, int64(10)).Return(closed, nil)
		jobRepo.On("UpdateStatus", ctx, int64(10), domain.JobStatusOpen).Return(nil)

		err := uc.UpdateJobStatus(ctx, "rec1", 10, "open")
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown status before loading the job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

		err := uc.UpdateJobStatus(ctx, "rec1", 10, "paused")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
		jobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should be forbidden for a job posted by someone else", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("other_recruiter"), nil)

		err := uc.UpdateJobStatus(ctx, "rec1", 10, "closed")
		assert.Error(t, err)
		assertKind(t, err, apperror.KindForbidden)
		jobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListOpenJobsPagination(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))
	ctx := context.Background()

	// Out-of-range paging collapses to defaults: page 1, size 10
	jobRepo.On("FetchOpen", ctx, 10, 0).Return([]domain.JobWithCompany{}, int64(0), nil)

	result, err := uc.ListOpenJobs(ctx, -3, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.PageSize)
	jobRepo.AssertExpectations(t)
}

func TestScreeningQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("Should add a question to an owned job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)
		jobRepo.On("AddQuestion", ctx, mock.AnythingOfType("*domain.ScreeningQuestion")).Return(nil)

		err := uc.AddQuestion(ctx, "rec1", &domain.ScreeningQuestion{JobID: 10, Question: "Years of Go experience?"})
		assert.NoError(t, err)
	})

	t.Run("Should reject an empty question", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

		jobRepo.On("GetByID", ctx, int64(10)).Return(ownedJobFixture("rec1"), nil)

		err := uc.AddQuestion(ctx, "rec1", &domain.ScreeningQuestion{JobID: 10})
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
		jobRepo.AssertNotCalled(t, "AddQuestion", mock.Anything, mock.Anything)
	})
}
