package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// SubmitApplication records a candidate's interest in a job, exactly once per
// (candidate, job) pair. The duplicate guard is the storage-layer unique
// constraint, not a check-then-insert, so concurrent double-submits from a
// flaky client collapse to one row and one Conflict.
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, candidateID string, jobID int64) (*domain.Application, error) {
	// 1. Validate job exists and accepts applications
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.BadRequest("This job is not open for applications")
	}

	// 2. Insert; a unique violation means the candidate already applied
	app := &domain.Application{
		CandidateUserID: candidateID,
		JobID:           jobID,
		Status:          domain.ApplicationStatusApplied,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// ListMyApplications returns all applications for the current candidate,
// used client-side to render "already applied" badges.
func (uc *applicationUsecase) ListMyApplications(ctx context.Context, candidateID string) ([]domain.Application, error) {
	applications, err := uc.applicationRepo.GetByUserID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

// ListByJobID returns the flat pre-pipeline intake view for a job,
// restricted to the recruiter who posted it.
func (uc *applicationUsecase) ListByJobID(ctx context.Context, recruiterID string, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != recruiterID {
		return nil, apperror.Forbidden("You do not own this job")
	}

	applications, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}
