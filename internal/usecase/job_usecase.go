package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	// 1. Resolve the recruiter's company; a job is always posted under one
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Company profile not found. Create a company profile first.")
	}
	job.CompanyID = company.ID
	job.PostedBy = userID

	// 2. Business validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	if !domain.ValidJobStatus(job.Status) {
		return apperror.BadRequest("Status must be draft, open or closed")
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListOpenJobs(ctx context.Context, page, pageSize int) (*domain.PaginatedResult[domain.JobWithCompany], error) {
	page, pageSize = normalizePage(page, pageSize)

	jobs, total, err := u.jobRepo.FetchOpen(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, userID string, page, pageSize int) (*domain.PaginatedResult[domain.Job], error) {
	page, pageSize = normalizePage(page, pageSize)

	jobs, total, err := u.jobRepo.FetchByRecruiter(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	if _, err := u.ownedJob(ctx, userID, job.ID); err != nil {
		return err
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// UpdateJobStatus moves a job between draft/open/closed. Transitions are
// unordered: reopening a closed job is allowed.
func (u *jobUsecase) UpdateJobStatus(ctx context.Context, userID string, jobID int64, status string) error {
	if !domain.ValidJobStatus(status) {
		return apperror.BadRequest("Status must be draft, open or closed")
	}

	if _, err := u.ownedJob(ctx, userID, jobID); err != nil {
		return err
	}

	if err := u.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, jobID int64) error {
	if _, err := u.ownedJob(ctx, userID, jobID); err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) AddQuestion(ctx context.Context, userID string, q *domain.ScreeningQuestion) error {
	if _, err := u.ownedJob(ctx, userID, q.JobID); err != nil {
		return err
	}
	if q.Question == "" {
		return apperror.BadRequest("Question is required")
	}

	if err := u.jobRepo.AddQuestion(ctx, q); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) ListQuestions(ctx context.Context, jobID int64) ([]domain.ScreeningQuestion, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	questions, err := u.jobRepo.ListQuestions(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return questions, nil
}

func (u *jobUsecase) DeleteQuestion(ctx context.Context, userID string, jobID, questionID int64) error {
	if _, err := u.ownedJob(ctx, userID, jobID); err != nil {
		return err
	}

	if err := u.jobRepo.DeleteQuestion(ctx, jobID, questionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Question not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ownedJob loads the job and verifies the caller posted it. Every write path
// goes through here.
func (u *jobUsecase) ownedJob(ctx context.Context, userID string, jobID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != userID {
		return nil, apperror.Forbidden("You do not own this job")
	}
	return job, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
