package domain

import (
	"context"
	"time"
)

// Application status. Only "applied" is ever written by this backend; the
// column exists so the hiring pipeline can evolve without a schema change.
const ApplicationStatusApplied = "applied"

// Application is a candidate-initiated record of interest in a job.
// (candidate_user_id, job_id) is unique at the storage layer so concurrent
// double-submits cannot create two rows.
type Application struct {
	ID              int64     `json:"id"`
	CandidateUserID string    `json:"candidate_user_id"`
	JobID           int64     `json:"job_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined display fields for list responses
	JobTitle       *string `json:"job_title,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	CandidateName  *string `json:"candidate_name,omitempty"`
	CandidateTitle *string `json:"candidate_title,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the row; a unique-constraint violation surfaces as
	// ErrDuplicate.
	Create(ctx context.Context, app *Application) error
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
}

type ApplicationUsecase interface {
	// Candidate operations
	SubmitApplication(ctx context.Context, candidateID string, jobID int64) (*Application, error)
	ListMyApplications(ctx context.Context, candidateID string) ([]Application, error)

	// Recruiter operations
	ListByJobID(ctx context.Context, recruiterID string, jobID int64) ([]Application, error)
}
