package domain

import (
	"context"
	"time"
)

// Job status constants. Transitions are recruiter-driven and unordered:
// draft→open, open→closed and closed→open are all allowed. The only
// status-derived rule is that applications are accepted for open jobs only.
const (
	JobStatusDraft  = "draft"
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// ValidJobStatus reports whether s is a recognized job status.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusClosed:
		return true
	}
	return false
}

type Job struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"company_id"`
	PostedBy        string    `json:"posted_by"` // recruiter user id
	Title           string    `json:"title" validate:"required,min=3,max=200"`
	Description     string    `json:"description" validate:"required"`
	Qualifications  *string   `json:"qualifications,omitempty"`
	Country         string    `json:"country"`
	City            string    `json:"city"`
	Workplace       *string   `json:"workplace,omitempty"` // on_site / remote / hybrid
	CareerLevel     *string   `json:"career_level,omitempty"`
	JobCategory     *string   `json:"job_category,omitempty"`
	JobType         *string   `json:"job_type,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	Status          string    `json:"status"` // draft | open | closed
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobWithCompany extends Job with company display fields for public listings.
type JobWithCompany struct {
	Job
	CompanyName    string  `json:"company_name"`
	CompanyWebsite *string `json:"company_website,omitempty"`
	Industry       *string `json:"industry,omitempty"`
}

// ScreeningQuestion is a per-job question candidates see when applying.
type ScreeningQuestion struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	Question  string    `json:"question" validate:"required,max=500"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	FetchOpen(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByRecruiter(ctx context.Context, userID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error

	// Screening questions
	AddQuestion(ctx context.Context, q *ScreeningQuestion) error
	ListQuestions(ctx context.Context, jobID int64) ([]ScreeningQuestion, error)
	DeleteQuestion(ctx context.Context, jobID, questionID int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithCompany, error)
	ListOpenJobs(ctx context.Context, page, pageSize int) (*PaginatedResult[JobWithCompany], error)
	ListMyJobs(ctx context.Context, userID string, page, pageSize int) (*PaginatedResult[Job], error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	UpdateJobStatus(ctx context.Context, userID string, jobID int64, status string) error
	DeleteJob(ctx context.Context, userID string, jobID int64) error

	AddQuestion(ctx context.Context, userID string, q *ScreeningQuestion) error
	ListQuestions(ctx context.Context, jobID int64) ([]ScreeningQuestion, error)
	DeleteQuestion(ctx context.Context, userID string, jobID, questionID int64) error
}
