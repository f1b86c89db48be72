package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	FullName        string    `json:"full_name" validate:"required,min=2,max=120,valid_name,no_emoji"`
	Title           string    `json:"title" validate:"required,min=2,max=120,no_emoji"`
	Bio             string    `json:"bio" validate:"max=2000"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	CareerLevel     *string   `json:"career_level,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty" validate:"omitempty,gte=0,lte=60"`
	Skills          []string  `json:"skills"`
	CvURL           *string   `json:"cv_url,omitempty" validate:"omitempty,url"`
	PhotoURL        *string   `json:"photo_url,omitempty" validate:"omitempty,url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CandidateFilter holds recruiter search parameters. Zero values mean "any".
type CandidateFilter struct {
	Keyword            string   `json:"keyword,omitempty"` // matches name or title
	City               string   `json:"city,omitempty"`
	CareerLevel        string   `json:"career_level,omitempty"`
	Skills             []string `json:"skills,omitempty"` // any-of match
	ExperienceYearsMin *int     `json:"experience_years_min,omitempty"`
	ExperienceYearsMax *int     `json:"experience_years_max,omitempty"`

	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Create(ctx context.Context, profile *CandidateProfile) error
	Update(ctx context.Context, profile *CandidateProfile) error
	Search(ctx context.Context, filter CandidateFilter) ([]CandidateProfile, int64, error)
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpsertProfile(ctx context.Context, userID string, profile *CandidateProfile) error
	SearchCandidates(ctx context.Context, filter CandidateFilter) (*PaginatedResult[CandidateProfile], error)
}
