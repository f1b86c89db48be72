package domain

import (
	"context"
	"time"
)

// Company is the recruiter-owned organization jobs are posted under.
// One company per recruiter account.
type Company struct {
	ID          int64     `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name" validate:"required,min=2,max=120,valid_name,no_emoji"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url"`
	Industry    *string   `json:"industry,omitempty"`
	About       *string   `json:"about,omitempty" validate:"omitempty,max=2000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByOwnerUserID(ctx context.Context, userID string) (*Company, error)
	Update(ctx context.Context, company *Company) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, userID string, company *Company) error
	GetMyCompany(ctx context.Context, userID string) (*Company, error)
	UpdateCompany(ctx context.Context, userID string, company *Company) error
}
