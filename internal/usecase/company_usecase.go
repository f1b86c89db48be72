package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo, validate: validate}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, userID string, company *domain.Company) error {
	company.OwnerUserID = userID

	if err := u.validate.Struct(company); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return apperror.BadRequest(msgs[0])
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("You already have a company profile")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) GetMyCompany(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, userID string, company *domain.Company) error {
	existing, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company profile not found")
		}
		return apperror.Internal(err)
	}

	company.ID = existing.ID
	company.OwnerUserID = userID

	if err := u.validate.Struct(company); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return apperror.BadRequest(msgs[0])
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
