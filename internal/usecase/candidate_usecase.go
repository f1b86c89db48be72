package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	profile, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpsertProfile creates the candidate's profile on the first call and
// updates it afterwards. UserID always comes from the authenticated session,
// never from the payload.
func (u *candidateUsecase) UpsertProfile(ctx context.Context, userID string, profile *domain.CandidateProfile) error {
	profile.UserID = userID

	if err := u.validate.Struct(profile); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return apperror.BadRequest(msgs[0])
	}

	_, err := u.candidateRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := u.candidateRepo.Update(ctx, profile); err != nil {
			return apperror.Internal(err)
		}
	case errors.Is(err, domain.ErrNotFound):
		if err := u.candidateRepo.Create(ctx, profile); err != nil {
			return apperror.Internal(err)
		}
	default:
		return apperror.Internal(err)
	}
	return nil
}

// SearchCandidates runs a recruiter's filtered candidate search.
func (u *candidateUsecase) SearchCandidates(ctx context.Context, filter domain.CandidateFilter) (*domain.PaginatedResult[domain.CandidateProfile], error) {
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	if filter.ExperienceYearsMin != nil && filter.ExperienceYearsMax != nil &&
		*filter.ExperienceYearsMin > *filter.ExperienceYearsMax {
		return nil, apperror.BadRequest("experience_years_min cannot exceed experience_years_max")
	}

	profiles, total, err := u.candidateRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.NewPaginatedResult(profiles, total, filter.Page, filter.PageSize), nil
}
