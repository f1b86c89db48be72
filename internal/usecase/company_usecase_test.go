package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCompany(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()
	validation.RegisterValidators(validate)

	t.Run("Should conflict when the recruiter already has one", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo, validate)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(domain.ErrDuplicate)

		err := uc.CreateCompany(ctx, "rec1", &domain.Company{Name: "Acme"})
		assert.Error(t, err)
		assertKind(t, err, apperror.KindConflict)
	})

	t.Run("Should stamp the owner from the session", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo, validate)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Company)
			assert.Equal(t, "rec1", c.OwnerUserID)
		})

		company := &domain.Company{OwnerUserID: "spoofed", Name: "Acme"}
		err := uc.CreateCompany(ctx, "rec1", company)
		assert.NoError(t, err)
	})

	t.Run("Should reject an invalid payload", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo, validate)

		err := uc.CreateCompany(ctx, "rec1", &domain.Company{Name: "A"})
		assert.Error(t, err)
		assertKind(t, err, apperror.KindValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()
	validation.RegisterValidators(validate)

	t.Run("Should update the existing company in place", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo, validate)

		repo.On("GetByOwnerUserID", ctx, "rec1").Return(&domain.Company{ID: 5, OwnerUserID: "rec1", Name: "Acme"}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Company")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Company)
			assert.Equal(t, int64(5), c.ID)
			assert.Equal(t, "rec1", c.OwnerUserID)
		})

		err := uc.UpdateCompany(ctx, "rec1", &domain.Company{Name: "Acme Rebranded"})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should be not found without an existing company", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uc := usecase.NewCompanyUsecase(repo, validate)

		repo.On("GetByOwnerUserID", ctx, "rec1").Return(nil, domain.ErrNotFound)

		err := uc.UpdateCompany(ctx, "rec1", &domain.Company{Name: "Acme"})
		assert.Error(t, err)
		assertKind(t, err, apperror.KindNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
