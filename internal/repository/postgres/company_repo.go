package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (owner_user_id, name, website, industry, about, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		company.OwnerUserID, company.Name, company.Website, company.Industry, company.About,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, owner_user_id, name, website, industry, about, created_at, updated_at FROM companies WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *companyRepo) GetByOwnerUserID(ctx context.Context, userID string) (*domain.Company, error) {
	query := `SELECT id, owner_user_id, name, website, industry, about, created_at, updated_at FROM companies WHERE owner_user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, website = $3, industry = $4, about = $5, updated_at = $6
		WHERE id = $1`

	company.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Website, company.Industry, company.About, company.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) getOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var company domain.Company
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&company.ID, &company.OwnerUserID, &company.Name, &company.Website,
		&company.Industry, &company.About, &company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}
