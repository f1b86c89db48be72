package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique constraint on
// (candidate_user_id, job_id) is the duplicate guard, a violation comes back
// as domain.ErrDuplicate so concurrent double-submits cannot race past an
// application-level check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (candidate_user_id, job_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.CandidateUserID,
		app.JobID,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

// GetByUserID retrieves all applications for a candidate with job display fields
func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.candidate_user_id, a.job_id, a.status, a.created_at, a.updated_at,
			j.title as job_title,
			c.name as company_name
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE a.candidate_user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.CandidateUserID, &app.JobID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByJobID retrieves all applications for a job with candidate display fields
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.candidate_user_id, a.job_id, a.status, a.created_at, a.updated_at,
			COALESCE(cp.full_name, u.email) as candidate_name,
			cp.title as candidate_title
		FROM applications a
		LEFT JOIN users u ON a.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON a.candidate_user_id = cp.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.CandidateUserID, &app.JobID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.CandidateName, &app.CandidateTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
