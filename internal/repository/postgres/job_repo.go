package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, company_id, posted_by, title, description, qualifications,
	country, city, workplace, career_level, job_category, job_type,
	experience_years, status, created_at, updated_at`

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.CompanyID, &job.PostedBy, &job.Title, &job.Description, &job.Qualifications,
		&job.Country, &job.City, &job.Workplace, &job.CareerLevel, &job.JobCategory, &job.JobType,
		&job.ExperienceYears, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (company_id, posted_by, title, description, qualifications,
			country, city, workplace, career_level, job_category, job_type,
			experience_years, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.PostedBy, job.Title, job.Description, job.Qualifications,
		job.Country, job.City, job.Workplace, job.CareerLevel, job.JobCategory, job.JobType,
		job.ExperienceYears, job.Status, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetByIDWithCompany retrieves a job with company display fields
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT
			j.id, j.company_id, j.posted_by, j.title, j.description, j.qualifications,
			j.country, j.city, j.workplace, j.career_level, j.job_category, j.job_type,
			j.experience_years, j.status, j.created_at, j.updated_at,
			COALESCE(c.name, 'Unknown Company') as company_name,
			c.website,
			c.industry
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.CompanyID, &job.PostedBy, &job.Title, &job.Description, &job.Qualifications,
		&job.Country, &job.City, &job.Workplace, &job.CareerLevel, &job.JobCategory, &job.JobType,
		&job.ExperienceYears, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyWebsite, &job.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchOpen lists open jobs with company display fields for the public board
func (r *jobRepo) FetchOpen(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	query := `
		SELECT
			j.id, j.company_id, j.posted_by, j.title, j.description, j.qualifications,
			j.country, j.city, j.workplace, j.career_level, j.job_category, j.job_type,
			j.experience_years, j.status, j.created_at, j.updated_at,
			COALESCE(c.name, 'Unknown Company') as company_name,
			c.website,
			c.industry
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.status = 'open'
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var job domain.JobWithCompany
		if err := rows.Scan(
			&job.ID, &job.CompanyID, &job.PostedBy, &job.Title, &job.Description, &job.Qualifications,
			&job.Country, &job.City, &job.Workplace, &job.CareerLevel, &job.JobCategory, &job.JobType,
			&job.ExperienceYears, &job.Status, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyWebsite, &job.Industry,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'open'`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// FetchByRecruiter lists all jobs posted by a recruiter, any status
func (r *jobRepo) FetchByRecruiter(ctx context.Context, userID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			title = $2, description = $3, qualifications = $4, country = $5, city = $6,
			workplace = $7, career_level = $8, job_category = $9, job_type = $10,
			experience_years = $11, updated_at = $12
		WHERE id = $1`

	job.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Qualifications, job.Country, job.City,
		job.Workplace, job.CareerLevel, job.JobCategory, job.JobType,
		job.ExperienceYears, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus sets the job status and refreshes updated_at
func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE jobs SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a job; applications, pipeline entries, invitations and
// questions cascade at the schema level.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) AddQuestion(ctx context.Context, q *domain.ScreeningQuestion) error {
	query := `
		INSERT INTO screening_questions (job_id, question, position, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	q.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query, q.JobID, q.Question, q.Position, q.CreatedAt).Scan(&q.ID)
}

func (r *jobRepo) ListQuestions(ctx context.Context, jobID int64) ([]domain.ScreeningQuestion, error) {
	query := `
		SELECT id, job_id, question, position, created_at
		FROM screening_questions
		WHERE job_id = $1
		ORDER BY position, id`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.ScreeningQuestion
	for rows.Next() {
		var q domain.ScreeningQuestion
		if err := rows.Scan(&q.ID, &q.JobID, &q.Question, &q.Position, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *jobRepo) DeleteQuestion(ctx context.Context, jobID, questionID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM screening_questions WHERE id = $1 AND job_id = $2`, questionID, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
