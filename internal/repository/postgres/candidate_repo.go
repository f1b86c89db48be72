package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, user_id, full_name, title, bio, city, country,
	career_level, experience_years, skills, cv_url, photo_url, created_at, updated_at`

func scanCandidate(row pgx.Row, p *domain.CandidateProfile) error {
	var skills []string
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Title, &p.Bio, &p.City, &p.Country,
		&p.CareerLevel, &p.ExperienceYears, pq.Array(&skills), &p.CvURL, &p.PhotoURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	p.Skills = skills
	return err
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	if err := scanCandidate(r.db.QueryRow(ctx, query, userID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `
		INSERT INTO candidate_profiles (user_id, full_name, title, bio, city, country,
			career_level, experience_years, skills, cv_url, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Title, profile.Bio, profile.City, profile.Country,
		profile.CareerLevel, profile.ExperienceYears, pq.Array(profile.Skills),
		profile.CvURL, profile.PhotoURL, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *candidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `
		UPDATE candidate_profiles
		SET full_name = $2, title = $3, bio = $4, city = $5, country = $6,
			career_level = $7, experience_years = $8, skills = $9,
			cv_url = $10, photo_url = $11, updated_at = $12
		WHERE user_id = $1`

	profile.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.Title, profile.Bio, profile.City, profile.Country,
		profile.CareerLevel, profile.ExperienceYears, pq.Array(profile.Skills),
		profile.CvURL, profile.PhotoURL, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search fetches candidate profiles matching the filter criteria
func (r *candidateRepo) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateProfile, int64, error) {
	// Build dynamic WHERE clause
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIndex := 1

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR title ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Keyword+"%")
		argIndex++
	}

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", argIndex))
		args = append(args, filter.City)
		argIndex++
	}

	if filter.CareerLevel != "" {
		conditions = append(conditions, fmt.Sprintf("career_level = $%d", argIndex))
		args = append(args, filter.CareerLevel)
		argIndex++
	}

	if len(filter.Skills) > 0 {
		// Array overlap: candidate matches when they have any requested skill
		conditions = append(conditions, fmt.Sprintf("skills && $%d", argIndex))
		args = append(args, pq.Array(filter.Skills))
		argIndex++
	}

	if filter.ExperienceYearsMin != nil {
		conditions = append(conditions, fmt.Sprintf("experience_years >= $%d", argIndex))
		args = append(args, *filter.ExperienceYearsMin)
		argIndex++
	}

	if filter.ExperienceYearsMax != nil {
		conditions = append(conditions, fmt.Sprintf("experience_years <= $%d", argIndex))
		args = append(args, *filter.ExperienceYearsMax)
		argIndex++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM candidate_profiles WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM candidate_profiles WHERE %s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`,
		candidateColumns, where, argIndex, argIndex+1,
	)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []domain.CandidateProfile
	for rows.Next() {
		var p domain.CandidateProfile
		if err := scanCandidate(rows, &p); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	return profiles, total, rows.Err()
}
