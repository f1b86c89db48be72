package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pipelineRepo struct {
	db *pgxpool.Pool
}

func NewPipelineRepository(db *pgxpool.Pool) domain.PipelineRepository {
	return &pipelineRepo{db: db}
}

// Upsert places or replaces the candidate's pipeline position for a job.
// The natural key (recruiter_user_id, candidate_user_id, job_id) carries a
// unique constraint, so the conflict branch runs atomically in the database.
func (r *pipelineRepo) Upsert(ctx context.Context, entry *domain.PipelineEntry) error {
	query := `
		INSERT INTO pipeline_entries (recruiter_user_id, candidate_user_id, job_id, stage, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (recruiter_user_id, candidate_user_id, job_id)
		DO UPDATE SET stage = EXCLUDED.stage, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	now := time.Now()
	entry.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		entry.RecruiterUserID, entry.CandidateUserID, entry.JobID,
		entry.Stage, entry.Notes, now, now,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *pipelineRepo) GetByCandidateAndJob(ctx context.Context, recruiterID, candidateID string, jobID int64) (*domain.PipelineEntry, error) {
	query := `
		SELECT id, recruiter_user_id, candidate_user_id, job_id, stage, notes, created_at, updated_at
		FROM pipeline_entries
		WHERE recruiter_user_id = $1 AND candidate_user_id = $2 AND job_id = $3`

	var entry domain.PipelineEntry
	err := r.db.QueryRow(ctx, query, recruiterID, candidateID, jobID).Scan(
		&entry.ID, &entry.RecruiterUserID, &entry.CandidateUserID, &entry.JobID,
		&entry.Stage, &entry.Notes, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// UpdateStage moves an existing entry to a new stage and refreshes
// updated_at. Notes overwrite the previous value only when supplied.
func (r *pipelineRepo) UpdateStage(ctx context.Context, id int64, stage domain.Stage, notes *string) error {
	query := `
		UPDATE pipeline_entries
		SET stage = $2, notes = COALESCE($3, notes), updated_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, stage, notes, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByJob returns the job's pipeline entries joined with candidate display
// fields, most recently moved first. The usecase groups them by stage.
func (r *pipelineRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.PipelineCandidate, error) {
	query := `
		SELECT
			p.candidate_user_id,
			COALESCE(cp.full_name, u.email) as candidate_name,
			cp.title as candidate_title,
			p.stage, p.notes, p.updated_at
		FROM pipeline_entries p
		LEFT JOIN users u ON p.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON p.candidate_user_id = cp.user_id
		WHERE p.job_id = $1
		ORDER BY p.updated_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PipelineCandidate
	for rows.Next() {
		var e domain.PipelineCandidate
		if err := rows.Scan(
			&e.CandidateUserID, &e.CandidateName, &e.CandidateTitle,
			&e.Stage, &e.Notes, &e.MovedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pipelineRepo) Delete(ctx context.Context, recruiterID, candidateID string, jobID int64) error {
	query := `DELETE FROM pipeline_entries WHERE recruiter_user_id = $1 AND candidate_user_id = $2 AND job_id = $3`
	result, err := r.db.Exec(ctx, query, recruiterID, candidateID, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
