package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type invitationRepo struct {
	db *pgxpool.Pool
}

func NewInvitationRepository(db *pgxpool.Pool) domain.InvitationRepository {
	return &invitationRepo{db: db}
}

// Upsert inserts the invitation; when one already exists for the
// (recruiter, candidate, job) triple the insert is a no-op and the existing
// row is loaded back instead, making sends idempotent. Returns true when a
// new row was created.
func (r *invitationRepo) Upsert(ctx context.Context, inv *domain.Invitation) (bool, error) {
	insert := `
		INSERT INTO invitations (recruiter_user_id, candidate_user_id, job_id, status, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (recruiter_user_id, candidate_user_id, job_id) DO NOTHING
		RETURNING id`

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Status == "" {
		inv.Status = domain.InvitationStatusPending
	}

	err := r.db.QueryRow(ctx, insert,
		inv.RecruiterUserID, inv.CandidateUserID, inv.JobID,
		inv.Status, inv.Message, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	// Conflict path: return the invitation that already exists.
	existing := `
		SELECT id, recruiter_user_id, candidate_user_id, job_id, status, message, created_at, updated_at
		FROM invitations
		WHERE recruiter_user_id = $1 AND candidate_user_id = $2 AND job_id = $3`

	err = r.db.QueryRow(ctx, existing, inv.RecruiterUserID, inv.CandidateUserID, inv.JobID).Scan(
		&inv.ID, &inv.RecruiterUserID, &inv.CandidateUserID, &inv.JobID,
		&inv.Status, &inv.Message, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return false, err
}

func (r *invitationRepo) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	query := `
		SELECT id, recruiter_user_id, candidate_user_id, job_id, status, message, created_at, updated_at
		FROM invitations WHERE id = $1`

	var inv domain.Invitation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.RecruiterUserID, &inv.CandidateUserID, &inv.JobID,
		&inv.Status, &inv.Message, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// GetByRecruiter lists invitations a recruiter has sent, with candidate names
func (r *invitationRepo) GetByRecruiter(ctx context.Context, recruiterID string) ([]domain.Invitation, error) {
	query := `
		SELECT
			i.id, i.recruiter_user_id, i.candidate_user_id, i.job_id, i.status, i.message,
			i.created_at, i.updated_at,
			j.title as job_title,
			COALESCE(cp.full_name, u.email) as candidate_name
		FROM invitations i
		LEFT JOIN jobs j ON i.job_id = j.id
		LEFT JOIN users u ON i.candidate_user_id = u.id
		LEFT JOIN candidate_profiles cp ON i.candidate_user_id = cp.user_id
		WHERE i.recruiter_user_id = $1
		ORDER BY i.created_at DESC`

	return r.queryInvitations(ctx, query, recruiterID)
}

// GetByCandidate lists a candidate's invitation inbox, with job/company names
func (r *invitationRepo) GetByCandidate(ctx context.Context, candidateID string) ([]domain.Invitation, error) {
	query := `
		SELECT
			i.id, i.recruiter_user_id, i.candidate_user_id, i.job_id, i.status, i.message,
			i.created_at, i.updated_at,
			j.title as job_title,
			c.name as company_name
		FROM invitations i
		LEFT JOIN jobs j ON i.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE i.candidate_user_id = $1
		ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(
			&inv.ID, &inv.RecruiterUserID, &inv.CandidateUserID, &inv.JobID, &inv.Status, &inv.Message,
			&inv.CreatedAt, &inv.UpdatedAt,
			&inv.JobTitle, &inv.CompanyName,
		); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE invitations SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invitationRepo) queryInvitations(ctx context.Context, query string, args ...any) ([]domain.Invitation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(
			&inv.ID, &inv.RecruiterUserID, &inv.CandidateUserID, &inv.JobID, &inv.Status, &inv.Message,
			&inv.CreatedAt, &inv.UpdatedAt,
			&inv.JobTitle, &inv.CandidateName,
		); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}
