package domain

import (
	"context"
	"time"
)

// Invitation status constants
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

// Invitation is a recruiter-initiated outbound offer to a candidate for a
// job. Sends are idempotent per (recruiter, candidate, job): a repeated send
// returns the existing row instead of inserting a duplicate.
type Invitation struct {
	ID              int64     `json:"id"`
	RecruiterUserID string    `json:"recruiter_user_id"`
	CandidateUserID string    `json:"candidate_user_id"`
	JobID           int64     `json:"job_id"`
	Status          string    `json:"status"` // pending | accepted | declined
	Message         *string   `json:"message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined display fields for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	CandidateName *string `json:"candidate_name,omitempty"`
}

type InvitationRepository interface {
	// Upsert inserts the invitation or, when one already exists for the
	// (recruiter, candidate, job) triple, loads the existing row into inv.
	// Returns true when a new row was created.
	Upsert(ctx context.Context, inv *Invitation) (bool, error)
	GetByID(ctx context.Context, id int64) (*Invitation, error)
	GetByRecruiter(ctx context.Context, recruiterID string) ([]Invitation, error)
	GetByCandidate(ctx context.Context, candidateID string) ([]Invitation, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type InvitationUsecase interface {
	// Recruiter operations
	SendInvitation(ctx context.Context, recruiterID, candidateID string, jobID int64, message string) (*Invitation, error)
	ListSentInvitations(ctx context.Context, recruiterID string) ([]Invitation, error)

	// Candidate operations
	ListMyInvitations(ctx context.Context, candidateID string) ([]Invitation, error)
	RespondToInvitation(ctx context.Context, candidateID string, invitationID int64, accept bool) (*Invitation, error)
}
