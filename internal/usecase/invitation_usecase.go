package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type invitationUsecase struct {
	invitationRepo domain.InvitationRepository
	jobRepo        domain.JobRepository
	userRepo       domain.UserRepository
}

func NewInvitationUsecase(
	invitationRepo domain.InvitationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.InvitationUsecase {
	return &invitationUsecase{
		invitationRepo: invitationRepo,
		jobRepo:        jobRepo,
		userRepo:       userRepo,
	}
}

// SendInvitation offers a job to a candidate outside the application flow.
// Sends are idempotent per (recruiter, candidate, job): resending returns the
// existing invitation instead of creating unbounded duplicate rows.
func (uc *invitationUsecase) SendInvitation(ctx context.Context, recruiterID, candidateID string, jobID int64, message string) (*domain.Invitation, error) {
	// 1. Job must exist and belong to the inviting recruiter
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != recruiterID {
		return nil, apperror.Forbidden("You do not own this job")
	}

	// 2. Candidate must exist and actually be a candidate
	candidate, err := uc.userRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	if candidate.Role != domain.RoleCandidate {
		return nil, apperror.BadRequest("Invitations can only be sent to candidates")
	}

	// 3. Insert or return the existing invitation
	inv := &domain.Invitation{
		RecruiterUserID: recruiterID,
		CandidateUserID: candidateID,
		JobID:           jobID,
		Status:          domain.InvitationStatusPending,
	}
	if message != "" {
		inv.Message = &message
	}

	if _, err := uc.invitationRepo.Upsert(ctx, inv); err != nil {
		return nil, apperror.Internal(err)
	}
	return inv, nil
}

func (uc *invitationUsecase) ListSentInvitations(ctx context.Context, recruiterID string) ([]domain.Invitation, error) {
	invitations, err := uc.invitationRepo.GetByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return invitations, nil
}

func (uc *invitationUsecase) ListMyInvitations(ctx context.Context, candidateID string) ([]domain.Invitation, error) {
	invitations, err := uc.invitationRepo.GetByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return invitations, nil
}

// RespondToInvitation lets the invited candidate accept or decline a pending
// invitation. Responding twice is a Conflict.
func (uc *invitationUsecase) RespondToInvitation(ctx context.Context, candidateID string, invitationID int64, accept bool) (*domain.Invitation, error) {
	inv, err := uc.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Invitation not found")
		}
		return nil, apperror.Internal(err)
	}
	if inv.CandidateUserID != candidateID {
		return nil, apperror.Forbidden("This invitation was not sent to you")
	}
	if inv.Status != domain.InvitationStatusPending {
		return nil, apperror.Conflict("This invitation has already been responded to")
	}

	status := domain.InvitationStatusDeclined
	if accept {
		status = domain.InvitationStatusAccepted
	}
	if err := uc.invitationRepo.UpdateStatus(ctx, invitationID, status); err != nil {
		return nil, apperror.Internal(err)
	}

	inv.Status = status
	return inv, nil
}
