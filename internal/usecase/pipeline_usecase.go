package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type pipelineUsecase struct {
	pipelineRepo domain.PipelineRepository
	jobRepo      domain.JobRepository
	userRepo     domain.UserRepository
}

func NewPipelineUsecase(
	pipelineRepo domain.PipelineRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.PipelineUsecase {
	return &pipelineUsecase{
		pipelineRepo: pipelineRepo,
		jobRepo:      jobRepo,
		userRepo:     userRepo,
	}
}

// AddToPipeline places or replaces a candidate's position in a job's hiring
// funnel. The operation upserts on (recruiter, candidate, job): calling it
// again resets stage and notes rather than creating a duplicate row.
func (uc *pipelineUsecase) AddToPipeline(ctx context.Context, recruiterID, candidateID string, jobID int64, stage string, notes string) (*domain.PipelineEntry, error) {
	// 1. Stage must be a recognized value, never stored as free text
	parsed, ok := domain.ParseStage(stage)
	if !ok {
		return nil, apperror.BadRequest("Unrecognized pipeline stage: " + stage)
	}

	// 2. Job must exist and belong to this recruiter
	if err := uc.ownedJob(ctx, recruiterID, jobID); err != nil {
		return nil, err
	}

	// 3. Candidate must exist
	if _, err := uc.userRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}

	entry := &domain.PipelineEntry{
		RecruiterUserID: recruiterID,
		CandidateUserID: candidateID,
		JobID:           jobID,
		Stage:           parsed,
	}
	if notes != "" {
		entry.Notes = &notes
	}

	if err := uc.pipelineRepo.Upsert(ctx, entry); err != nil {
		return nil, apperror.Internal(err)
	}
	return entry, nil
}

// MoveCandidate changes the stage of an existing pipeline entry. There is no
// auto-create: moving a candidate who is not in the pipeline is NotFound,
// signaling the caller to AddToPipeline first. Backward moves are allowed,
// this is a workflow tool, not a forward-only state machine.
func (uc *pipelineUsecase) MoveCandidate(ctx context.Context, recruiterID, candidateID string, jobID int64, newStage string, notes *string) (*domain.PipelineEntry, error) {
	// 1. Validate the stage before touching storage
	parsed, ok := domain.ParseStage(newStage)
	if !ok {
		return nil, apperror.BadRequest("Unrecognized pipeline stage: " + newStage)
	}

	// 2. Ownership of the job gates every pipeline mutation
	if err := uc.ownedJob(ctx, recruiterID, jobID); err != nil {
		return nil, err
	}

	// 3. The entry must already exist
	entry, err := uc.pipelineRepo.GetByCandidateAndJob(ctx, recruiterID, candidateID, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate is not in this job's pipeline")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.pipelineRepo.UpdateStage(ctx, entry.ID, parsed, notes); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate is not in this job's pipeline")
		}
		return nil, apperror.Internal(err)
	}

	entry.Stage = parsed
	if notes != nil {
		entry.Notes = notes
	}
	return entry, nil
}

// GetPipelineForJob returns the job's hiring board: every stage mapped to its
// candidates, most recently moved first.
func (uc *pipelineUsecase) GetPipelineForJob(ctx context.Context, recruiterID string, jobID int64) (domain.PipelineBoard, error) {
	if err := uc.ownedJob(ctx, recruiterID, jobID); err != nil {
		return nil, err
	}

	entries, err := uc.pipelineRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return domain.GroupByStage(entries), nil
}

func (uc *pipelineUsecase) RemoveFromPipeline(ctx context.Context, recruiterID, candidateID string, jobID int64) error {
	if err := uc.ownedJob(ctx, recruiterID, jobID); err != nil {
		return err
	}

	if err := uc.pipelineRepo.Delete(ctx, recruiterID, candidateID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate is not in this job's pipeline")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *pipelineUsecase) ownedJob(ctx context.Context, recruiterID string, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if job.PostedBy != recruiterID {
		return apperror.Forbidden("You do not own this job")
	}
	return nil
}
