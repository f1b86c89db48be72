package domain

import (
	"context"
	"time"
)

// Stage is a step in a job's hiring funnel. The set is closed: unrecognized
// strings are rejected at the boundary so the read-model grouping never sees
// free text. The workflow itself is deliberately permissive, any stage can
// move to any other stage, including backward.
type Stage string

const (
	StageApplied            Stage = "applied"
	StageShortlisted        Stage = "shortlisted"
	StageInterviewScheduled Stage = "interview_scheduled"
	StageInterviewing       Stage = "interviewing"
	StageJobOffer           Stage = "job_offer"
	StageOnHold             Stage = "on_hold"
	StageRejected           Stage = "rejected"
	StageHired              Stage = "hired"
)

// Stages lists every stage in board display order.
func Stages() []Stage {
	return []Stage{
		StageApplied,
		StageShortlisted,
		StageInterviewScheduled,
		StageInterviewing,
		StageJobOffer,
		StageOnHold,
		StageRejected,
		StageHired,
	}
}

// ParseStage validates s against the closed stage set.
func ParseStage(s string) (Stage, bool) {
	switch Stage(s) {
	case StageApplied, StageShortlisted, StageInterviewScheduled, StageInterviewing,
		StageJobOffer, StageOnHold, StageRejected, StageHired:
		return Stage(s), true
	}
	return "", false
}

// PipelineEntry tracks one candidate's current hiring stage for one job.
// (recruiter_user_id, candidate_user_id, job_id) is the natural key and is
// unique at the storage layer; AddToPipeline upserts on it.
type PipelineEntry struct {
	ID              int64     `json:"id"`
	RecruiterUserID string    `json:"recruiter_user_id"`
	CandidateUserID string    `json:"candidate_user_id"`
	JobID           int64     `json:"job_id"`
	Stage           Stage     `json:"stage"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PipelineCandidate is one board card: a pipeline entry joined with the
// candidate's display fields.
type PipelineCandidate struct {
	CandidateUserID string    `json:"candidate_user_id"`
	CandidateName   string    `json:"candidate_name"`
	CandidateTitle  *string   `json:"candidate_title,omitempty"`
	Stage           Stage     `json:"stage"`
	Notes           *string   `json:"notes,omitempty"`
	MovedAt         time.Time `json:"moved_at"`
}

// PipelineBoard groups a job's pipeline entries by stage. Every stage is
// present as a key, empty stages map to an empty list. Within a stage,
// entries are ordered by most recently moved first.
type PipelineBoard map[Stage][]PipelineCandidate

// GroupByStage builds the board from a flat, updated_at-descending list.
func GroupByStage(entries []PipelineCandidate) PipelineBoard {
	board := make(PipelineBoard, len(Stages()))
	for _, s := range Stages() {
		board[s] = []PipelineCandidate{}
	}
	for _, e := range entries {
		board[e.Stage] = append(board[e.Stage], e)
	}
	return board
}

type PipelineRepository interface {
	// Upsert creates the entry or, on natural-key conflict, replaces stage
	// and notes and refreshes updated_at.
	Upsert(ctx context.Context, entry *PipelineEntry) error
	GetByCandidateAndJob(ctx context.Context, recruiterID, candidateID string, jobID int64) (*PipelineEntry, error)
	// UpdateStage mutates stage (and notes when non-nil) of an existing
	// entry. Returns ErrNotFound when no row matches.
	UpdateStage(ctx context.Context, id int64, stage Stage, notes *string) error
	ListByJob(ctx context.Context, jobID int64) ([]PipelineCandidate, error)
	Delete(ctx context.Context, recruiterID, candidateID string, jobID int64) error
}

type PipelineUsecase interface {
	AddToPipeline(ctx context.Context, recruiterID, candidateID string, jobID int64, stage string, notes string) (*PipelineEntry, error)
	MoveCandidate(ctx context.Context, recruiterID, candidateID string, jobID int64, newStage string, notes *string) (*PipelineEntry, error)
	GetPipelineForJob(ctx context.Context, recruiterID string, jobID int64) (PipelineBoard, error)
	RemoveFromPipeline(ctx context.Context, recruiterID, candidateID string, jobID int64) error
}
