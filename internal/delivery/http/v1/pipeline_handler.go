package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	pipelineUC domain.PipelineUsecase
}

// NewPipelineHandler registers the recruiter hiring-board routes
func NewPipelineHandler(recruiters *gin.RouterGroup, pipelineUC domain.PipelineUsecase) {
	handler := &PipelineHandler{pipelineUC: pipelineUC}

	pipeline := recruiters.Group("/jobs/:jobId/pipeline")
	{
		pipeline.GET("", handler.GetBoard)
		pipeline.POST("", handler.AddToPipeline)
		pipeline.PATCH("/:candidateId", handler.MoveCandidate)
		pipeline.DELETE("/:candidateId", handler.RemoveFromPipeline)
	}
}

// AddToPipelineRequest is the payload for placing a candidate on the board
type AddToPipelineRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
	Stage       string `json:"stage" binding:"required"`
	Notes       string `json:"notes" binding:"max=2000"`
}

// AddToPipeline godoc
// @Summary      Add a candidate to a job's pipeline
// @Description  Places or replaces the candidate's position in the hiring funnel. Calling it again for the same candidate resets stage and notes.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                   true  "Job ID"
// @Param        body   body      AddToPipelineRequest  true  "Placement"
// @Success      201    {object}  response.Response{data=domain.PipelineEntry}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/pipeline [post]
// @Security     BearerAuth
func (h *PipelineHandler) AddToPipeline(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req AddToPipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.pipelineUC.AddToPipeline(c.Request.Context(), recruiterID, req.CandidateID, jobID, req.Stage, req.Notes)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate added to pipeline", entry)
}

// MoveCandidateRequest is the payload for a stage move
type MoveCandidateRequest struct {
	Stage string  `json:"stage" binding:"required"`
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
}

// MoveCandidate godoc
// @Summary      Move a candidate to another stage
// @Description  Updates the stage of an existing pipeline entry. Backward moves are allowed. Notes, when supplied, overwrite the previous notes.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        jobId        path      int                   true  "Job ID"
// @Param        candidateId  path      string                true  "Candidate user ID"
// @Param        body         body      MoveCandidateRequest  true  "Move"
// @Success      200          {object}  response.Response{data=domain.PipelineEntry}
// @Failure      400          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/pipeline/{candidateId} [patch]
// @Security     BearerAuth
func (h *PipelineHandler) MoveCandidate(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req MoveCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entry, err := h.pipelineUC.MoveCandidate(c.Request.Context(), recruiterID, candidateID, jobID, req.Stage, req.Notes)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate moved", entry)
}

// GetBoard godoc
// @Summary      Get a job's pipeline board
// @Description  Every stage mapped to its candidates, most recently moved first
// @Tags         pipeline
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=domain.PipelineBoard}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/pipeline [get]
// @Security     BearerAuth
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	board, err := h.pipelineUC.GetPipelineForJob(c.Request.Context(), recruiterID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pipeline retrieved", board)
}

// RemoveFromPipeline godoc
// @Summary      Remove a candidate from a job's pipeline
// @Tags         pipeline
// @Produce      json
// @Param        jobId        path      int     true  "Job ID"
// @Param        candidateId  path      string  true  "Candidate user ID"
// @Success      200          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/pipeline/{candidateId} [delete]
// @Security     BearerAuth
func (h *PipelineHandler) RemoveFromPipeline(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))
	candidateID := c.Param("candidateId")

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.pipelineUC.RemoveFromPipeline(c.Request.Context(), recruiterID, candidateID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate removed from pipeline", nil)
}
