package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes: a public browse surface and a
// recruiter-only management surface.
func NewJobHandler(public, recruiters *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.ListOpenJobs)
		jobs.GET("/:jobId", handler.GetJob)
		jobs.GET("/:jobId/questions", handler.ListQuestions)
	}

	mine := recruiters.Group("/jobs")
	{
		mine.POST("", handler.CreateJob)
		mine.GET("", handler.ListMyJobs)
		mine.PUT("/:jobId", handler.UpdateJob)
		mine.PATCH("/:jobId/status", handler.UpdateJobStatus)
		mine.DELETE("/:jobId", handler.DeleteJob)
		mine.POST("/:jobId/questions", handler.AddQuestion)
		mine.DELETE("/:jobId/questions/:questionId", handler.DeleteQuestion)
	}
}

// JobRequest is the payload for creating or updating a job posting
type JobRequest struct {
	Title           string  `json:"title" binding:"required,min=3,max=200"`
	Description     string  `json:"description" binding:"required"`
	Qualifications  *string `json:"qualifications"`
	Country         string  `json:"country"`
	City            string  `json:"city"`
	Workplace       *string `json:"workplace" binding:"omitempty,oneof=on_site remote hybrid"`
	CareerLevel     *string `json:"career_level"`
	JobCategory     *string `json:"job_category"`
	JobType         *string `json:"job_type"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,gte=0,lte=60"`
	Status          string  `json:"status" binding:"omitempty,oneof=draft open closed"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:           r.Title,
		Description:     r.Description,
		Qualifications:  r.Qualifications,
		Country:         r.Country,
		City:            r.City,
		Workplace:       r.Workplace,
		CareerLevel:     r.CareerLevel,
		JobCategory:     r.JobCategory,
		JobType:         r.JobType,
		ExperienceYears: r.ExperienceYears,
		Status:          r.Status,
	}
}

// ListOpenJobs godoc
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Param        page      query     int  false  "Page"
// @Param        pageSize  query     int  false  "Page size"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	page, pageSize := paginationParams(c)

	result, err := h.jobUC.ListOpenJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", result)
}

// GetJob godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=domain.JobWithCompany}
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobRequest  true  "Job data"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Router       /recruiters/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := req.toDomain()
	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListMyJobs godoc
// @Summary      List my job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /recruiters/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, pageSize := paginationParams(c)

	result, err := h.jobUC.ListMyJobs(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", result)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int         true  "Job ID"
// @Param        body   body      JobRequest  true  "Job data"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiters/jobs/{jobId} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := req.toDomain()
	job.ID = jobID
	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// UpdateJobStatusRequest is the payload for changing a job's status
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft open closed"`
}

// UpdateJobStatus godoc
// @Summary      Change job status
// @Description  Move a job between draft, open and closed
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                     true  "Job ID"
// @Param        body   body      UpdateJobStatusRequest  true  "New status"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobUC.UpdateJobStatus(c.Request.Context(), userID, jobID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job status updated", nil)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /recruiters/jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// AddQuestionRequest is the payload for adding a screening question
type AddQuestionRequest struct {
	Question string `json:"question" binding:"required,max=500"`
	Position int    `json:"position" binding:"gte=0"`
}

// AddQuestion godoc
// @Summary      Add a screening question to a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                 true  "Job ID"
// @Param        body   body      AddQuestionRequest  true  "Question"
// @Success      201    {object}  response.Response{data=domain.ScreeningQuestion}
// @Router       /recruiters/jobs/{jobId}/questions [post]
// @Security     BearerAuth
func (h *JobHandler) AddQuestion(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	q := &domain.ScreeningQuestion{JobID: jobID, Question: req.Question, Position: req.Position}
	if err := h.jobUC.AddQuestion(c.Request.Context(), userID, q); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Question added", q)
}

// ListQuestions godoc
// @Summary      List a job's screening questions
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.ScreeningQuestion}
// @Router       /jobs/{jobId}/questions [get]
func (h *JobHandler) ListQuestions(c *gin.Context) {
	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	questions, err := h.jobUC.ListQuestions(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Questions retrieved", questions)
}

// DeleteQuestion godoc
// @Summary      Delete a screening question
// @Tags         jobs
// @Produce      json
// @Param        jobId       path      int  true  "Job ID"
// @Param        questionId  path      int  true  "Question ID"
// @Success      200         {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/questions/{questionId} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteQuestion(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}
	questionID, err := paramInt64(c, "questionId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid question ID"))
		return
	}

	if err := h.jobUC.DeleteQuestion(c.Request.Context(), userID, jobID, questionID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Question deleted", nil)
}

// paramInt64 parses a path parameter as int64
func paramInt64(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// paginationParams reads page/pageSize query params with defaults
func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return page, pageSize
}
