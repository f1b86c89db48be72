package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(candidates, recruiters *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidates.POST("/jobs/:jobId/apply", handler.SubmitApplication)
	candidates.GET("/applications", handler.ListMyApplications)

	recruiters.GET("/jobs/:jobId/applications", handler.ListJobApplications)
}

// SubmitApplication godoc
// @Summary      Apply to a job
// @Description  Submit an application for an open job. A candidate can apply to a job at most once.
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      201    {object}  response.Response{data=domain.Application}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /candidates/jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	// The acting candidate always comes from the session, never the payload
	candidateID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	app, err := h.applicationUC.SubmitApplication(c.Request.Context(), candidateID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMyApplications godoc
// @Summary      Get my applications
// @Description  All applications submitted by the current candidate
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /candidates/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListMyApplications(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  The flat pre-pipeline intake view, owning recruiter only
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.Application}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /recruiters/jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	jobID, err := paramInt64(c, "jobId")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListByJobID(c.Request.Context(), recruiterID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}
