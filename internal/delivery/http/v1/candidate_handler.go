package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers candidate profile routes and the recruiter
// candidate search.
func NewCandidateHandler(candidates, recruiters *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates.GET("/profile", handler.GetProfile)
	candidates.PUT("/profile", handler.UpsertProfile)

	recruiters.POST("/candidates/search", handler.SearchCandidates)
}

// GetProfile godoc
// @Summary      Get my candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidates/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpsertProfile godoc
// @Summary      Create or update my candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateProfile  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Router       /candidates/profile [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var profile domain.CandidateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.UpsertProfile(c.Request.Context(), userID, &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// SearchCandidates godoc
// @Summary      Search candidates
// @Description  Filtered, paginated candidate search for recruiters
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateFilter  true  "Filter"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /recruiters/candidates/search [post]
// @Security     BearerAuth
func (h *CandidateHandler) SearchCandidates(c *gin.Context) {
	var filter domain.CandidateFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.candidateUC.SearchCandidates(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", result)
}
