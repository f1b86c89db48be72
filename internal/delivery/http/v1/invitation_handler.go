package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationUC domain.InvitationUsecase
}

// NewInvitationHandler registers invitation routes
func NewInvitationHandler(candidates, recruiters *gin.RouterGroup, invitationUC domain.InvitationUsecase) {
	handler := &InvitationHandler{invitationUC: invitationUC}

	recruiters.POST("/invitations", handler.SendInvitation)
	recruiters.GET("/invitations", handler.ListSentInvitations)

	candidates.GET("/invitations", handler.ListMyInvitations)
	candidates.PATCH("/invitations/:id", handler.RespondToInvitation)
}

// SendInvitationRequest is the payload for inviting a candidate to a job
type SendInvitationRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
	JobID       int64  `json:"job_id" binding:"required"`
	Message     string `json:"message" binding:"max=1000"`
}

// SendInvitation godoc
// @Summary      Invite a candidate to a job
// @Description  Offer a job to a candidate outside the application flow. Resending for the same candidate and job returns the existing invitation.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body      SendInvitationRequest  true  "Invitation data"
// @Success      201   {object}  response.Response{data=domain.Invitation}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /recruiters/invitations [post]
// @Security     BearerAuth
func (h *InvitationHandler) SendInvitation(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	var req SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	inv, err := h.invitationUC.SendInvitation(c.Request.Context(), recruiterID, req.CandidateID, req.JobID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Invitation sent", inv)
}

// ListSentInvitations godoc
// @Summary      List invitations I sent
// @Tags         invitations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Invitation}
// @Router       /recruiters/invitations [get]
// @Security     BearerAuth
func (h *InvitationHandler) ListSentInvitations(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	invitations, err := h.invitationUC.ListSentInvitations(c.Request.Context(), recruiterID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invitations retrieved", invitations)
}

// ListMyInvitations godoc
// @Summary      My invitation inbox
// @Tags         invitations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Invitation}
// @Router       /candidates/invitations [get]
// @Security     BearerAuth
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	invitations, err := h.invitationUC.ListMyInvitations(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invitations retrieved", invitations)
}

// RespondToInvitationRequest is the payload for accepting or declining
type RespondToInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// RespondToInvitation godoc
// @Summary      Accept or decline an invitation
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id    path      int                         true  "Invitation ID"
// @Param        body  body      RespondToInvitationRequest  true  "Response"
// @Success      200   {object}  response.Response{data=domain.Invitation}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /candidates/invitations/{id} [patch]
// @Security     BearerAuth
func (h *InvitationHandler) RespondToInvitation(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	invitationID, err := paramInt64(c, "id")
	if err != nil {
		c.Error(apperror.BadRequest("Invalid invitation ID"))
		return
	}

	var req RespondToInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	inv, err := h.invitationUC.RespondToInvitation(c.Request.Context(), candidateID, invitationID, *req.Accept)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Invitation updated", inv)
}
