package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company management routes for recruiters.
func NewCompanyHandler(recruiters *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	recruiters.POST("/company", handler.CreateCompany)
	recruiters.GET("/company", handler.GetMyCompany)
	recruiters.PUT("/company", handler.UpdateCompany)
}

type CompanyRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=120"`
	Website  *string `json:"website" binding:"omitempty,url"`
	Industry *string `json:"industry"`
	About    *string `json:"about" binding:"omitempty,max=2000"`
}

func (r *CompanyRequest) toDomain() *domain.Company {
	return &domain.Company{
		Name:     r.Name,
		Website:  r.Website,
		Industry: r.Industry,
		About:    r.About,
	}
}

// CreateCompany godoc
// @Summary      Create my company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyRequest  true  "Company data"
// @Success      201   {object}  response.Response{data=domain.Company}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /recruiters/company [post]
// @Security     BearerAuth
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := req.toDomain()
	if err := h.companyUC.CreateCompany(c.Request.Context(), userID, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created", company)
}

// GetMyCompany godoc
// @Summary      Get my company
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /recruiters/company [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetMyCompany(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	company, err := h.companyUC.GetMyCompany(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// UpdateCompany godoc
// @Summary      Update my company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyRequest  true  "Company data"
// @Success      200   {object}  response.Response{data=domain.Company}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /recruiters/company [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := req.toDomain()
	if err := h.companyUC.UpdateCompany(c.Request.Context(), userID, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated", company)
}
