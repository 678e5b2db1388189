package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup, g Guards) {
	companies := r.Group("/companies")
	{
		companies.GET("/:id", h.GetCompany)
		companies.POST("", g.Required, g.Employer, h.CreateCompany)
		companies.GET("/my", g.Required, g.Employer, h.ListMyCompanies)
	}

	admin := r.Group("/admin/companies")
	admin.Use(g.Required, g.Admin)
	{
		admin.PATCH("/:id/verification", h.SetVerification)
	}
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), h.GetDB(c), &req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) ListMyCompanies(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListMyCompanies(c.Request.Context(), h.GetDB(c), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *CompanyHandler) SetVerification(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.SetVerificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.SetVerified(c.Request.Context(), h.GetDB(c), c.Param("id"), *req.Verified, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
