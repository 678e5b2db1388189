package handlers

import (
	"net/http"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup, g Guards) {
	public := r.Group("/jobs")
	public.Use(g.Optional)
	{
		public.GET("", h.SearchJobs)
		public.GET("/:id", h.GetJob)
	}

	jobs := r.Group("/jobs")
	jobs.Use(g.Required)
	{
		jobs.POST("", g.Employer, h.CreateJob)
		jobs.PATCH("/:id", h.UpdateJob)
		jobs.DELETE("/:id", h.DeleteJob)
	}

	admin := r.Group("/admin/jobs")
	admin.Use(g.Required, g.Admin)
	{
		admin.PATCH("/:id/approval", h.SetApproval)
	}
}

// --- Public handlers ---

// SearchJobs godoc
// @Summary Поиск вакансий
// @Description Фильтрует активные вакансии и возвращает страницу с общим количеством совпадений
// @Tags jobs
// @Produce json
// @Param search query string false "Подстрока в названии, описании, навыках или компании"
// @Param location query string false "Подстрока локации"
// @Param job_type query string false "full-time, part-time, contract, internship, freelance"
// @Param experience_level query string false "entry, mid, senior, lead, executive"
// @Param salary_min query number false "Минимальная зарплата"
// @Param salary_max query number false "Максимальная зарплата"
// @Param company_id query string false "ID компании"
// @Param is_remote query bool false "Только удалённые"
// @Param posted_by query string false "ID автора"
// @Param sort query string false "latest, salary-high, salary-low, relevance"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Param page query int false "Номер страницы (с 1)"
// @Success 200 {object} dto.JobPage
// @Failure 400 {object} apperrors.ErrorResponse "Некорректный фильтр"
// @Failure 503 {object} apperrors.ErrorResponse "Хранилище недоступно"
// @Router /jobs [get]
func (h *JobHandler) SearchJobs(c *gin.Context) {
	req, err := jobquery.ParseValues(c.Request.URL.Query())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.jobService.SearchJobs(c.Request.Context(), h.GetDB(c), req, h.OptionalIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetJob returns one posting and counts the fetch as a view.
// @Summary Вакансия по ID
// @Tags jobs
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} dto.JobRecord
// @Failure 404 {object} apperrors.ErrorResponse "Вакансия не найдена"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.GetDB(c)
	jobID := c.Param("id")

	job, err := h.jobService.GetJob(ctx, db, jobID, h.OptionalIdentity(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.RecordView(ctx, db, jobID); err != nil {
		logger.CtxWarn(ctx, "Failed to record job view", "job_id", jobID, "error", err)
	} else {
		job.ViewCount++
	}

	c.JSON(http.StatusOK, job)
}

// --- Authenticated handlers ---

// CreateJob godoc
// @Summary Создать вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} dto.JobRecord
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Failure 403 {object} apperrors.ErrorResponse "Недостаточно прав"
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), &req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Обновить вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Param job body dto.UpdateJobRequest true "Изменяемые поля"
// @Success 200 {object} dto.JobRecord
// @Failure 403 {object} apperrors.ErrorResponse "Не автор и не администратор"
// @Failure 404 {object} apperrors.ErrorResponse "Вакансия не найдена"
// @Router /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Снять вакансию с публикации
// @Tags jobs
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 204
// @Failure 403 {object} apperrors.ErrorResponse "Не автор и не администратор"
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), c.Param("id"), identity); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Admin handlers ---

// SetApproval godoc
// @Summary Одобрить или отклонить вакансию
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Param body body dto.SetApprovalRequest true "Решение"
// @Success 200 {object} dto.JobRecord
// @Router /admin/jobs/{id}/approval [patch]
func (h *JobHandler) SetApproval(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.SetApprovalRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.SetApproval(c.Request.Context(), h.GetDB(c), c.Param("id"), *req.Approved, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
