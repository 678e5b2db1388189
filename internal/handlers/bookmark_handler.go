package handlers

import (
	"net/http"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	*BaseHandler
	bookmarkService services.BookmarkService
}

func NewBookmarkHandler(base *BaseHandler, bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		BaseHandler:     base,
		bookmarkService: bookmarkService,
	}
}

// RegisterRoutes must run before the job routes claim /jobs/:id.
func (h *BookmarkHandler) RegisterRoutes(r *gin.RouterGroup, g Guards) {
	saved := r.Group("/jobs")
	saved.Use(g.Required)
	{
		saved.GET("/saved", h.ListSaved)
		saved.POST("/:id/save", h.SaveJob)
		saved.DELETE("/:id/save", h.RemoveJob)
	}
}

// ListSaved godoc
// @Summary Сохранённые вакансии
// @Description Принимает те же параметры, что и поиск
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.JobPage
// @Router /jobs/saved [get]
func (h *BookmarkHandler) ListSaved(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	req, err := jobquery.ParseValues(c.Request.URL.Query())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, err := h.bookmarkService.ListSaved(c.Request.Context(), h.GetDB(c), req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// SaveJob godoc
// @Summary Сохранить вакансию
// @Tags bookmarks
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse "Вакансия не найдена"
// @Router /jobs/{id}/save [post]
func (h *BookmarkHandler) SaveJob(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	if err := h.bookmarkService.SaveJob(c.Request.Context(), h.GetDB(c), c.Param("id"), identity); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveJob godoc
// @Summary Убрать вакансию из сохранённых
// @Tags bookmarks
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 204
// @Router /jobs/{id}/save [delete]
func (h *BookmarkHandler) RemoveJob(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	if err := h.bookmarkService.RemoveJob(c.Request.Context(), h.GetDB(c), c.Param("id"), identity); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
