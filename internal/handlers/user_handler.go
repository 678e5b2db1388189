package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, g Guards) {
	users := r.Group("/users")
	users.Use(g.Required)
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.SyncProfile)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	user, err := h.userService.GetMe(c.Request.Context(), h.GetDB(c), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SyncProfile stores the display fields shown next to the caller's postings.
func (h *UserHandler) SyncProfile(c *gin.Context) {
	identity, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.SyncProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.SyncProfile(c.Request.Context(), h.GetDB(c), &req, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
