package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	JobHandler      *JobHandler
	BookmarkHandler *BookmarkHandler
	CompanyHandler  *CompanyHandler
	UserHandler     *UserHandler
	HealthHandler   *HealthHandler
}

// Guards are the auth middlewares handlers attach to their route groups.
type Guards struct {
	// Optional attaches an identity when a token is sent.
	Optional gin.HandlerFunc
	// Required rejects anonymous callers.
	Required gin.HandlerFunc
	// Employer and Admin must run after Required.
	Employer gin.HandlerFunc
	Admin    gin.HandlerFunc
}

func NewGuards(tokens middleware.TokenValidator) Guards {
	return Guards{
		Optional: middleware.OptionalAuthMiddleware(tokens),
		Required: middleware.AuthMiddleware(tokens),
		Employer: middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin),
		Admin:    middleware.RequireRoles(models.UserRoleAdmin),
	}
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator, pinger Pinger) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		JobHandler:      NewJobHandler(base, container.JobService),
		BookmarkHandler: NewBookmarkHandler(base, container.BookmarkService),
		CompanyHandler:  NewCompanyHandler(base, container.CompanyService),
		UserHandler:     NewUserHandler(base, container.UserService),
		HealthHandler:   NewHealthHandler(pinger),
	}
}
