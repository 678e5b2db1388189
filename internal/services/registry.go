package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	JobService      JobService
	CompanyService  CompanyService
	BookmarkService BookmarkService
	UserService     UserService
}

// NewServiceContainer wires every service to its repositories.
func NewServiceContainer(v *validator.Validator, settings JobSettings) *ServiceContainer {
	jobRepo := repositories.NewJobRepository()
	companyRepo := repositories.NewCompanyRepository()
	bookmarkRepo := repositories.NewBookmarkRepository()
	userRepo := repositories.NewUserRepository()

	return &ServiceContainer{
		JobService:      NewJobService(jobRepo, companyRepo, bookmarkRepo, v, settings),
		CompanyService:  NewCompanyService(companyRepo, v),
		BookmarkService: NewBookmarkService(jobRepo, bookmarkRepo, settings),
		UserService:     NewUserService(userRepo, v),
	}
}
