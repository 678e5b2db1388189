package services

import (
	"context"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, db *gorm.DB, req *dto.CreateCompanyRequest, owner auth.Identity) (*dto.CompanyResponse, error)
	GetCompany(ctx context.Context, db *gorm.DB, id string) (*dto.CompanyResponse, error)
	ListMyCompanies(ctx context.Context, db *gorm.DB, owner auth.Identity) ([]*dto.CompanyResponse, error)
	SetVerified(ctx context.Context, db *gorm.DB, id string, verified bool, actor auth.Identity) (*dto.CompanyResponse, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	validator   *validator.Validator
}

func NewCompanyService(companyRepo repositories.CompanyRepository, v *validator.Validator) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo, validator: v}
}

func (s *CompanyServiceImpl) CreateCompany(ctx context.Context, db *gorm.DB, req *dto.CreateCompanyRequest, owner auth.Identity) (*dto.CompanyResponse, error) {
	if !owner.Role.CanPostJobs() {
		return nil, apperrors.ErrForbidden("company", "Only employers can register companies")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
		OwnerID:     owner.UserID,
	}
	if err := s.companyRepo.CreateCompany(db.WithContext(ctx), company); err != nil {
		return nil, storeError(ctx, "create company", err)
	}
	logger.CtxInfo(ctx, "company created", "company_id", company.ID)
	return dto.NewCompanyResponse(company), nil
}

func (s *CompanyServiceImpl) GetCompany(ctx context.Context, db *gorm.DB, id string) (*dto.CompanyResponse, error) {
	if !models.IsUUID(id) {
		return nil, errCompanyNotFound()
	}
	company, err := s.companyRepo.FindCompanyByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, storeError(ctx, "find company", err)
	}
	return dto.NewCompanyResponse(company), nil
}

func (s *CompanyServiceImpl) ListMyCompanies(ctx context.Context, db *gorm.DB, owner auth.Identity) ([]*dto.CompanyResponse, error) {
	companies, err := s.companyRepo.FindCompaniesByOwner(db.WithContext(ctx), owner.UserID)
	if err != nil {
		return nil, storeError(ctx, "list companies", err)
	}
	out := make([]*dto.CompanyResponse, len(companies))
	for i := range companies {
		out[i] = dto.NewCompanyResponse(&companies[i])
	}
	return out, nil
}

func (s *CompanyServiceImpl) SetVerified(ctx context.Context, db *gorm.DB, id string, verified bool, actor auth.Identity) (*dto.CompanyResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden("company", "Only administrators can verify companies")
	}
	if !models.IsUUID(id) {
		return nil, errCompanyNotFound()
	}
	db = db.WithContext(ctx)
	if err := s.companyRepo.UpdateCompanyVerification(db, id, verified); err != nil {
		return nil, storeError(ctx, "verify company", err)
	}
	return s.GetCompany(ctx, db, id)
}
