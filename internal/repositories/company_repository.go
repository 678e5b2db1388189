package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	CreateCompany(db *gorm.DB, company *models.Company) error
	FindCompanyByID(db *gorm.DB, id string) (*models.Company, error)
	FindCompaniesByOwner(db *gorm.DB, ownerID string) ([]models.Company, error)
	UpdateCompanyVerification(db *gorm.DB, id string, verified bool) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) CreateCompany(db *gorm.DB, company *models.Company) error {
	return db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindCompanyByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindCompaniesByOwner(db *gorm.DB, ownerID string) ([]models.Company, error) {
	companies := []models.Company{}
	err := db.Where("owner_id = ?", ownerID).Order("created_at DESC, id ASC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) UpdateCompanyVerification(db *gorm.DB, id string, verified bool) error {
	result := db.Model(&models.Company{}).Where("id = ?", id).Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
