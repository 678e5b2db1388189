package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Website     string `json:"website" validate:"omitempty,url,max=255"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
	Size        string `json:"size" validate:"omitempty,max=50"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url,max=500"`
}

type SetVerificationRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Size        string    `json:"size,omitempty"`
	Location    string    `json:"location,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	OwnerID     string    `json:"owner_id"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Industry:    c.Industry,
		Size:        c.Size,
		Location:    c.Location,
		LogoURL:     c.LogoURL,
		OwnerID:     c.OwnerID,
		IsVerified:  c.IsVerified,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
