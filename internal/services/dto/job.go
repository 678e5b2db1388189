package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// --- Job Requests ---

type CreateJobRequest struct {
	Title            string                 `json:"title" validate:"required,max=200"`
	Description      string                 `json:"description" validate:"required,max=20000"`
	Requirements     []string               `json:"requirements" validate:"omitempty,max=50,dive,required,max=500"`
	Responsibilities []string               `json:"responsibilities" validate:"omitempty,max=50,dive,required,max=500"`
	Skills           []string               `json:"skills" validate:"omitempty,max=50,dive,required,max=100"`
	SalaryMin        *float64               `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax        *float64               `json:"salary_max" validate:"omitempty,min=0"`
	SalaryCurrency   string                 `json:"salary_currency" validate:"omitempty,len=3"`
	SalaryPeriod     models.SalaryPeriod    `json:"salary_period" validate:"omitempty,is-salary-period"`
	JobType          models.JobType         `json:"job_type" validate:"required,is-job-type"`
	ExperienceLevel  models.ExperienceLevel `json:"experience_level" validate:"required,is-experience-level"`
	Location         string                 `json:"location" validate:"omitempty,max=200"`
	IsRemote         bool                   `json:"is_remote"`
	CompanyID        *string                `json:"company_id" validate:"omitempty,uuid"`
}

// UpdateJobRequest is a partial update: nil fields keep the stored value.
type UpdateJobRequest struct {
	Title            *string                 `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description      *string                 `json:"description,omitempty" validate:"omitempty,min=1,max=20000"`
	Requirements     *[]string               `json:"requirements,omitempty" validate:"omitempty,max=50,dive,required,max=500"`
	Responsibilities *[]string               `json:"responsibilities,omitempty" validate:"omitempty,max=50,dive,required,max=500"`
	Skills           *[]string               `json:"skills,omitempty" validate:"omitempty,max=50,dive,required,max=100"`
	SalaryMin        *float64                `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax        *float64                `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SalaryCurrency   *string                 `json:"salary_currency,omitempty" validate:"omitempty,len=3"`
	SalaryPeriod     *models.SalaryPeriod    `json:"salary_period,omitempty" validate:"omitempty,is-salary-period"`
	JobType          *models.JobType         `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	ExperienceLevel  *models.ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,is-experience-level"`
	Location         *string                 `json:"location,omitempty" validate:"omitempty,max=200"`
	IsRemote         *bool                   `json:"is_remote,omitempty"`
	CompanyID        *string                 `json:"company_id,omitempty" validate:"omitempty,uuid"`
	IsActive         *bool                   `json:"is_active,omitempty"`
}

type SetApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// --- Job Responses ---

type CompanySummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

type PosterSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobRecord is a posting denormalized with its company and poster.
type JobRecord struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Requirements     []string               `json:"requirements"`
	Responsibilities []string               `json:"responsibilities"`
	Skills           []string               `json:"skills"`
	SalaryMin        *float64               `json:"salary_min"`
	SalaryMax        *float64               `json:"salary_max"`
	SalaryCurrency   string                 `json:"salary_currency,omitempty"`
	SalaryPeriod     models.SalaryPeriod    `json:"salary_period,omitempty"`
	JobType          models.JobType         `json:"job_type"`
	ExperienceLevel  models.ExperienceLevel `json:"experience_level"`
	Location         string                 `json:"location"`
	IsRemote         bool                   `json:"is_remote"`
	CompanyID        *string                `json:"company_id"`
	Company          *CompanySummary        `json:"company,omitempty"`
	PostedBy         string                 `json:"posted_by"`
	Poster           *PosterSummary         `json:"poster,omitempty"`
	IsActive         bool                   `json:"is_active"`
	IsApproved       bool                   `json:"is_approved"`
	ViewCount        int64                  `json:"view_count"`
	ApplicantCount   int64                  `json:"applicant_count"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	// IsSaved is set only when the request is authenticated.
	IsSaved *bool `json:"is_saved,omitempty"`
}

type JobPage struct {
	Jobs   []*JobRecord `json:"jobs"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Page   int          `json:"page"`
	Pages  int          `json:"pages"`
}

func NewJobRecord(job *models.JobPosting) *JobRecord {
	record := &JobRecord{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     models.DecodeStringList(job.Requirements),
		Responsibilities: models.DecodeStringList(job.Responsibilities),
		Skills:           models.DecodeStringList(job.Skills),
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		SalaryCurrency:   job.SalaryCurrency,
		SalaryPeriod:     job.SalaryPeriod,
		JobType:          job.JobType,
		ExperienceLevel:  job.ExperienceLevel,
		Location:         job.Location,
		IsRemote:         job.IsRemote,
		CompanyID:        job.CompanyID,
		PostedBy:         job.PostedBy,
		IsActive:         job.IsActive,
		IsApproved:       job.IsApproved,
		ViewCount:        job.ViewCount,
		ApplicantCount:   job.ApplicantCount,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
	if job.Company != nil {
		record.Company = &CompanySummary{
			ID:         job.Company.ID,
			Name:       job.Company.Name,
			Location:   job.Company.Location,
			LogoURL:    job.Company.LogoURL,
			IsVerified: job.Company.IsVerified,
		}
	}
	if job.Poster != nil {
		record.Poster = &PosterSummary{ID: job.Poster.ID, Name: job.Poster.FullName()}
	}
	return record
}
