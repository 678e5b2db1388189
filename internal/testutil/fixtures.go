package testutil

import (
	"fmt"
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	id := uuid.NewString()
	user := &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("%s@example.com", id[:8]),
		FirstName: "Test",
		LastName:  string(role),
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCompany(t *testing.T, db *gorm.DB, ownerID, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, OwnerID: ownerID, Location: "Berlin"}
	require.NoError(t, db.Create(company).Error)
	return company
}

type JobOption func(*models.JobPosting)

func WithTitle(title string) JobOption {
	return func(j *models.JobPosting) { j.Title = title }
}

func WithDescription(desc string) JobOption {
	return func(j *models.JobPosting) { j.Description = desc }
}

func WithSalary(min, max *float64) JobOption {
	return func(j *models.JobPosting) { j.SalaryMin, j.SalaryMax = min, max }
}

func WithJobType(t models.JobType) JobOption {
	return func(j *models.JobPosting) { j.JobType = t }
}

func WithLevel(l models.ExperienceLevel) JobOption {
	return func(j *models.JobPosting) { j.ExperienceLevel = l }
}

func WithLocation(loc string) JobOption {
	return func(j *models.JobPosting) { j.Location = loc }
}

func WithSkills(skills ...string) JobOption {
	return func(j *models.JobPosting) { j.Skills = models.StringList(skills) }
}

func WithCompany(companyID string) JobOption {
	return func(j *models.JobPosting) { j.CompanyID = &companyID }
}

func WithRemote() JobOption {
	return func(j *models.JobPosting) { j.IsRemote = true }
}

func WithViews(n int64) JobOption {
	return func(j *models.JobPosting) { j.ViewCount = n }
}

func WithCreatedAt(ts time.Time) JobOption {
	return func(j *models.JobPosting) { j.CreatedAt = ts; j.UpdatedAt = ts }
}

func Inactive() JobOption {
	return func(j *models.JobPosting) { j.IsActive = false }
}

func Unapproved() JobOption {
	return func(j *models.JobPosting) { j.IsApproved = false }
}

// CreateJob stores an active, approved full-time posting adjusted by opts.
func CreateJob(t *testing.T, db *gorm.DB, posterID string, opts ...JobOption) *models.JobPosting {
	t.Helper()
	job := &models.JobPosting{
		Title:            "Software Engineer",
		Description:      "Write and review code",
		Requirements:     models.StringList(nil),
		Responsibilities: models.StringList(nil),
		Skills:           models.StringList(nil),
		JobType:          models.JobTypeFullTime,
		ExperienceLevel:  models.ExperienceMid,
		PostedBy:         posterID,
		IsActive:         true,
		IsApproved:       true,
	}
	for _, opt := range opts {
		opt(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func Float(v float64) *float64 { return &v }
