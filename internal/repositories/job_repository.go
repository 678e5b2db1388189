package repositories

import (
	"errors"

	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository interface {
	CreateJob(db *gorm.DB, job *models.JobPosting) error
	FindJobByID(db *gorm.DB, id string) (*models.JobPosting, error)
	UpdateJob(db *gorm.DB, job *models.JobPosting) error
	UpdateJobColumns(db *gorm.DB, id string, values map[string]interface{}) error
	IncrementViews(db *gorm.DB, id string) error
	SearchJobs(db *gorm.DB, q jobquery.Query) ([]models.JobPosting, int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) CreateJob(db *gorm.DB, job *models.JobPosting) error {
	return db.Omit(clause.Associations).Create(job).Error
}

func (r *JobRepositoryImpl) FindJobByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := db.Preload("Company").Preload("Poster").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateJob writes every column of job, zero values included.
// Preloaded associations are left alone.
func (r *JobRepositoryImpl) UpdateJob(db *gorm.DB, job *models.JobPosting) error {
	result := db.Model(job).Select("*").Omit(clause.Associations).Updates(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateJobColumns(db *gorm.DB, id string, values map[string]interface{}) error {
	result := db.Model(&models.JobPosting{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// IncrementViews bumps view_count in the store so concurrent calls never lose an update.
func (r *JobRepositoryImpl) IncrementViews(db *gorm.DB, id string) error {
	result := db.Model(&models.JobPosting{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// SearchJobs runs the count and the page fetch over the same WHERE clause.
func (r *JobRepositoryImpl) SearchJobs(db *gorm.DB, q jobquery.Query) ([]models.JobPosting, int64, error) {
	where, args := jobquery.Render(q.Where)
	scoped := func() *gorm.DB {
		tx := db.Model(&models.JobPosting{}).Joins(jobquery.CompanyJoin)
		if where != "" {
			tx = tx.Where(where, args...)
		}
		return tx
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	jobs := []models.JobPosting{}
	if !q.Window.Selects(total) {
		return jobs, total, nil
	}

	err := scoped().
		Select("job_postings.*").
		Preload("Company").
		Preload("Poster").
		Order(jobquery.RenderOrder(q.Order)).
		Limit(q.Window.Limit).
		Offset(q.Window.Offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
