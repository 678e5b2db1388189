package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookmarkRepository interface {
	CreateBookmark(db *gorm.DB, userID, jobID string) error
	DeleteBookmark(db *gorm.DB, userID, jobID string) error
	// FindSavedJobIDs returns the subset of jobIDs that userID has saved.
	FindSavedJobIDs(db *gorm.DB, userID string, jobIDs []string) (map[string]bool, error)
}

type BookmarkRepositoryImpl struct{}

func NewBookmarkRepository() BookmarkRepository {
	return &BookmarkRepositoryImpl{}
}

// CreateBookmark is idempotent: an existing (user, job) pair is kept as is.
func (r *BookmarkRepositoryImpl) CreateBookmark(db *gorm.DB, userID, jobID string) error {
	bookmark := &models.Bookmark{UserID: userID, JobID: jobID}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoNothing: true,
	}).Create(bookmark).Error
}

func (r *BookmarkRepositoryImpl) DeleteBookmark(db *gorm.DB, userID, jobID string) error {
	return db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.Bookmark{}).Error
}

func (r *BookmarkRepositoryImpl) FindSavedJobIDs(db *gorm.DB, userID string, jobIDs []string) (map[string]bool, error) {
	saved := make(map[string]bool, len(jobIDs))
	if len(jobIDs) == 0 {
		return saved, nil
	}
	var ids []string
	err := db.Model(&models.Bookmark{}).
		Where("user_id = ? AND job_id IN ?", userID, jobIDs).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		saved[id] = true
	}
	return saved, nil
}
