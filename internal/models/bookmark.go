package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark marks a job posting as saved by a user.
type Bookmark struct {
	ID        string      `gorm:"type:uuid;primaryKey"`
	UserID    string      `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_job"`
	JobID     string      `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_job;index"`
	Job       *JobPosting `gorm:"foreignKey:JobID"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
