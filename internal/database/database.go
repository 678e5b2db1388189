package database

import (
	"fmt"
	"strings"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL and applies the pool settings from cfg.
func Open(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Server.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), GormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// GormConfig is shared by the production and the test dialects.
// Foreign keys are not created: users are mirrored from an external
// identity provider and may be absent when a posting references them.
// Driver errors are translated so unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig(level gormlogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(level),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.Bookmark{},
	); err != nil {
		return err
	}
	return backfillSkillsText(db)
}

// backfillSkillsText fills skills_text for rows written before the column existed.
func backfillSkillsText(db *gorm.DB) error {
	var jobs []models.JobPosting
	return db.Select("id", "skills").
		Where("skills_text = ''").
		FindInBatches(&jobs, 200, func(_ *gorm.DB, _ int) error {
			for _, job := range jobs {
				text := strings.Join(models.SkillTags(job.Skills), models.SkillSeparator)
				if text == "" {
					continue
				}
				if err := db.Model(&models.JobPosting{}).Where("id = ?", job.ID).
					UpdateColumn("skills_text", text).Error; err != nil {
					return err
				}
			}
			return nil
		}).Error
}
