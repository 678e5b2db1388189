package services

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"gorm.io/gorm"
)

type BookmarkService interface {
	SaveJob(ctx context.Context, db *gorm.DB, jobID string, identity auth.Identity) error
	RemoveJob(ctx context.Context, db *gorm.DB, jobID string, identity auth.Identity) error
	ListSaved(ctx context.Context, db *gorm.DB, req jobquery.Request, identity auth.Identity) (*dto.JobPage, error)
}

type BookmarkServiceImpl struct {
	jobRepo      repositories.JobRepository
	bookmarkRepo repositories.BookmarkRepository
	settings     JobSettings
}

func NewBookmarkService(jobRepo repositories.JobRepository, bookmarkRepo repositories.BookmarkRepository, settings JobSettings) BookmarkService {
	if settings.Limits.Default <= 0 || settings.Limits.Max <= 0 {
		settings.Limits = jobquery.DefaultLimits
	}
	return &BookmarkServiceImpl{jobRepo: jobRepo, bookmarkRepo: bookmarkRepo, settings: settings}
}

// SaveJob bookmarks a searchable posting. Saving twice keeps one bookmark.
func (s *BookmarkServiceImpl) SaveJob(ctx context.Context, db *gorm.DB, jobID string, identity auth.Identity) error {
	if !models.IsUUID(jobID) {
		return errJobNotFound()
	}
	db = db.WithContext(ctx)
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return storeError(ctx, "find job", err)
	}
	if !job.IsActive || (s.settings.RequireApproval && !job.IsApproved) {
		return errJobNotFound()
	}
	if err := s.bookmarkRepo.CreateBookmark(db, identity.UserID, jobID); err != nil {
		return storeError(ctx, "save bookmark", err)
	}
	return nil
}

// RemoveJob deletes the bookmark if there is one.
func (s *BookmarkServiceImpl) RemoveJob(ctx context.Context, db *gorm.DB, jobID string, identity auth.Identity) error {
	if !models.IsUUID(jobID) {
		return nil
	}
	if err := s.bookmarkRepo.DeleteBookmark(db.WithContext(ctx), identity.UserID, jobID); err != nil {
		return storeError(ctx, "remove bookmark", err)
	}
	return nil
}

// ListSaved pages through the identity's bookmarks that are still searchable.
// Search filters and sort apply as in a regular search.
func (s *BookmarkServiceImpl) ListSaved(ctx context.Context, db *gorm.DB, req jobquery.Request, identity auth.Identity) (*dto.JobPage, error) {
	window, err := req.Resolve(s.settings.Limits)
	if err != nil {
		return nil, err
	}
	q := jobquery.Build(req.Filters, req.Sort, window,
		jobquery.Baseline{RequireApproval: s.settings.RequireApproval},
		jobquery.SavedBy(identity.UserID))

	jobs, total, err := s.jobRepo.SearchJobs(db.WithContext(ctx), q)
	if err != nil {
		return nil, storeError(ctx, "list saved jobs", err)
	}

	records := make([]*dto.JobRecord, len(jobs))
	for i := range jobs {
		records[i] = dto.NewJobRecord(&jobs[i])
		saved := true
		records[i].IsSaved = &saved
	}
	return &dto.JobPage{
		Jobs:   records,
		Total:  total,
		Limit:  window.Limit,
		Offset: window.Offset,
		Page:   window.Page,
		Pages:  window.Pages(total),
	}, nil
}
