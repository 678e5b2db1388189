package services

import (
	"context"
	"strings"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// JobSettings are the tunables of job search and publishing.
type JobSettings struct {
	RequireApproval bool
	Limits          jobquery.Limits
}

type JobService interface {
	SearchJobs(ctx context.Context, db *gorm.DB, req jobquery.Request, viewer *auth.Identity) (*dto.JobPage, error)
	GetJob(ctx context.Context, db *gorm.DB, id string, viewer *auth.Identity) (*dto.JobRecord, error)
	RecordView(ctx context.Context, db *gorm.DB, id string) error
	CreateJob(ctx context.Context, db *gorm.DB, req *dto.CreateJobRequest, poster auth.Identity) (*dto.JobRecord, error)
	UpdateJob(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateJobRequest, actor auth.Identity) (*dto.JobRecord, error)
	DeleteJob(ctx context.Context, db *gorm.DB, id string, actor auth.Identity) error
	SetApproval(ctx context.Context, db *gorm.DB, id string, approved bool, actor auth.Identity) (*dto.JobRecord, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	companyRepo  repositories.CompanyRepository
	bookmarkRepo repositories.BookmarkRepository
	validator    *validator.Validator
	settings     JobSettings
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	bookmarkRepo repositories.BookmarkRepository,
	v *validator.Validator,
	settings JobSettings,
) JobService {
	if settings.Limits.Default <= 0 || settings.Limits.Max <= 0 {
		settings.Limits = jobquery.DefaultLimits
	}
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		companyRepo:  companyRepo,
		bookmarkRepo: bookmarkRepo,
		validator:    v,
		settings:     settings,
	}
}

func (s *JobServiceImpl) baseline() jobquery.Baseline {
	return jobquery.Baseline{RequireApproval: s.settings.RequireApproval}
}

// searchable reports whether job belongs to the publicly searchable set.
func (s *JobServiceImpl) searchable(job *models.JobPosting) bool {
	return job.IsActive && (job.IsApproved || !s.settings.RequireApproval)
}

// --- Search ---

func (s *JobServiceImpl) SearchJobs(ctx context.Context, db *gorm.DB, req jobquery.Request, viewer *auth.Identity) (*dto.JobPage, error) {
	start := time.Now()

	window, err := req.Resolve(s.settings.Limits)
	if err != nil {
		metrics.SearchFailed(string(apperrors.CodeInvalidFilter))
		return nil, err
	}

	q := jobquery.Build(req.Filters, req.Sort, window, s.baseline())
	jobs, total, err := s.jobRepo.SearchJobs(db.WithContext(ctx), q)
	if err != nil {
		metrics.SearchFailed(string(apperrors.CodeStoreUnavailable))
		return nil, storeError(ctx, "search jobs", err)
	}

	page, err := s.buildPage(ctx, db, jobs, total, window, viewer)
	if err != nil {
		return nil, err
	}

	metrics.ObserveSearch(string(req.Sort), total, time.Since(start))
	logger.CtxDebug(ctx, "job search", "total", total, "returned", len(page.Jobs), "sort", req.Sort)
	return page, nil
}

func (s *JobServiceImpl) buildPage(ctx context.Context, db *gorm.DB, jobs []models.JobPosting, total int64, window jobquery.Window, viewer *auth.Identity) (*dto.JobPage, error) {
	records := make([]*dto.JobRecord, len(jobs))
	for i := range jobs {
		records[i] = dto.NewJobRecord(&jobs[i])
	}
	if err := s.annotateSaved(ctx, db, records, viewer); err != nil {
		return nil, err
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

// annotateSaved fills IsSaved with one lookup for the whole page.
func (s *JobServiceImpl) annotateSaved(ctx context.Context, db *gorm.DB, records []*dto.JobRecord, viewer *auth.Identity) error {
	if viewer == nil {
		return nil
	}
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	saved, err := s.bookmarkRepo.FindSavedJobIDs(db.WithContext(ctx), viewer.UserID, ids)
	if err != nil {
		return storeError(ctx, "find saved jobs", err)
	}
	for _, r := range records {
		isSaved := saved[r.ID]
		r.IsSaved = &isSaved
	}
	return nil
}

// --- Read ---

func (s *JobServiceImpl) GetJob(ctx context.Context, db *gorm.DB, id string, viewer *auth.Identity) (*dto.JobRecord, error) {
	if !models.IsUUID(id) {
		return nil, errJobNotFound()
	}
	job, err := s.jobRepo.FindJobByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, storeError(ctx, "find job", err)
	}
	// Hidden postings stay visible to whoever may manage them.
	if !s.searchable(job) && (viewer == nil || !viewer.CanManageJob(job)) {
		return nil, errJobNotFound()
	}

	record := dto.NewJobRecord(job)
	if err := s.annotateSaved(ctx, db, []*dto.JobRecord{record}, viewer); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *JobServiceImpl) RecordView(ctx context.Context, db *gorm.DB, id string) error {
	if !models.IsUUID(id) {
		return errJobNotFound()
	}
	if err := s.jobRepo.IncrementViews(db.WithContext(ctx), id); err != nil {
		return storeError(ctx, "record view", err)
	}
	metrics.ViewRecorded()
	return nil
}

// --- Write ---

func (s *JobServiceImpl) CreateJob(ctx context.Context, db *gorm.DB, req *dto.CreateJobRequest, poster auth.Identity) (*dto.JobRecord, error) {
	if !poster.Role.CanPostJobs() {
		return nil, apperrors.ErrForbidden("job", "Only employers can post jobs")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	db = db.WithContext(ctx)
	if req.CompanyID != nil {
		if err := s.checkCompany(ctx, db, *req.CompanyID, poster); err != nil {
			return nil, err
		}
	}

	job := &models.JobPosting{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     models.StringList(req.Requirements),
		Responsibilities: models.StringList(req.Responsibilities),
		Skills:           models.StringList(req.Skills),
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryCurrency:   strings.ToUpper(req.SalaryCurrency),
		SalaryPeriod:     req.SalaryPeriod,
		JobType:          req.JobType,
		ExperienceLevel:  req.ExperienceLevel,
		Location:         strings.TrimSpace(req.Location),
		IsRemote:         req.IsRemote,
		CompanyID:        req.CompanyID,
		PostedBy:         poster.UserID,
		IsActive:         true,
		IsApproved:       !s.settings.RequireApproval,
	}
	if err := s.jobRepo.CreateJob(db, job); err != nil {
		return nil, storeError(ctx, "create job", err)
	}

	logger.CtxInfo(ctx, "job posted", "job_id", job.ID, "approved", job.IsApproved)
	return s.reload(ctx, db, job.ID)
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateJobRequest, actor auth.Identity) (*dto.JobRecord, error) {
	db = db.WithContext(ctx)
	job, err := s.loadManaged(ctx, db, id, actor)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperrors.ValidationError(map[string]string{"title": "This field is required"})
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return nil, apperrors.ValidationError(map[string]string{"description": "This field is required"})
	}
	if req.CompanyID != nil && (job.CompanyID == nil || *job.CompanyID != *req.CompanyID) {
		if err := s.checkCompany(ctx, db, *req.CompanyID, actor); err != nil {
			return nil, err
		}
	}

	mergeJobUpdate(job, req)
	if err := checkSalaryRange(job.SalaryMin, job.SalaryMax); err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateJob(db, job); err != nil {
		return nil, storeError(ctx, "update job", err)
	}
	logger.CtxInfo(ctx, "job updated", "job_id", job.ID)
	return s.reload(ctx, db, job.ID)
}

func (s *JobServiceImpl) DeleteJob(ctx context.Context, db *gorm.DB, id string, actor auth.Identity) error {
	db = db.WithContext(ctx)
	job, err := s.loadManaged(ctx, db, id, actor)
	if err != nil {
		return err
	}
	if err := s.jobRepo.UpdateJobColumns(db, job.ID, map[string]interface{}{"is_active": false}); err != nil {
		return storeError(ctx, "deactivate job", err)
	}
	logger.CtxInfo(ctx, "job deactivated", "job_id", job.ID)
	return nil
}

func (s *JobServiceImpl) SetApproval(ctx context.Context, db *gorm.DB, id string, approved bool, actor auth.Identity) (*dto.JobRecord, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden("job", "Only administrators can approve postings")
	}
	if !models.IsUUID(id) {
		return nil, errJobNotFound()
	}
	db = db.WithContext(ctx)
	if err := s.jobRepo.UpdateJobColumns(db, id, map[string]interface{}{"is_approved": approved}); err != nil {
		return nil, storeError(ctx, "set approval", err)
	}
	logger.CtxInfo(ctx, "job approval changed", "job_id", id, "approved", approved)
	return s.reload(ctx, db, id)
}

// loadManaged fetches a posting and checks that actor may change it.
// Authorization happens before any write.
func (s *JobServiceImpl) loadManaged(ctx context.Context, db *gorm.DB, id string, actor auth.Identity) (*models.JobPosting, error) {
	if !models.IsUUID(id) {
		return nil, errJobNotFound()
	}
	job, err := s.jobRepo.FindJobByID(db, id)
	if err != nil {
		return nil, storeError(ctx, "find job", err)
	}
	if !actor.CanManageJob(job) {
		return nil, apperrors.ErrForbidden("job", "Only the poster or an administrator can modify this posting")
	}
	return job, nil
}

func (s *JobServiceImpl) checkCompany(ctx context.Context, db *gorm.DB, companyID string, actor auth.Identity) error {
	company, err := s.companyRepo.FindCompanyByID(db, companyID)
	if err != nil {
		return storeError(ctx, "find company", err)
	}
	if !actor.CanUseCompany(company) {
		return apperrors.ErrForbidden("company", "Company belongs to another employer")
	}
	return nil
}

func (s *JobServiceImpl) reload(ctx context.Context, db *gorm.DB, id string) (*dto.JobRecord, error) {
	job, err := s.jobRepo.FindJobByID(db, id)
	if err != nil {
		return nil, storeError(ctx, "reload job", err)
	}
	return dto.NewJobRecord(job), nil
}

func mergeJobUpdate(job *models.JobPosting, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = strings.TrimSpace(*req.Description)
	}
	if req.Requirements != nil {
		job.Requirements = models.StringList(*req.Requirements)
	}
	if req.Responsibilities != nil {
		job.Responsibilities = models.StringList(*req.Responsibilities)
	}
	if req.Skills != nil {
		job.Skills = models.StringList(*req.Skills)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		job.SalaryCurrency = strings.ToUpper(*req.SalaryCurrency)
	}
	if req.SalaryPeriod != nil {
		job.SalaryPeriod = *req.SalaryPeriod
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Location != nil {
		job.Location = strings.TrimSpace(*req.Location)
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}
	if req.CompanyID != nil {
		job.CompanyID = req.CompanyID
		job.Company = nil
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
}

func checkSalaryRange(lo, hi *float64) error {
	if lo != nil && hi != nil && *hi < *lo {
		return apperrors.ValidationError(map[string]string{
			"salary_max": "Must be greater than or equal to salary_min",
		})
	}
	return nil
}
