package jobquery

import (
	"strings"

	"jobboard_backend/internal/models"
)

// Columns of the search relation. Company columns come from a LEFT JOIN.
var (
	ColID              = Col("job_postings.id")
	ColTitle           = Col("job_postings.title")
	ColDescription     = Col("job_postings.description")
	ColSkillsText      = Col("job_postings.skills_text")
	ColLocation        = Col("job_postings.location")
	ColJobType         = Col("job_postings.job_type")
	ColExperienceLevel = Col("job_postings.experience_level")
	ColSalaryMin       = Col("job_postings.salary_min")
	ColSalaryMax       = Col("job_postings.salary_max")
	ColCompanyID       = Col("job_postings.company_id")
	ColIsRemote        = Col("job_postings.is_remote")
	ColPostedBy        = Col("job_postings.posted_by")
	ColIsActive        = Col("job_postings.is_active")
	ColIsApproved      = Col("job_postings.is_approved")
	ColViewCount       = Col("job_postings.view_count")
	ColCreatedAt       = Col("job_postings.created_at")
	ColCompanyName     = Col("companies.name")
)

// CompanyJoin is the join every search query must carry for ColCompanyName.
const CompanyJoin = "LEFT JOIN companies ON companies.id = job_postings.company_id"

// Baseline holds visibility rules applied to every search regardless of filters.
type Baseline struct {
	RequireApproval bool
}

// Visible is the predicate selecting publicly searchable postings.
func (b Baseline) Visible() Predicate {
	if b.RequireApproval {
		return And(Eq(ColIsActive, true), Eq(ColIsApproved, true))
	}
	return Eq(ColIsActive, true)
}

// Query is everything a repository needs to run the count and page queries.
type Query struct {
	Where  Predicate
	Order  []OrderTerm
	Window Window
}

// Build combines the baseline, the filters and any extra predicates into
// a single Query. Count and page fetch must both use Query.Where.
func Build(f Filters, s Sort, w Window, base Baseline, extra ...Predicate) Query {
	terms := []Predicate{base.Visible(), filterPredicate(f)}
	terms = append(terms, extra...)
	return Query{
		Where:  And(terms...),
		Order:  s.Terms(),
		Window: w,
	}
}

func filterPredicate(f Filters) Predicate {
	var terms []Predicate
	if f.Search != "" {
		fields := []Predicate{
			ContainsFold(ColTitle, f.Search),
			ContainsFold(ColDescription, f.Search),
			ContainsFold(ColCompanyName, f.Search),
		}
		// A term spanning the separator would match across two tags.
		if !strings.Contains(f.Search, models.SkillSeparator) {
			fields = append(fields, ContainsFold(ColSkillsText, f.Search))
		}
		terms = append(terms, Or(fields...))
	}
	if f.Location != "" {
		terms = append(terms, ContainsFold(ColLocation, f.Location))
	}
	if f.JobType != "" {
		terms = append(terms, Eq(ColJobType, string(f.JobType)))
	}
	if f.ExperienceLevel != "" {
		terms = append(terms, Eq(ColExperienceLevel, string(f.ExperienceLevel)))
	}
	// A posting can pay at least X when its upper bound (or, lacking one,
	// its lower bound) reaches X. Symmetrically for the maximum.
	if f.SalaryMin != nil {
		terms = append(terms, Gte(Coalesce(ColSalaryMax, ColSalaryMin), *f.SalaryMin))
	}
	if f.SalaryMax != nil {
		terms = append(terms, Lte(Coalesce(ColSalaryMin, ColSalaryMax), *f.SalaryMax))
	}
	if f.CompanyID != "" {
		terms = append(terms, Eq(ColCompanyID, f.CompanyID))
	}
	if f.IsRemote != nil {
		terms = append(terms, Eq(ColIsRemote, *f.IsRemote))
	}
	if f.PostedBy != "" {
		terms = append(terms, Eq(ColPostedBy, f.PostedBy))
	}
	return And(terms...)
}

// SavedBy restricts results to postings bookmarked by userID.
func SavedBy(userID string) Predicate {
	return Raw("EXISTS (SELECT 1 FROM bookmarks WHERE bookmarks.job_id = job_postings.id AND bookmarks.user_id = ?)", userID)
}

// Matches evaluates the filters against a loaded posting in memory. It
// mirrors filterPredicate and is used to check store results.
func (f Filters) Matches(job *models.JobPosting) bool {
	if f.Search != "" {
		hit := containsFoldGo(job.Title, f.Search) || containsFoldGo(job.Description, f.Search)
		for _, tag := range models.SkillTags(job.Skills) {
			hit = hit || containsFoldGo(tag, f.Search)
		}
		if job.Company != nil {
			hit = hit || containsFoldGo(job.Company.Name, f.Search)
		}
		if !hit {
			return false
		}
	}
	if f.Location != "" && !containsFoldGo(job.Location, f.Location) {
		return false
	}
	if f.JobType != "" && job.JobType != f.JobType {
		return false
	}
	if f.ExperienceLevel != "" && job.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	if f.SalaryMin != nil {
		upper := firstSet(job.SalaryMax, job.SalaryMin)
		if upper == nil || *upper < *f.SalaryMin {
			return false
		}
	}
	if f.SalaryMax != nil {
		lower := firstSet(job.SalaryMin, job.SalaryMax)
		if lower == nil || *lower > *f.SalaryMax {
			return false
		}
	}
	if f.CompanyID != "" && (job.CompanyID == nil || *job.CompanyID != f.CompanyID) {
		return false
	}
	if f.IsRemote != nil && job.IsRemote != *f.IsRemote {
		return false
	}
	if f.PostedBy != "" && job.PostedBy != f.PostedBy {
		return false
	}
	return true
}

func firstSet(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
