package jobquery

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
)

const maxSearchLength = 200

// Filters is the closed set of search constraints. Zero values impose no constraint.
type Filters struct {
	Search          string
	Location        string
	JobType         models.JobType
	ExperienceLevel models.ExperienceLevel
	SalaryMin       *float64
	SalaryMax       *float64
	CompanyID       string
	IsRemote        *bool
	PostedBy        string
}

// Request is a parsed search call: filters plus ordering and the page window.
type Request struct {
	Filters Filters
	Sort    Sort
	Limit   *int
	Offset  *int
	Page    *int
}

// Query keys accepted by ParseValues.
const (
	KeySearch          = "search"
	KeyLocation        = "location"
	KeyJobType         = "job_type"
	KeyExperienceLevel = "experience_level"
	KeySalaryMin       = "salary_min"
	KeySalaryMax       = "salary_max"
	KeyCompanyID       = "company_id"
	KeyIsRemote        = "is_remote"
	KeyPostedBy        = "posted_by"
	KeySort            = "sort"
	KeyLimit           = "limit"
	KeyOffset          = "offset"
	KeyPage            = "page"
)

var knownKeys = map[string]struct{}{
	KeySearch: {}, KeyLocation: {}, KeyJobType: {}, KeyExperienceLevel: {},
	KeySalaryMin: {}, KeySalaryMax: {}, KeyCompanyID: {}, KeyIsRemote: {},
	KeyPostedBy: {}, KeySort: {}, KeyLimit: {}, KeyOffset: {}, KeyPage: {},
}

// ParseValues converts URL query values into a Request. Unknown keys,
// repeated keys and malformed values fail with an INVALID_FILTER error.
// Empty values are treated as absent.
func ParseValues(values url.Values) (Request, error) {
	var req Request

	var unknown []string
	for key := range values {
		if _, ok := knownKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return req, apperrors.ErrInvalidFilter("Unknown search parameter").
			WithDetails(map[string]interface{}{"keys": unknown})
	}

	get := func(key string) (string, error) {
		vs := values[key]
		if len(vs) > 1 {
			return "", invalidParam(key, "must be given once")
		}
		if len(vs) == 0 {
			return "", nil
		}
		return strings.TrimSpace(vs[0]), nil
	}

	var err error
	f := &req.Filters
	if f.Search, err = get(KeySearch); err != nil {
		return req, err
	}
	if f.Location, err = get(KeyLocation); err != nil {
		return req, err
	}
	if f.CompanyID, err = get(KeyCompanyID); err != nil {
		return req, err
	}
	if f.PostedBy, err = get(KeyPostedBy); err != nil {
		return req, err
	}

	s, err := get(KeyJobType)
	if err != nil {
		return req, err
	}
	f.JobType = models.JobType(s)

	if s, err = get(KeyExperienceLevel); err != nil {
		return req, err
	}
	f.ExperienceLevel = models.ExperienceLevel(s)

	if s, err = get(KeySort); err != nil {
		return req, err
	}
	req.Sort = Sort(s)

	if f.SalaryMin, err = parseFloat(KeySalaryMin, get); err != nil {
		return req, err
	}
	if f.SalaryMax, err = parseFloat(KeySalaryMax, get); err != nil {
		return req, err
	}

	if s, err = get(KeyIsRemote); err != nil {
		return req, err
	}
	if s != "" {
		b, perr := strconv.ParseBool(s)
		if perr != nil {
			return req, invalidParam(KeyIsRemote, "must be true or false")
		}
		f.IsRemote = &b
	}

	if req.Limit, err = parseInt(KeyLimit, get); err != nil {
		return req, err
	}
	if req.Offset, err = parseInt(KeyOffset, get); err != nil {
		return req, err
	}
	if req.Page, err = parseInt(KeyPage, get); err != nil {
		return req, err
	}

	return req, nil
}

func parseFloat(key string, get func(string) (string, error)) (*float64, error) {
	s, err := get(key)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, invalidParam(key, "must be a number")
	}
	return &v, nil
}

func parseInt(key string, get func(string) (string, error)) (*int, error) {
	s, err := get(key)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalidParam(key, "must be an integer")
	}
	return &v, nil
}

// Validate checks value domains that ParseValues cannot express by type.
func (f Filters) Validate() error {
	if len(f.Search) > maxSearchLength {
		return invalidParam(KeySearch, fmt.Sprintf("must be at most %d characters", maxSearchLength))
	}
	if f.JobType != "" && !f.JobType.Valid() {
		return invalidParam(KeyJobType, "unknown job type")
	}
	if f.ExperienceLevel != "" && !f.ExperienceLevel.Valid() {
		return invalidParam(KeyExperienceLevel, "unknown experience level")
	}
	if f.SalaryMin != nil && *f.SalaryMin < 0 {
		return invalidParam(KeySalaryMin, "must not be negative")
	}
	if f.SalaryMax != nil && *f.SalaryMax < 0 {
		return invalidParam(KeySalaryMax, "must not be negative")
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return invalidParam(KeySalaryMin, "must not exceed salary_max")
	}
	if f.CompanyID != "" && !models.IsUUID(f.CompanyID) {
		return invalidParam(KeyCompanyID, "must be a uuid")
	}
	if f.PostedBy != "" && !models.IsUUID(f.PostedBy) {
		return invalidParam(KeyPostedBy, "must be a uuid")
	}
	return nil
}

func invalidParam(key, reason string) error {
	return apperrors.ErrInvalidFilter("Invalid search parameter").
		WithDetails(map[string]string{key: reason})
}

// Resolve validates the whole request and returns its page window.
func (r Request) Resolve(limits Limits) (Window, error) {
	if err := r.Filters.Validate(); err != nil {
		return Window{}, err
	}
	if r.Sort != "" && !r.Sort.Valid() {
		return Window{}, invalidParam(KeySort, "must be one of latest, salary-high, salary-low, relevance")
	}
	return ResolveWindow(r, limits)
}
