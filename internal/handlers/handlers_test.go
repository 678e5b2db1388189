package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.TokenService
}

func newTestServer(t *testing.T, settings services.JobSettings) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	v := validator.New()
	appHandlers := NewAppHandlers(services.NewServiceContainer(v, settings), v, sqlDB)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	guards := NewGuards(tokens)

	r := gin.New()
	r.Use(middleware.DBMiddleware(db))
	appHandlers.HealthHandler.RegisterRoutes(r)
	api := r.Group("/api/v1")
	appHandlers.BookmarkHandler.RegisterRoutes(api, guards)
	appHandlers.JobHandler.RegisterRoutes(api, guards)
	appHandlers.CompanyHandler.RegisterRoutes(api, guards)
	appHandlers.UserHandler.RegisterRoutes(api, guards)

	return &testServer{router: r, db: db, tokens: tokens}
}

func (s *testServer) token(t *testing.T, role models.UserRole) (string, auth.Identity) {
	t.Helper()
	identity := auth.Identity{UserID: uuid.NewString(), Role: role}
	token, err := s.tokens.GenerateToken(identity)
	require.NoError(t, err)
	return token, identity
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Error.Code
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

type jobPage struct {
	Jobs []struct {
		ID        string   `json:"id"`
		Title     string   `json:"title"`
		SalaryMax *float64 `json:"salary_max"`
		IsSaved   *bool    `json:"is_saved"`
	} `json:"jobs"`
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

func TestSearchJobsEndpoint(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	poster := uuid.NewString()
	testutil.CreateJob(t, s.db, poster, testutil.WithTitle("Low"), testutil.WithSalary(testutil.Float(90000), testutil.Float(90000)))
	high := testutil.CreateJob(t, s.db, poster, testutil.WithTitle("High"), testutil.WithSalary(testutil.Float(150000), testutil.Float(150000)))

	w := s.do(http.MethodGet, "/api/v1/jobs?job_type=full-time&salary_min=100000&sort=salary-high&limit=10&offset=0", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page jobPage
	decode(t, w, &page)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, high.ID, page.Jobs[0].ID)
	assert.Nil(t, page.Jobs[0].IsSaved)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Pages)
}

func TestSearchJobsEndpointRejectsBadParameters(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})

	for _, query := range []string{
		"?colour=red",
		"?sort=cheapest",
		"?limit=0",
		"?limit=101",
		"?salary_min=abc",
		"?salary_min=200&salary_max=100",
		"?page=2&offset=10",
		"?job_type=gig",
		"?is_remote=maybe",
		"?company_id=acme",
	} {
		w := s.do(http.MethodGet, "/api/v1/jobs"+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Equal(t, "INVALID_FILTER", errorCode(t, w), query)
	}
}

func TestSearchJobsEndpointBelowRangeReturnsEmptyPage(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	testutil.CreateJob(t, s.db, uuid.NewString())

	for _, query := range []string{"?page=0", "?offset=-5", "?page=922337203685477580"} {
		w := s.do(http.MethodGet, "/api/v1/jobs"+query, "", nil)
		require.Equal(t, http.StatusOK, w.Code, query)
		var page jobPage
		decode(t, w, &page)
		assert.EqualValues(t, 1, page.Total, query)
		assert.Empty(t, page.Jobs, query)
	}
}

func TestSearchJobsEndpointAnnotatesSavedForCaller(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	job := testutil.CreateJob(t, s.db, uuid.NewString())
	token, _ := s.token(t, models.UserRoleJobSeeker)

	w := s.do(http.MethodPost, "/api/v1/jobs/"+job.ID+"/save", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/jobs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page jobPage
	decode(t, w, &page)
	require.Len(t, page.Jobs, 1)
	require.NotNil(t, page.Jobs[0].IsSaved)
	assert.True(t, *page.Jobs[0].IsSaved)

	w = s.do(http.MethodGet, "/api/v1/jobs", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetJobEndpointCountsViews(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	job := testutil.CreateJob(t, s.db, uuid.NewString())

	var record struct {
		ViewCount int64 `json:"view_count"`
	}
	w := s.do(http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &record)
	assert.EqualValues(t, 1, record.ViewCount)

	w = s.do(http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &record)
	assert.EqualValues(t, 2, record.ViewCount)

	w = s.do(http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestJobWriteEndpoints(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	employerToken, _ := s.token(t, models.UserRoleEmployer)
	otherToken, _ := s.token(t, models.UserRoleEmployer)
	seekerToken, _ := s.token(t, models.UserRoleJobSeeker)

	create := map[string]interface{}{
		"title":            "Platform Engineer",
		"description":      "Keep the lights on",
		"job_type":         "contract",
		"experience_level": "senior",
		"salary_min":       80000,
		"salary_max":       95000,
		"skills":           []string{"kubernetes"},
	}

	w := s.do(http.MethodPost, "/api/v1/jobs", "", create)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/jobs", seekerToken, create)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/jobs", employerToken, map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))

	w = s.do(http.MethodPost, "/api/v1/jobs", employerToken, create)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID       string `json:"id"`
		IsActive bool   `json:"is_active"`
	}
	decode(t, w, &created)
	assert.True(t, created.IsActive)

	w = s.do(http.MethodPatch, "/api/v1/jobs/"+created.ID, otherToken, map[string]interface{}{"title": "Mine now"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))

	w = s.do(http.MethodPatch, "/api/v1/jobs/"+created.ID, employerToken, map[string]interface{}{"title": "Staff Platform Engineer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Title string `json:"title"`
	}
	decode(t, w, &updated)
	assert.Equal(t, "Staff Platform Engineer", updated.Title)

	w = s.do(http.MethodDelete, "/api/v1/jobs/"+created.ID, employerToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/jobs/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprovalEndpoint(t *testing.T) {
	s := newTestServer(t, services.JobSettings{RequireApproval: true})
	job := testutil.CreateJob(t, s.db, uuid.NewString(), testutil.Unapproved())
	adminToken, _ := s.token(t, models.UserRoleAdmin)
	employerToken, _ := s.token(t, models.UserRoleEmployer)

	w := s.do(http.MethodPatch, "/api/v1/admin/jobs/"+job.ID+"/approval", employerToken, map[string]bool{"approved": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, "/api/v1/admin/jobs/"+job.ID+"/approval", adminToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/api/v1/admin/jobs/"+job.ID+"/approval", adminToken, map[string]bool{"approved": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/jobs", "", nil)
	var page jobPage
	decode(t, w, &page)
	assert.EqualValues(t, 1, page.Total)
}

func TestBookmarkEndpoints(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	job := testutil.CreateJob(t, s.db, uuid.NewString())
	token, _ := s.token(t, models.UserRoleJobSeeker)

	w := s.do(http.MethodGet, "/api/v1/jobs/saved", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/api/v1/jobs/"+job.ID+"/save", token, nil).Code)
	require.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/api/v1/jobs/"+job.ID+"/save", token, nil).Code)

	w = s.do(http.MethodGet, "/api/v1/jobs/saved", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page jobPage
	decode(t, w, &page)
	assert.EqualValues(t, 1, page.Total)

	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/jobs/"+job.ID+"/save", token, nil).Code)
	w = s.do(http.MethodGet, "/api/v1/jobs/saved", token, nil)
	decode(t, w, &page)
	assert.Zero(t, page.Total)

	w = s.do(http.MethodPost, "/api/v1/jobs/"+uuid.NewString()+"/save", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyEndpoints(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	employerToken, _ := s.token(t, models.UserRoleEmployer)
	adminToken, _ := s.token(t, models.UserRoleAdmin)

	w := s.do(http.MethodPost, "/api/v1/companies", employerToken, map[string]string{"name": "Vandelay Industries"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var company struct {
		ID         string `json:"id"`
		IsVerified bool   `json:"is_verified"`
	}
	decode(t, w, &company)

	w = s.do(http.MethodGet, "/api/v1/companies/my", employerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine struct {
		Companies []struct {
			ID string `json:"id"`
		} `json:"companies"`
	}
	decode(t, w, &mine)
	require.Len(t, mine.Companies, 1)
	assert.Equal(t, company.ID, mine.Companies[0].ID)

	w = s.do(http.MethodPatch, "/api/v1/admin/companies/"+company.ID+"/verification", adminToken, map[string]bool{"verified": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/companies/"+company.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &company)
	assert.True(t, company.IsVerified)
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})
	token, identity := s.token(t, models.UserRoleEmployer)

	w := s.do(http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/api/v1/users/me", token, map[string]string{"email": "jo@example.com", "first_name": "Jo"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID   string          `json:"id"`
		Role models.UserRole `json:"role"`
	}
	decode(t, w, &me)
	assert.Equal(t, identity.UserID, me.ID)
	assert.Equal(t, models.UserRoleEmployer, me.Role)
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t, services.JobSettings{})

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/healthz", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/readyz", "", nil).Code)
}
