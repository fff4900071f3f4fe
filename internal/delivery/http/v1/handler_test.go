package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"muto-jobboard/config"
	"muto-jobboard/internal/delivery/http/middleware"
	"muto-jobboard/internal/delivery/http/response"
	v1 "muto-jobboard/internal/delivery/http/v1"
	"muto-jobboard/internal/domain"
	"muto-jobboard/internal/usecase"
	"muto-jobboard/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubListing struct{ view domain.JobsListingView }

func (s *stubListing) Load(_ context.Context, query string) domain.JobsListingView {
	v := s.view
	v.Query = query
	return v
}

type stubApply struct {
	view   domain.ApplyJobView
	result *domain.SubmitResult
	err    error
	gotID  string
	gotCtx context.Context
}

func (s *stubApply) Load(_ context.Context, _ string) domain.ApplyJobView { return s.view }

func (s *stubApply) Submit(ctx context.Context, jobID string, _ domain.ApplicationForm) (*domain.SubmitResult, error) {
	s.gotID = jobID
	s.gotCtx = ctx
	return s.result, s.err
}

type stubPostJob struct {
	gotForm domain.PostJobForm
}

func (s *stubPostJob) Form() domain.JobFormDefinition {
	return domain.JobFormDefinition{TypeOptions: domain.JobTypes}
}

func (s *stubPostJob) Submit(_ context.Context, form domain.PostJobForm, _ string) (*domain.SubmitResult, error) {
	s.gotForm = form
	return &domain.SubmitResult{RedirectTo: "/jobs"}, nil
}

type stubProfile struct{}

func (stubProfile) Load(ctx context.Context) (*domain.ProfileView, error) {
	id, _ := (domain.ContextIdentity{}).CurrentIdentity(ctx)
	return &domain.ProfileView{Form: domain.ProfileForm{Email: id.Email}, Applications: []domain.ApplicationCard{}}, nil
}

func (stubProfile) Save(_ context.Context, form domain.ProfileForm) (*domain.ProfileForm, error) {
	return &form, nil
}

func (stubProfile) ExportApplications(context.Context) ([]byte, string, error) {
	return []byte("PK"), "applications_20260101_000000.xlsx", nil
}

type testServer struct {
	router  *gin.Engine
	listing *stubListing
	apply   *stubApply
	postJob *stubPostJob
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	s := &testServer{
		listing: &stubListing{},
		apply:   &stubApply{},
		postJob: &stubPostJob{},
	}
	cfg := &config.Config{
		Environment:              "test",
		SupabaseJWTSecret:        testSecret,
		AllowedOrigins:           []string{"http://localhost:5173"},
		RateLimitWindowSeconds:   60,
		RateLimitWriteThreshold:  100,
		RateLimitGlobalThreshold: 1000,
	}
	s.router = v1.NewRouter(v1.RouterDeps{
		JobsListingUC: s.listing,
		ApplyJobUC:    s.apply,
		PostJobUC:     s.postJob,
		ProfileUC:     stubProfile{},
		HealthUC:      usecase.NewHealthUsecase("test", nil),
		Metrics:       middleware.NewMetrics("test"),
		RateLimiter:   middleware.NewRateLimiter(nil, nil, nil),
		Config:        cfg,
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp response.Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func token(t *testing.T, sub string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": "jane@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func TestJobsListingStatusCodes(t *testing.T) {
	s := newTestServer()

	s.listing.view = domain.JobsListingView{State: domain.PageStateFailed, Message: "We couldn't load job listings right now. Please check back later."}
	w, resp := s.do(t, http.MethodGet, "/v1/jobs", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "check back later")

	s.listing.view = domain.JobsListingView{State: domain.PageStateEmpty, Message: "No jobs found. Check back later for new opportunities.", Jobs: []domain.JobCard{}}
	w, resp = s.do(t, http.MethodGet, "/v1/jobs?q=nurse", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "empty", data["state"])
	assert.Equal(t, "nurse", data["query"])
	assert.NotEmpty(t, resp.RequestID)
}

func TestApplyRoutes(t *testing.T) {
	s := newTestServer()

	s.apply.view = domain.ApplyJobView{State: domain.PageStateNotFound, Message: "Job not found"}
	w, resp := s.do(t, http.MethodGet, "/v1/jobs/abc/apply", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", resp.Message)

	s.apply.err = apperror.Unauthorized("Please sign in to apply")
	w, resp = s.do(t, http.MethodPost, "/v1/jobs/abc/apply", `{"resume_url":"https://x.io/cv","cover_letter":"hi"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Please sign in to apply", resp.Message)
	assert.Equal(t, "abc", s.apply.gotID)

	s.apply.err = nil
	s.apply.result = &domain.SubmitResult{RedirectTo: "/profile"}
	w, resp = s.do(t, http.MethodPost, "/v1/jobs/abc/apply", `{"resume_url":"https://x.io/cv","cover_letter":"hi"}`, token(t, "user-1"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/profile", resp.Data.(map[string]interface{})["redirect_to"])
	id, ok := (domain.ContextIdentity{}).CurrentIdentity(s.apply.gotCtx)
	require.True(t, ok)
	assert.Equal(t, "user-1", id.UserID)

	w, _ = s.do(t, http.MethodPost, "/v1/jobs/abc/apply", `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostJobRoutes(t *testing.T) {
	s := newTestServer()

	w, resp := s.do(t, http.MethodGet, "/v1/post-job", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data.(map[string]interface{})["type_options"], 4)

	w, resp = s.do(t, http.MethodPost, "/v1/jobs", `{"title":"Accountant","status":"closed"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/jobs", resp.Data.(map[string]interface{})["redirect_to"])
	assert.Equal(t, "Accountant", s.postJob.gotForm.Title)
}

func TestProfileRequiresIdentity(t *testing.T) {
	s := newTestServer()

	w, resp := s.do(t, http.MethodGet, "/v1/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", resp.Message)

	w, resp = s.do(t, http.MethodGet, "/v1/profile", "", token(t, "user-1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane@example.com", resp.Data.(map[string]interface{})["form"].(map[string]interface{})["email"])
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")

	w, _ = s.do(t, http.MethodPut, "/v1/profile", `{"full_name":"Jane","email":"jane@example.com"}`, token(t, "user-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodGet, "/v1/profile/applications/export", "", token(t, "user-1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "applications_20260101_000000.xlsx")
	assert.Equal(t, "PK", w.Body.String())
}

func TestSiteAndHealth(t *testing.T) {
	s := newTestServer()

	w, resp := s.do(t, http.MethodGet, "/v1/site", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	nav := data["nav"].([]interface{})
	require.Len(t, nav, 3)
	assert.Equal(t, "/jobs", nav[0].(map[string]interface{})["path"])
	assert.Equal(t, "info@muto-consults.com", data["contact"].(map[string]interface{})["email"])
	home := data["home"].(map[string]interface{})
	assert.Equal(t, "Your Dream Job is Waiting", home["hero"].(map[string]interface{})["title"])
	assert.Equal(t, "/jobs", home["hero"].(map[string]interface{})["search_path"])
	assert.Len(t, home["categories"], 3)
	steps := home["how_we_work"].([]interface{})
	require.Len(t, steps, 3)
	assert.Equal(t, "Get Hired", steps[2].(map[string]interface{})["title"])

	w, resp = s.do(t, http.MethodGet, "/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp.Data.(map[string]interface{})["status"])

	w, _ = s.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_http_requests_total")
}
