package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/memory"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	analyticssvc "github.com/graffhyrum/jobAppTracker-sub000/internal/service/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/application"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/contact"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/interview"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/jobboard"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/pipeline"
)

var apiNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestAPI mounts every handler over real services backed by an in-memory
// store.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := domain.ClockFunc(func() time.Time { return apiNow })
	store := memory.New()

	appSvc := application.NewService(log,
		store.Applications(), store.Contacts(), store.Stages(), store.Boards(), store.Pipeline(),
		memory.NewTxManager(), application.WithClock(clock))
	contactSvc := contact.NewService(log, store.Contacts(), store.Applications(), contact.WithClock(clock))
	interviewSvc := interview.NewService(log, store.Stages(), store.Applications(), interview.WithClock(clock))
	boardSvc := jobboard.NewService(log, store.Boards(), jobboard.WithClock(clock))
	pipelineSvc := pipeline.NewService(log, store.Pipeline())
	analyticsSvc := analyticssvc.NewService(log, store.Applications(), store.Contacts(), store.Stages(),
		analyticssvc.WithClock(clock))

	appHandler := NewApplicationHandler(appSvc, log)
	appHandler.now = func() time.Time { return apiNow }

	mux := http.NewServeMux()
	Handlers{
		Health:       NewHealthHandler(&storagePingerMock{}, "memory", "test", log),
		Applications: appHandler,
		Contacts:     NewContactHandler(contactSvc, log),
		Interviews:   NewInterviewHandler(interviewSvc, log),
		JobBoards:    NewJobBoardHandler(boardSvc, log),
		Pipeline:     NewPipelineHandler(pipelineSvc, log),
		Analytics:    NewAnalyticsHandler(analyticsSvc, log),
	}.Register(mux)
	return mux
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type appView struct {
	ID            uuid.UUID  `json:"id"`
	Company       string     `json:"company"`
	SourceType    string     `json:"sourceType"`
	JobBoardID    *uuid.UUID `json:"jobBoardId"`
	Overdue       bool       `json:"overdue"`
	CurrentStatus *struct {
		Category string `json:"category"`
		Label    string `json:"label"`
	} `json:"currentStatus"`
	Notes []struct {
		ID      uuid.UUID `json:"id"`
		Content string    `json:"content"`
	} `json:"notes"`
}

func createApp(t *testing.T, h http.Handler, company string) appView {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/applications", map[string]any{
		"company":         company,
		"positionTitle":   "Backend Engineer",
		"applicationDate": "2024-05-20",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[appView](t, rec)
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

func TestApplications_Lifecycle(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	app := createApp(t, h, "Acme")
	require.NotNil(t, app.CurrentStatus)
	assert.Equal(t, "applied", app.CurrentStatus.Label)
	assert.Equal(t, "active", app.CurrentStatus.Category)
	assert.Equal(t, "other", app.SourceType)

	rec := do(t, h, http.MethodGet, "/api/applications/"+app.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme", decode[appView](t, rec).Company)

	rec = do(t, h, http.MethodPatch, "/api/applications/"+app.ID.String(), map[string]any{"company": "Acme Corp"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Acme Corp", decode[appView](t, rec).Company)

	rec = do(t, h, http.MethodPost, "/api/applications/"+app.ID.String()+"/status", map[string]any{"label": "rejected"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[appView](t, rec)
	require.NotNil(t, got.CurrentStatus)
	assert.Equal(t, "inactive", got.CurrentStatus.Category)
	assert.Equal(t, "rejected", got.CurrentStatus.Label)

	rec = do(t, h, http.MethodDelete, "/api/applications/"+app.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/applications/"+app.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplications_CreateValidation(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{"missing company", map[string]any{"positionTitle": "x", "applicationDate": "2024-05-20"}, "company"},
		{"bad date", map[string]any{"company": "a", "positionTitle": "x", "applicationDate": "yesterday"}, "application_date"},
		{"bad board id", map[string]any{"company": "a", "positionTitle": "x", "applicationDate": "2024-05-20", "jobBoardId": "nope"}, "jobBoardId"},
		{"unknown field", map[string]any{"company": "a", "salary": 1}, "body"},
		{"malformed", "{", "body"},
		{"empty", "", "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/applications", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			resp := decode[errorResponse](t, rec)
			assert.Equal(t, "validation failed", resp.Error)
			fields := make([]string, len(resp.Fields))
			for i, f := range resp.Fields {
				fields[i] = f.Field
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestApplications_PathErrors(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := do(t, h, http.MethodGet, "/api/applications/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/applications/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[errorResponse](t, rec).Error)

	rec = do(t, h, http.MethodDelete, "/api/applications/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplications_ListFilters(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	acme := createApp(t, h, "Acme")
	createApp(t, h, "Globex")
	rec := do(t, h, http.MethodPost, "/api/applications/"+acme.ID.String()+"/status", map[string]any{"label": "ghosted"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/applications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]appView](t, rec), 2)

	rec = do(t, h, http.MethodGet, "/api/applications?category=inactive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]appView](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Company)

	rec = do(t, h, http.MethodGet, "/api/applications?search=glob&sort=company&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got = decode[[]appView](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].Company)

	for _, q := range []string{"category=closed", "source=fax", "overdue=maybe", "sort=salary", "limit=-1"} {
		rec = do(t, h, http.MethodGet, "/api/applications?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestApplications_Overdue(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/applications", map[string]any{
		"company":         "Initech",
		"positionTitle":   "SRE",
		"applicationDate": "2024-05-01",
		"nextEventDate":   "2024-05-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, decode[appView](t, rec).Overdue)
	createApp(t, h, "Acme")

	rec = do(t, h, http.MethodGet, "/api/applications/overdue", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]appView](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Initech", got[0].Company)
}

func TestApplications_UnknownStatusLabel(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	app := createApp(t, h, "Acme")

	rec := do(t, h, http.MethodPost, "/api/applications/"+app.ID.String()+"/status", map[string]any{"label": "hired"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplications_Notes(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	app := createApp(t, h, "Acme")
	base := "/api/applications/" + app.ID.String() + "/notes"

	rec := do(t, h, http.MethodPost, base, map[string]any{"content": "sent follow-up"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	note := decode[domain.Note](t, rec)
	assert.Equal(t, "sent follow-up", note.Content)

	rec = do(t, h, http.MethodPatch, base+"/"+note.ID.String(), map[string]any{"content": "recruiter replied"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "recruiter replied", decode[domain.Note](t, rec).Content)

	rec = do(t, h, http.MethodPost, base, map[string]any{"content": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, base+"/"+note.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, base+"/"+note.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/applications/"+app.ID.String(), nil)
	assert.Empty(t, decode[appView](t, rec).Notes)
}

// ---------------------------------------------------------------------------
// Contacts and interviews
// ---------------------------------------------------------------------------

func TestContacts_CRUD(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	app := createApp(t, h, "Acme")

	rec := do(t, h, http.MethodPost, "/api/contacts", map[string]any{
		"jobApplicationId": app.ID.String(),
		"name":             "Dana Recruiter",
		"email":            "dana@acme.test",
		"channel":          "email",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	c := decode[domain.Contact](t, rec)
	assert.Equal(t, app.ID, c.JobApplicationID)

	rec = do(t, h, http.MethodPatch, "/api/contacts/"+c.ID.String(), map[string]any{"responseReceived": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[domain.Contact](t, rec).ResponseReceived)

	rec = do(t, h, http.MethodGet, "/api/applications/"+app.ID.String()+"/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Contact](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/api/contacts?applicationId="+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.Contact](t, rec))

	rec = do(t, h, http.MethodGet, "/api/contacts?applicationId=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/contacts/"+c.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/contacts/"+c.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContacts_UnknownApplication(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/contacts", map[string]any{
		"jobApplicationId": uuid.NewString(),
		"name":             "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/contacts", map[string]any{"name": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterviews_StagesAndQuestions(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	app := createApp(t, h, "Acme")

	rec := do(t, h, http.MethodPost, "/api/interviews", map[string]any{
		"jobApplicationId": app.ID.String(),
		"round":            1,
		"interviewType":    "technical",
		"scheduledDate":    "2024-06-03",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stage := decode[domain.InterviewStage](t, rec)
	base := "/api/interviews/" + stage.ID.String()

	rec = do(t, h, http.MethodPost, base+"/questions", map[string]any{"title": "Design a rate limiter"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	stage = decode[domain.InterviewStage](t, rec)
	require.Len(t, stage.Questions, 1)
	qid := stage.Questions[0].ID

	rec = do(t, h, http.MethodPatch, base+"/questions/"+qid.String(), map[string]any{"answer": "token bucket"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stage = decode[domain.InterviewStage](t, rec)
	require.NotNil(t, stage.Questions[0].Answer)
	assert.Equal(t, "token bucket", *stage.Questions[0].Answer)

	rec = do(t, h, http.MethodDelete, base+"/questions/"+qid.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[domain.InterviewStage](t, rec).Questions)

	rec = do(t, h, http.MethodPatch, base, map[string]any{"isFinalRound": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[domain.InterviewStage](t, rec).IsFinalRound)

	rec = do(t, h, http.MethodPatch, base, map[string]any{"round": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/applications/"+app.ID.String()+"/interviews", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.InterviewStage](t, rec), 1)

	rec = do(t, h, http.MethodDelete, "/api/applications/"+app.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// Job boards
// ---------------------------------------------------------------------------

func TestJobBoards_LookupAndOverlap(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/job-boards", map[string]any{
		"name":       "LinkedIn",
		"rootDomain": "https://www.linkedin.com/jobs",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	board := decode[domain.JobBoard](t, rec)
	assert.Equal(t, "linkedin.com", board.RootDomain)

	rec = do(t, h, http.MethodPost, "/api/job-boards", map[string]any{"name": "Dup", "rootDomain": "jobs.linkedin.com"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/job-boards/lookup?url="+"https://uk.linkedin.com/jobs/view/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, board.ID, decode[domain.JobBoard](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/api/job-boards/lookup?url=https://example.org", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/job-boards/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/job-boards/lookup", map[string]any{"url": "https://boards.greenhouse.io/acme"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[lookupResponse](t, rec)
	assert.True(t, created.Created)
	assert.Equal(t, "boards.greenhouse.io", created.Board.RootDomain)

	rec = do(t, h, http.MethodPost, "/api/job-boards/lookup", map[string]any{"url": "boards.greenhouse.io"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[lookupResponse](t, rec).Created)

	rec = do(t, h, http.MethodPost, "/api/job-boards/"+board.ID.String()+"/domains", map[string]any{"domain": "lnkd.in"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode[domain.JobBoard](t, rec).Domains, "lnkd.in")

	rec = do(t, h, http.MethodGet, "/api/job-boards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.JobBoard](t, rec), 2)
}

func TestJobBoards_AttachOnCreate(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/api/job-boards", map[string]any{"name": "Indeed", "rootDomain": "indeed.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	board := decode[domain.JobBoard](t, rec)

	rec = do(t, h, http.MethodPost, "/api/applications", map[string]any{
		"company":         "Acme",
		"positionTitle":   "Engineer",
		"applicationDate": "2024-05-20",
		"jobPostingUrl":   "https://www.indeed.com/viewjob?jk=1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	app := decode[appView](t, rec)
	require.NotNil(t, app.JobBoardID)
	assert.Equal(t, board.ID, *app.JobBoardID)
	assert.Equal(t, "job-board", app.SourceType)

	rec = do(t, h, http.MethodPatch, "/api/applications/"+app.ID.String(), map[string]any{"jobBoardId": ""})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decode[appView](t, rec).JobBoardID)
}

// ---------------------------------------------------------------------------
// Pipeline and analytics
// ---------------------------------------------------------------------------

func TestPipeline_Labels(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := do(t, h, http.MethodGet, "/api/pipeline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultPipelineConfig(), decode[domain.PipelineConfig](t, rec))

	rec = do(t, h, http.MethodPost, "/api/pipeline/labels", map[string]any{"category": "active", "label": "Take Home"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, decode[domain.PipelineConfig](t, rec).Active, "Take Home")

	rec = do(t, h, http.MethodPost, "/api/pipeline/labels", map[string]any{"category": "pending", "label": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, label := range []string{"rejected", "withdrawn", "no%20response"} {
		rec = do(t, h, http.MethodDelete, "/api/pipeline/labels/inactive/"+label, nil)
		require.Equal(t, http.StatusOK, rec.Code, label+": "+rec.Body.String())
	}
	rec = do(t, h, http.MethodDelete, "/api/pipeline/labels/inactive/ghosted", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/pipeline/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultPipelineConfig(), decode[domain.PipelineConfig](t, rec))
}

func TestAnalytics_Range(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	createApp(t, h, "Acme")

	rec := do(t, h, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[analytics.CombinedAnalytics](t, rec)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), report.Range.Start)

	rec = do(t, h, http.MethodGet, "/api/analytics?start=2024-01-01&end=2024-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report = decode[analytics.CombinedAnalytics](t, rec)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), report.Range.Start)

	rec = do(t, h, http.MethodGet, "/api/analytics?start=01/02/2024", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/analytics?start=2024-02-01&end=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

type failingPipeline struct{ err error }

func (f failingPipeline) Get(context.Context) (domain.PipelineConfig, error) {
	return domain.PipelineConfig{}, f.err
}
func (f failingPipeline) AddLabel(context.Context, string, string) (domain.PipelineConfig, error) {
	return domain.PipelineConfig{}, f.err
}
func (f failingPipeline) RemoveLabel(context.Context, string, string) (domain.PipelineConfig, error) {
	return domain.PipelineConfig{}, f.err
}
func (f failingPipeline) Reset(context.Context) (domain.PipelineConfig, error) {
	return domain.PipelineConfig{}, f.err
}

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("label", "required"), http.StatusBadRequest},
		{"wrapped not found", errors.Join(errors.New("get"), domain.ErrNotFound), http.StatusNotFound},
		{"exists", domain.ErrAlreadyExists, http.StatusConflict},
		{"last label", domain.ErrLastLabel, http.StatusConflict},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"storage", domain.NewStorageError("get", errors.New("disk full")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := NewPipelineHandler(failingPipeline{err: tt.err}, log)

			rec := httptest.NewRecorder()
			h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/pipeline", nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "disk full")
			}
		})
	}
}
