package v1

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go-hr-backend/config"
	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
	"go-hr-backend/internal/repository/document"
	"go-hr-backend/internal/usecase"
	"go-hr-backend/pkg/audit"
	"go-hr-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details []string        `json:"details"`
}

type fakeStorage struct {
	mu      sync.Mutex
	uploads map[string][]byte
}

func (f *fakeStorage) Upload(_ context.Context, key, _ string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[key] = body
	return nil
}

func (f *fakeStorage) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + key + "?signed=1", nil
}

func (f *fakeStorage) ObjectURL(key string) string {
	return "https://files.example.com/" + key
}

type testApp struct {
	router *gin.Engine
	stats  domain.StatisticsUsecase
	vacUC  domain.VacancyUsecase
}

func newTestApp(t *testing.T, storage domain.FileStorage, secret string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	candidateRepo := document.NewCandidateRepository(store)
	vacancyRepo := document.NewVacancyRepository(store)
	recordRepo := document.NewAssignmentRecordRepository(store)
	validate := validation.Validator()
	auditLog := audit.Nop()

	stats := usecase.NewStatisticsUsecase(vacancyRepo, candidateRepo, recordRepo, domain.DefaultStatusBuckets())
	vacancies := usecase.NewVacancyUsecase(vacancyRepo, candidateRepo, validate, auditLog)

	router := NewRouter(RouterDeps{
		CandidateUC:  usecase.NewCandidateUsecase(candidateRepo, storage, validate, auditLog),
		VacancyUC:    vacancies,
		AssignmentUC: usecase.NewAssignmentUsecase(candidateRepo, vacancyRepo, auditLog),
		StatisticsUC: stats,
		ReportUC:     usecase.NewReportUsecase(stats, storage, time.Hour, auditLog),
		HealthUC:     usecase.NewHealthUsecase(store),
		Config: &config.Config{
			JWTSecret:                secret,
			AllowedOrigins:           []string{"http://localhost:8081"},
			RateLimitWindowSeconds:   60,
			RateLimitGlobalThreshold: 1000,
		},
	})
	return &testApp{router: router, stats: stats, vacUC: vacancies}
}

func (a *testApp) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func candidateBody() map[string]any {
	return map[string]any{
		"nombre":    "Ana Pérez",
		"email":     "ana@example.com",
		"telefono":  "5512345678",
		"direccion": "Av. Reforma 10",
		"genero":    "Femenino",
		"experiencia": []map[string]any{
			{"descripcion": "APIs", "empresa": "Acme", "puesto": "Dev"},
		},
		"documento": []string{"file:///cv.pdf"},
	}
}

func vacancyBody(title string) map[string]any {
	return map[string]any{
		"titulo":      title,
		"descripcion": "Servicios en Go",
		"salario":     "1000",
		"tipoempleo":  "Full-time",
		"ubicacion":   "Remote",
		"Requisitos": []map[string]any{
			{"Nombre": "Go", "Descripcion": "Backend", "Nivel": "Senior", "AñosExperiencia": "3", "Obligatorio": true},
		},
	}
}

func createVacancy(t *testing.T, app *testApp, title string) domain.Vacancy {
	t.Helper()
	w, env := app.do(t, http.MethodPost, "/v1/vacancies", vacancyBody(title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var v domain.Vacancy
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func createCandidate(t *testing.T, app *testApp) domain.Candidate {
	t.Helper()
	w, env := app.do(t, http.MethodPost, "/v1/candidates", candidateBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c domain.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &c))
	return c
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil, "")

	w, env := app.do(t, http.MethodGet, "/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok","store":"up"}`, string(env.Data))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCandidateLifecycle(t *testing.T) {
	app := newTestApp(t, nil, "")

	created := createCandidate(t, app)
	require.NotEmpty(t, created.ID)

	w, env := app.do(t, http.MethodGet, "/v1/candidates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Pérez", list[0].Name)

	w, env = app.do(t, http.MethodPatch, "/v1/candidates/"+created.ID, map[string]any{"telefono": "5598765432"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated domain.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "5598765432", updated.Phone)
	assert.Equal(t, "ana@example.com", updated.Email)

	w, _ = app.do(t, http.MethodDelete, "/v1/candidates/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = app.do(t, http.MethodGet, "/v1/candidates/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestCreateCandidateValidation(t *testing.T) {
	app := newTestApp(t, nil, "")

	body := candidateBody()
	body["email"] = "ana-at-example"
	body["telefono"] = "123"

	w, env := app.do(t, http.MethodPost, "/v1/candidates", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, env.Details, 2)

	_, env = app.do(t, http.MethodGet, "/v1/candidates", nil)
	var list []domain.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}

func TestMalformedBody(t *testing.T) {
	app := newTestApp(t, nil, "")

	w, env := app.do(t, http.MethodPost, "/v1/vacancies", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestVacancyToggleAndStatistics(t *testing.T) {
	app := newTestApp(t, nil, "")
	vacancy := createVacancy(t, app, "Backend Dev")
	assert.Equal(t, domain.StatusAvailable, vacancy.Status)

	w, env := app.do(t, http.MethodGet, "/v1/statistics/vacancies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.VacancyStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 0, stats.Unavailable)

	w, env = app.do(t, http.MethodPost, "/v1/vacancies/"+vacancy.ID+"/toggle-status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled domain.Vacancy
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.Equal(t, domain.StatusUnavailable, toggled.Status)

	_, env = app.do(t, http.MethodGet, "/v1/statistics/vacancies", nil)
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 0, stats.Available)
	assert.Equal(t, 0, stats.Unavailable, "toggle literal differs from the default bucket")
	assert.Equal(t, 1, stats.Other)

	w, env = app.do(t, http.MethodPost, "/v1/statistics/refresh", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecase.RefreshMessage, env.Message)
}

func TestAssignmentFlow(t *testing.T) {
	app := newTestApp(t, nil, "")
	vacancy := createVacancy(t, app, "Backend Dev")
	candidate := createCandidate(t, app)

	w, env := app.do(t, http.MethodPost, "/v1/assignments", AssignRequest{CandidateID: candidate.ID, VacancyID: vacancy.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var assignment domain.Assignment
	require.NoError(t, json.Unmarshal(env.Data, &assignment))
	assert.Equal(t, "Backend Dev", assignment.VacancyTitle)

	w, env = app.do(t, http.MethodGet, "/v1/vacancies/"+vacancy.ID+"/candidates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var assigned []domain.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &assigned))
	require.Len(t, assigned, 1)
	assert.Equal(t, candidate.ID, assigned[0].ID)

	w, env = app.do(t, http.MethodGet, "/v1/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.Summary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, int64(1), summary.AssignedCandidates)

	w, _ = app.do(t, http.MethodDelete, "/v1/candidates/"+candidate.ID+"/assignment", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, env = app.do(t, http.MethodGet, "/v1/assignments", nil)
	var views []domain.AssignmentView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Empty(t, views)
}

func TestAssignBlankIDs(t *testing.T) {
	app := newTestApp(t, nil, "")

	w, env := app.do(t, http.MethodPost, "/v1/assignments", AssignRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, env.Details, 2)
}

func TestDownloadReport(t *testing.T) {
	app := newTestApp(t, nil, "")
	createVacancy(t, app, "Backend Dev")

	w, _ := app.do(t, http.MethodGet, "/v1/statistics/report?format=xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reporte_vacantes_")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")

	w, _ = app.do(t, http.MethodGet, "/v1/statistics/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Reporte de Vacantes por Estado")

	w, _ = app.do(t, http.MethodGet, "/v1/statistics/report?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareReport(t *testing.T) {
	t.Run("storage not configured", func(t *testing.T) {
		app := newTestApp(t, nil, "")
		w, env := app.do(t, http.MethodPost, "/v1/statistics/report/share", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "sharing unavailable", env.Message)
	})

	t.Run("presigned link", func(t *testing.T) {
		storage := &fakeStorage{}
		app := newTestApp(t, storage, "")
		w, env := app.do(t, http.MethodPost, "/v1/statistics/report/share?format=xlsx", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var shared domain.SharedReport
		require.NoError(t, json.Unmarshal(env.Data, &shared))
		assert.True(t, strings.HasPrefix(shared.Key, "reports/"))
		assert.Contains(t, shared.URL, "signed=1")
		assert.Contains(t, storage.uploads, shared.Key)
	})
}

func TestUploadProfileImage(t *testing.T) {
	storage := &fakeStorage{}
	app := newTestApp(t, storage, "")
	candidate := createCandidate(t, app)

	img := image.NewRGBA(image.Rect(0, 0, 1024, 768))
	for x := 0; x < 1024; x++ {
		img.Set(x, x%768, color.RGBA{R: 200, A: 255})
	}
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/candidates/"+candidate.ID+"/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var updated domain.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, strings.HasPrefix(updated.ImageURI, "https://files.example.com/candidates/"+candidate.ID+"/profile-"))
	assert.Len(t, storage.uploads, 1)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestUploadRequiresFile(t *testing.T) {
	app := newTestApp(t, &fakeStorage{}, "")
	candidate := createCandidate(t, app)

	w, _ := app.do(t, http.MethodPost, "/v1/candidates/"+candidate.ID+"/image", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	const secret = "test-secret"
	app := newTestApp(t, nil, secret)

	w, _ := app.do(t, http.MethodGet, "/v1/vacancies", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = app.do(t, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/vacancies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// readEvent returns the next named event's data line, skipping comments.
func readEvent(t *testing.T, reader *bufio.Reader) (string, string) {
	t.Helper()
	var event string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, ":"):
			return "", line
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			return event, strings.TrimPrefix(line, "data:")
		}
	}
}

func nextStats(t *testing.T, reader *bufio.Reader) domain.VacancyStats {
	t.Helper()
	for {
		event, data := readEvent(t, reader)
		if event != "stats" {
			continue
		}
		var stats domain.VacancyStats
		require.NoError(t, json.Unmarshal([]byte(data), &stats))
		return stats
	}
}

func TestStreamVacancyStats(t *testing.T) {
	app := newTestApp(t, nil, "")
	vacancy := createVacancy(t, app, "Backend Dev")

	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/statistics/vacancies/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	first := nextStats(t, reader)
	assert.Equal(t, 1, first.Available)
	assert.Equal(t, 1, first.Total)

	_, err = app.vacUC.ToggleStatus(context.Background(), vacancy.ID)
	require.NoError(t, err)

	second := nextStats(t, reader)
	assert.Equal(t, 0, second.Available)
	assert.Equal(t, 1, second.Other)
}

func TestStreamHeartbeat(t *testing.T) {
	prev := streamHeartbeat
	streamHeartbeat = 20 * time.Millisecond
	t.Cleanup(func() { streamHeartbeat = prev })

	app := newTestApp(t, nil, "")
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/statistics/vacancies/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	for {
		event, data := readEvent(t, reader)
		if event == "" && data == ": heartbeat" {
			return
		}
	}
}

func TestUploadRejectsSpoofedImage(t *testing.T) {
	app := newTestApp(t, &fakeStorage{}, "")
	candidate := createCandidate(t, app)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7 not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/candidates/"+candidate.ID+"/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
