package usecase_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
	"go-hr-backend/internal/repository/document"
	"go-hr-backend/internal/usecase"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/audit"
	"go-hr-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) ListByVacancy(ctx context.Context, vacancyID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id string, patch *domain.CandidatePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockCandidateRepo) SetAssignment(ctx context.Context, id string, assignment *domain.Assignment) error {
	return m.Called(ctx, id, assignment).Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) List(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}

func (m *MockVacancyRepo) Update(ctx context.Context, id string, patch *domain.VacancyPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockVacancyRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVacancyRepo) Watch(ctx context.Context, onSnapshot func([]domain.Vacancy)) (domain.Subscription, error) {
	args := m.Called(ctx, onSnapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Subscription), args.Error(1)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Upload(ctx context.Context, key, contentType string, body []byte) error {
	return m.Called(ctx, key, contentType, body).Error(0)
}

func (m *MockFileStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) ObjectURL(key string) string {
	return "https://files.example.com/" + key
}

// services wires every usecase against one in-memory store.
type services struct {
	store       *docstore.MemoryStore
	candidates  domain.CandidateUsecase
	vacancies   domain.VacancyUsecase
	assignments domain.AssignmentUsecase
	stats       domain.StatisticsUsecase
	reports     domain.ReportUsecase
}

func newServices(storage domain.FileStorage) *services {
	store := docstore.NewMemoryStore()
	candidateRepo := document.NewCandidateRepository(store)
	vacancyRepo := document.NewVacancyRepository(store)
	recordRepo := document.NewAssignmentRecordRepository(store)
	validate := validation.Validator()
	auditLog := audit.Nop()

	stats := usecase.NewStatisticsUsecase(vacancyRepo, candidateRepo, recordRepo, domain.DefaultStatusBuckets())
	return &services{
		store:       store,
		candidates:  usecase.NewCandidateUsecase(candidateRepo, storage, validate, auditLog),
		vacancies:   usecase.NewVacancyUsecase(vacancyRepo, candidateRepo, validate, auditLog),
		assignments: usecase.NewAssignmentUsecase(candidateRepo, vacancyRepo, auditLog),
		stats:       stats,
		reports:     usecase.NewReportUsecase(stats, storage, 30*time.Minute, auditLog),
	}
}

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		Name:    "Ana Pérez",
		Email:   "ana@example.com",
		Phone:   "5512345678",
		Address: "Av. Reforma 10",
		Gender:  "Femenino",
		Experience: []domain.Experience{
			{Description: "APIs", Company: "Acme", StartDate: "2020-01-01", EndDate: "2023-01-01", Position: "Dev", Address: "CDMX"},
		},
		DocumentURI: []string{"file:///cv.pdf"},
	}
}

func backendDev() *domain.Vacancy {
	return &domain.Vacancy{
		Title:          "Backend Dev",
		Description:    "...",
		Salary:         "1000",
		EmploymentType: "Full-time",
		Location:       "Remote",
		Requirements: []domain.Requirement{
			{Name: "SQL", Description: "...", Level: "Intermedio"},
		},
	}
}

func assertAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestRegisterCandidateRejectsBeforeStoreCall(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, nil, validation.Validator(), audit.Nop())

	cases := map[string]func(c *domain.Candidate){
		"blank name":    func(c *domain.Candidate) { c.Name = "  " },
		"blank address": func(c *domain.Candidate) { c.Address = "" },
		"blank gender":  func(c *domain.Candidate) { c.Gender = "" },
		"bad email":     func(c *domain.Candidate) { c.Email = "ana.example.com" },
		"short phone":   func(c *domain.Candidate) { c.Phone = "1234567" },
		"phone letters": func(c *domain.Candidate) { c.Phone = "55123abc90" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validCandidate()
			mutate(c)
			err := uc.RegisterCandidate(context.Background(), c)
			appErr := assertAppError(t, err, http.StatusUnprocessableEntity)
			assert.NotEmpty(t, appErr.Details)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCandidateRoundTrip(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := s.candidates.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestRegisterCandidateIgnoresClientAssignment(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	c := validCandidate()
	forged := "v-forged"
	c.AssignedVacancyID = &forged
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))

	got, err := s.candidates.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Assignment())
}

func TestUpdateCandidate(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))

	t.Run("empty patch", func(t *testing.T) {
		_, err := s.candidates.UpdateCandidate(ctx, c.ID, &domain.CandidatePatch{})
		assertAppError(t, err, http.StatusBadRequest)
	})

	t.Run("invalid field", func(t *testing.T) {
		bad := "nope"
		_, err := s.candidates.UpdateCandidate(ctx, c.ID, &domain.CandidatePatch{Email: &bad})
		assertAppError(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("missing candidate", func(t *testing.T) {
		name := "Luis"
		_, err := s.candidates.UpdateCandidate(ctx, "missing", &domain.CandidatePatch{Name: &name})
		assertAppError(t, err, http.StatusNotFound)
	})

	t.Run("overwrites only given fields", func(t *testing.T) {
		name := "Ana María Pérez"
		got, err := s.candidates.UpdateCandidate(ctx, c.ID, &domain.CandidatePatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.Equal(t, c.Email, got.Email)
	})
}

func TestListCandidatesStoreFailure(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	mockRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))
	uc := usecase.NewCandidateUsecase(mockRepo, nil, validation.Validator(), audit.Nop())

	_, err := uc.ListCandidates(context.Background())
	assertAppError(t, err, http.StatusServiceUnavailable)
}

func TestRegisterVacancyValidation(t *testing.T) {
	mockRepo := new(MockVacancyRepo)
	uc := usecase.NewVacancyUsecase(mockRepo, new(MockCandidateRepo), validation.Validator(), audit.Nop())

	cases := map[string]func(v *domain.Vacancy){
		"no requirements":      func(v *domain.Vacancy) { v.Requirements = nil },
		"blank title":          func(v *domain.Vacancy) { v.Title = "" },
		"blank description":    func(v *domain.Vacancy) { v.Description = " " },
		"blank salary":         func(v *domain.Vacancy) { v.Salary = "" },
		"blank employment":     func(v *domain.Vacancy) { v.EmploymentType = "" },
		"blank location":       func(v *domain.Vacancy) { v.Location = "" },
		"requirement no level": func(v *domain.Vacancy) { v.Requirements[0].Level = "" },
		"negative years":       func(v *domain.Vacancy) { v.Requirements[0].Years = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			v := backendDev()
			mutate(v)
			err := uc.RegisterVacancy(context.Background(), v)
			assertAppError(t, err, http.StatusUnprocessableEntity)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	t.Run("valid vacancy defaults to Disponible", func(t *testing.T) {
		v := backendDev()
		mockRepo.On("Create", mock.Anything, v).Return(nil).Once()
		require.NoError(t, uc.RegisterVacancy(context.Background(), v))
		assert.Equal(t, domain.StatusAvailable, v.Status)
		mockRepo.AssertExpectations(t)
	})

	for _, status := range []domain.VacancyStatus{domain.StatusUnavailable, "Cerrada"} {
		t.Run("client status "+string(status)+" is overridden", func(t *testing.T) {
			v := backendDev()
			v.Status = status
			mockRepo.On("Create", mock.Anything, v).Return(nil).Once()
			require.NoError(t, uc.RegisterVacancy(context.Background(), v))
			assert.Equal(t, domain.StatusAvailable, v.Status)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestVacancyEndToEndToggle(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	v := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, v))

	list, err := s.vacancies.ListVacancies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Backend Dev", list[0].Title)
	assert.Equal(t, domain.StatusAvailable, list[0].Status)

	toggled, err := s.vacancies.ToggleStatus(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, toggled.Status)

	stored, err := s.vacancies.GetVacancy(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnavailable, stored.Status)

	toggled, err = s.vacancies.ToggleStatus(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, toggled.Status)

	_, err = s.vacancies.ToggleStatus(ctx, "missing")
	assertAppError(t, err, http.StatusNotFound)
}

func TestVacancyReadsSkipUndecodableDocuments(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	require.NoError(t, s.vacancies.RegisterVacancy(ctx, backendDev()))
	_, err := s.store.Create(ctx, docstore.Vacancies, map[string]any{
		"titulo":     "Old",
		"estado":     "No disponible",
		"Requisitos": []any{map[string]any{"AñosExperiencia": "tres"}},
	})
	require.NoError(t, err)

	list, err := s.vacancies.ListVacancies(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	stats, err := s.stats.CurrentVacancyStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 1, stats.Total)
}

func TestAssign(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))
	first := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, first))
	second := backendDev()
	second.Title = "Data Engineer"
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, second))

	a, err := s.assignments.Assign(ctx, c.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Assignment{CandidateID: c.ID, VacancyID: first.ID, VacancyTitle: "Backend Dev"}, a)

	got, err := s.candidates.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Title, *got.AssignedPosition)
	assert.Equal(t, first.ID, *got.AssignedVacancyID)

	_, err = s.assignments.Assign(ctx, c.ID, second.ID)
	require.NoError(t, err)

	views, err := s.assignments.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1, "only the latest assignment is visible")
	assert.Equal(t, second.ID, views[0].VacancyID)
	assert.Equal(t, "Data Engineer", views[0].VacancyTitle)
	assert.False(t, views[0].Dangling)

	byVacancy, err := s.vacancies.ListVacancyCandidates(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, byVacancy)

	require.NoError(t, s.assignments.Unassign(ctx, c.ID))
	views, err = s.assignments.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestAssignNotFound(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))
	v := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, v))

	_, err := s.assignments.Assign(ctx, c.ID, "missing")
	appErr := assertAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Vacancy not found", appErr.Message)

	_, err = s.assignments.Assign(ctx, "missing", v.ID)
	appErr = assertAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Candidate not found", appErr.Message)

	_, err = s.assignments.Assign(ctx, "", "")
	appErr = assertAppError(t, err, http.StatusUnprocessableEntity)
	assert.Len(t, appErr.Details, 2)
}

func TestAssignWriteFailureAfterRead(t *testing.T) {
	candidates := new(MockCandidateRepo)
	vacancies := new(MockVacancyRepo)
	uc := usecase.NewAssignmentUsecase(candidates, vacancies, audit.Nop())

	vacancies.On("GetByID", mock.Anything, "v1").Return(&domain.Vacancy{ID: "v1", Title: "QA"}, nil)
	candidates.On("SetAssignment", mock.Anything, "c1", &domain.Assignment{CandidateID: "c1", VacancyID: "v1", VacancyTitle: "QA"}).
		Return(errors.New("write timeout"))

	_, err := uc.Assign(context.Background(), "c1", "v1")
	assertAppError(t, err, http.StatusServiceUnavailable)
	vacancies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	candidates.AssertExpectations(t)
}

func TestDeleteVacancyLeavesDanglingAssignment(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))
	v := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, v))
	_, err := s.assignments.Assign(ctx, c.ID, v.ID)
	require.NoError(t, err)

	require.NoError(t, s.vacancies.DeleteVacancy(ctx, v.ID))

	got, err := s.candidates.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedVacancyID)
	assert.Equal(t, v.ID, *got.AssignedVacancyID)

	views, err := s.assignments.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Dangling)
	assert.Equal(t, c.Name, views[0].CandidateName)
}

func TestCountByStatus(t *testing.T) {
	statuses := []domain.VacancyStatus{
		"Disponible", "Disponible", "Disponible",
		"No disponible", "No disponible",
		"No Disponible", "disponible", "",
	}
	vacancies := make([]domain.Vacancy, 0, len(statuses))
	for _, s := range statuses {
		vacancies = append(vacancies, domain.Vacancy{Status: s})
	}
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	stats := usecase.CountByStatus(vacancies, domain.DefaultStatusBuckets(), asOf)
	assert.Equal(t, 3, stats.Available)
	assert.Equal(t, 2, stats.Unavailable)
	assert.Equal(t, 3, stats.Other, "\"No Disponible\" is counted in neither bucket")
	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, asOf, stats.AsOf)

	canonical := domain.StatusBuckets{Available: "Disponible", Unavailable: "No Disponible"}
	stats = usecase.CountByStatus(vacancies, canonical, asOf)
	assert.Equal(t, 1, stats.Unavailable)
}

func TestSubscribeVacancyStats(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		latest domain.VacancyStats
		calls  int
	)
	sub, err := s.stats.SubscribeVacancyStats(ctx, func(stats domain.VacancyStats) {
		mu.Lock()
		latest = stats
		calls++
		mu.Unlock()
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 1
	}, time.Second, 5*time.Millisecond)

	v := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, v))
	other := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, other))
	_, err = s.vacancies.ToggleStatus(ctx, other.ID)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return latest.Total == 2 && latest.Available == 1 && latest.Other == 1 && latest.Unavailable == 0
	}, time.Second, 5*time.Millisecond)

	sub.Cancel()
	sub.Cancel()
	<-sub.Done()
	assert.NoError(t, sub.Err())
	assert.Zero(t, s.store.Subscribers(docstore.Vacancies))
}

func TestSubscribeVacancyStatsWatchFailure(t *testing.T) {
	vacancies := new(MockVacancyRepo)
	vacancies.On("Watch", mock.Anything, mock.Anything).Return(nil, errors.New("change streams unsupported"))
	uc := usecase.NewStatisticsUsecase(vacancies, new(MockCandidateRepo), nil, domain.DefaultStatusBuckets())

	_, err := uc.SubscribeVacancyStats(context.Background(), func(domain.VacancyStats) {})
	assertAppError(t, err, http.StatusServiceUnavailable)
}

func TestRefreshAndSummary(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()

	assert.Equal(t, usecase.RefreshMessage, s.stats.Refresh(ctx))

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))
	require.NoError(t, s.candidates.RegisterCandidate(ctx, validCandidate()))
	v := backendDev()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, v))
	_, err := s.assignments.Assign(ctx, c.ID, v.ID)
	require.NoError(t, err)
	_, err = s.store.Create(ctx, docstore.Assignments, map[string]any{"idCandidato": c.ID})
	require.NoError(t, err)

	summary, err := s.stats.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, &domain.Summary{
		Vacancies:          1,
		Candidates:         2,
		AssignmentRecords:  1,
		AssignedCandidates: 1,
	}, summary)
}

func TestRenderVacancyReport(t *testing.T) {
	s := newServices(nil)
	ctx := context.Background()
	require.NoError(t, s.vacancies.RegisterVacancy(ctx, backendDev()))

	html, err := s.reports.RenderVacancyReport(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportHTML, html.Format)
	assert.True(t, strings.HasSuffix(html.Filename, ".html"))
	assert.Contains(t, string(html.Body), "<td>Disponibles</td>")
	assert.Equal(t, 1, html.Stats.Available)

	xlsx, err := s.reports.RenderVacancyReport(ctx, domain.ReportXLSX)
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx.Body)

	_, err = s.reports.RenderVacancyReport(ctx, "pdf")
	assertAppError(t, err, http.StatusBadRequest)
}

func TestShareVacancyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("without storage", func(t *testing.T) {
		s := newServices(nil)
		_, err := s.reports.ShareVacancyReport(ctx, domain.ReportHTML)
		assertAppError(t, err, http.StatusServiceUnavailable)
		assert.ErrorIs(t, err, domain.ErrSharingUnavailable)
	})

	t.Run("uploads and presigns", func(t *testing.T) {
		storage := new(MockFileStorage)
		storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "reports/") && strings.HasSuffix(key, ".xlsx")
		}), mock.Anything, mock.Anything).Return(nil)
		storage.On("PresignGet", mock.Anything, mock.Anything, 30*time.Minute).Return("https://signed.example.com/r", nil)

		s := newServices(storage)
		shared, err := s.reports.ShareVacancyReport(ctx, domain.ReportXLSX)
		require.NoError(t, err)
		assert.Equal(t, "https://signed.example.com/r", shared.URL)
		assert.Equal(t, domain.ReportXLSX, shared.Format)
		assert.True(t, shared.ExpiresAt.After(time.Now()))
		storage.AssertExpectations(t)
	})
}

func TestUploadProfileImage(t *testing.T) {
	ctx := context.Background()
	storage := new(MockFileStorage)
	storage.On("Upload", mock.Anything, mock.Anything, "image/jpeg", mock.Anything).Return(nil)
	s := newServices(storage)

	c := validCandidate()
	require.NoError(t, s.candidates.RegisterCandidate(ctx, c))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1024, 768))))

	got, err := s.candidates.UploadProfileImage(ctx, c.ID, buf.Bytes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.ImageURI, "https://files.example.com/candidates/"+c.ID+"/profile-"))

	_, err = s.candidates.UploadProfileImage(ctx, c.ID, []byte("not an image"))
	assertAppError(t, err, http.StatusBadRequest)

	_, err = newServices(nil).candidates.UploadProfileImage(ctx, c.ID, buf.Bytes())
	assertAppError(t, err, http.StatusServiceUnavailable)

	// A 1x1 PNG whose header is rewritten to claim 12000x12000.
	buf.Reset()
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	huge := buf.Bytes()
	binary.BigEndian.PutUint32(huge[16:20], 12000)
	binary.BigEndian.PutUint32(huge[20:24], 12000)
	binary.BigEndian.PutUint32(huge[29:33], crc32.ChecksumIEEE(huge[12:29]))
	_, err = s.candidates.UploadProfileImage(ctx, c.ID, huge)
	assertAppError(t, err, http.StatusRequestEntityTooLarge)
	storage.AssertNumberOfCalls(t, "Upload", 1)
}

func TestHealthCheck(t *testing.T) {
	status, ok := usecase.NewHealthUsecase(docstore.NewMemoryStore()).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "ok", status["status"])
}
