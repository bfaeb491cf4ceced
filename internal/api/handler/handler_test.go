package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
	jwtpkg "github.com/amenibouabdallah/JOBS-sub001/pkg/jwt"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	currentResult *dto.UserResponse
	currentErr    error
	changePassErr error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwtpkg.Claims) error {
	return m.logoutErr
}
func (m *mockAuthService) CurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.currentResult, m.currentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock ZoneService ──

type mockZoneService struct {
	generateResult []dto.ZoneResponse
	generateErr    error
	listResult     []dto.ZoneResponse
	listErr        error
	getResult      *dto.ZoneDetailResponse
	getErr         error
	reserveResult  *dto.ReserveZoneResponse
	reserveErr     error
	assignResult   *dto.ZoneResponse
	assignErr      error
}

func (m *mockZoneService) Generate(_ context.Context, _ *dto.GenerateZonesRequest, _ string) ([]dto.ZoneResponse, error) {
	return m.generateResult, m.generateErr
}
func (m *mockZoneService) List(_ context.Context) ([]dto.ZoneResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockZoneService) GetByID(_ context.Context, _ string) (*dto.ZoneDetailResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockZoneService) Reserve(_ context.Context, _, _, _ string) (*dto.ReserveZoneResponse, error) {
	return m.reserveResult, m.reserveErr
}
func (m *mockZoneService) AssignJe(_ context.Context, _, _, _ string) (*dto.ZoneResponse, error) {
	return m.assignResult, m.assignErr
}

// ── Mock ParticipantService ──

type mockParticipantService struct {
	createResult  *dto.ParticipantResponse
	createErr     error
	getResult     *dto.ParticipantResponse
	getErr        error
	listByJe      []dto.ParticipantResponse
	listAll       []dto.ParticipantResponse
	listErr       error
	updateResult  *dto.ParticipantResponse
	updateErr     error
	paymentResult *dto.ParticipantResponse
	paymentErr    error
	deleteErr     error
}

func (m *mockParticipantService) Create(_ context.Context, _ *dto.CreateParticipantRequest, _ string) (*dto.ParticipantResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockParticipantService) GetByID(_ context.Context, _ string) (*dto.ParticipantResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockParticipantService) ListByJe(_ context.Context, _ string) ([]dto.ParticipantResponse, error) {
	return m.listByJe, m.listErr
}
func (m *mockParticipantService) ListAll(_ context.Context) ([]dto.ParticipantResponse, error) {
	return m.listAll, m.listErr
}
func (m *mockParticipantService) Update(_ context.Context, _ string, _ *dto.UpdateParticipantRequest, _ string) (*dto.ParticipantResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockParticipantService) UpdatePayment(_ context.Context, _ string, _ *dto.UpdatePaymentRequest, _ string) (*dto.ParticipantResponse, error) {
	return m.paymentResult, m.paymentErr
}
func (m *mockParticipantService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock PlaceService ──

type mockPlaceService struct {
	reserveResult *dto.ParticipantResponse
	reserveErr    error
	statsResult   *dto.PlaceStatsResponse
	statsErr      error
}

func (m *mockPlaceService) Reserve(_ context.Context, _ string, _ int, _ string) (*dto.ParticipantResponse, error) {
	return m.reserveResult, m.reserveErr
}
func (m *mockPlaceService) Stats(_ context.Context, _ string) (*dto.PlaceStatsResponse, error) {
	return m.statsResult, m.statsErr
}

// ── Mock SelectionService ──

type mockSelectionService struct {
	selectResult *dto.SelectActivityResponse
	selectErr    error
	deselectErr  error
	listResult   []dto.SelectionResponse
	listErr      error
	ensureResult *dto.EnsureRequiredResponse
	ensureErr    error
}

func (m *mockSelectionService) Select(_ context.Context, _, _, _ string) (*dto.SelectActivityResponse, error) {
	return m.selectResult, m.selectErr
}
func (m *mockSelectionService) Deselect(_ context.Context, _, _ string) error {
	return m.deselectErr
}
func (m *mockSelectionService) ListForParticipant(_ context.Context, _ string) ([]dto.SelectionResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockSelectionService) EnsureRequired(_ context.Context, _, _ string) (*dto.EnsureRequiredResponse, error) {
	return m.ensureResult, m.ensureErr
}

// ── Mock JobService ──

type mockJobService struct {
	createResult *dto.JobResponse
	createErr    error
	getResult    *dto.JobResponse
	getErr       error
	listResult   []dto.JobResponse
	listErr      error
	updateResult *dto.JobResponse
	updateErr    error
	deleteErr    error

	lastIncludeUnpublished bool
}

func (m *mockJobService) Create(_ context.Context, _ *dto.CreateJobRequest, _ string) (*dto.JobResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockJobService) GetByID(_ context.Context, _ string) (*dto.JobResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockJobService) List(_ context.Context, includeUnpublished bool) ([]dto.JobResponse, error) {
	m.lastIncludeUnpublished = includeUnpublished
	return m.listResult, m.listErr
}
func (m *mockJobService) Update(_ context.Context, _ string, _ *dto.UpdateJobRequest, _ string) (*dto.JobResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockJobService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	csvData  []byte
	xlsxData []byte
	icsData  []byte
	err      error
}

func (m *mockExportService) PlacementsCSV(_ context.Context) ([]byte, error) {
	return m.csvData, m.err
}
func (m *mockExportService) PlacementsXLSX(_ context.Context) ([]byte, error) {
	return m.xlsxData, m.err
}
func (m *mockExportService) ProgramICS(_ context.Context) ([]byte, error) {
	return m.icsData, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func setAdmin(c *gin.Context) {
	c.Set("user_id", "test-admin-id")
	c.Set("role", "admin")
	c.Set("je_id", "")
	c.Set("participant_id", "")
}

func setJeAccount(c *gin.Context, jeID string) {
	c.Set("user_id", "test-je-user-id")
	c.Set("role", "je")
	c.Set("je_id", jeID)
	c.Set("participant_id", "")
}

func setParticipantAccount(c *gin.Context, participantID string) {
	c.Set("user_id", "test-participant-user-id")
	c.Set("role", "participant")
	c.Set("je_id", "")
	c.Set("participant_id", participantID)
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "contact@alpha.example",
		Password: "Secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "contact@alpha.example",
		Password: "WrongPass1",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Refresh_NotRefreshToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrNotRefreshToken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/refresh", jsonBody(map[string]string{
		"refresh_token": "an-access-token",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/refresh", h.Refresh)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ZoneHandler Tests
// ═══════════════════════════════════════════════════════════

func TestZoneHandler_Reserve_OwnJe(t *testing.T) {
	mock := &mockZoneService{
		reserveResult: &dto.ReserveZoneResponse{
			Zone: dto.ZoneResponse{ID: "zone-1", Name: "A1"},
		},
	}
	h := NewZoneHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/zones/zone-1/reserve", jsonBody(map[string]string{
		"je_id": "2da1f2a8-0000-4000-8000-000000000001",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/zones/:id/reserve", func(c *gin.Context) {
		setJeAccount(c, "2da1f2a8-0000-4000-8000-000000000001")
		h.Reserve(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestZoneHandler_Reserve_OtherJeForbidden(t *testing.T) {
	h := NewZoneHandler(&mockZoneService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/zones/zone-1/reserve", jsonBody(map[string]string{
		"je_id": "2da1f2a8-0000-4000-8000-000000000002",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/zones/:id/reserve", func(c *gin.Context) {
		setJeAccount(c, "2da1f2a8-0000-4000-8000-000000000001")
		h.Reserve(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10003 {
		t.Errorf("expected error code 10003, got %d", resp.Code)
	}
}

func TestZoneHandler_Reserve_ZoneTaken(t *testing.T) {
	h := NewZoneHandler(&mockZoneService{reserveErr: apperrors.ErrZoneTaken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/zones/zone-1/reserve", jsonBody(map[string]string{
		"je_id": "2da1f2a8-0000-4000-8000-000000000001",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/zones/:id/reserve", func(c *gin.Context) {
		setAdmin(c)
		h.Reserve(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12003 {
		t.Errorf("expected error code 12003, got %d", resp.Code)
	}
}

func TestZoneHandler_Generate_InvalidCount(t *testing.T) {
	h := NewZoneHandler(&mockZoneService{generateErr: service.ErrInvalidZoneCount})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/zones/generate", jsonBody(dto.GenerateZonesRequest{Count: 3}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/zones/generate", func(c *gin.Context) {
		setAdmin(c)
		h.Generate(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ParticipantHandler Tests
// ═══════════════════════════════════════════════════════════

func participantFixture() *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:            "p-1",
		JeID:          "2da1f2a8-0000-4000-8000-000000000001",
		FirstName:     "Marie",
		LastName:      "Durand",
		Email:         "marie@alpha.example",
		Role:          "MEMBER",
		PaymentStatus: "paid",
	}
}

func TestParticipantHandler_ReservePlace_Success(t *testing.T) {
	participant := participantFixture()
	place := "A1_2"
	updated := *participant
	updated.PlaceName = &place

	h := NewParticipantHandler(
		&mockParticipantService{getResult: participant},
		&mockPlaceService{reserveResult: &updated},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/place", jsonBody(dto.ReservePlaceRequest{PlaceNumber: 2}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/place", func(c *gin.Context) {
		setParticipantAccount(c, "p-1")
		h.ReservePlace(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestParticipantHandler_ReservePlace_OtherParticipantForbidden(t *testing.T) {
	h := NewParticipantHandler(
		&mockParticipantService{getResult: participantFixture()},
		&mockPlaceService{},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/place", jsonBody(dto.ReservePlaceRequest{PlaceNumber: 1}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/place", func(c *gin.Context) {
		setParticipantAccount(c, "p-2")
		h.ReservePlace(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestParticipantHandler_ReservePlace_JeAccountForMember(t *testing.T) {
	participant := participantFixture()
	h := NewParticipantHandler(
		&mockParticipantService{getResult: participant},
		&mockPlaceService{reserveResult: participant},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/place", jsonBody(dto.ReservePlaceRequest{PlaceNumber: 1}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/place", func(c *gin.Context) {
		setJeAccount(c, participant.JeID)
		h.ReservePlace(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestParticipantHandler_ReservePlace_PaymentRequired(t *testing.T) {
	h := NewParticipantHandler(
		&mockParticipantService{getResult: participantFixture()},
		&mockPlaceService{reserveErr: service.ErrPaymentRequired},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/place", jsonBody(dto.ReservePlaceRequest{PlaceNumber: 1}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/place", func(c *gin.Context) {
		setAdmin(c)
		h.ReservePlace(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14003 {
		t.Errorf("expected error code 14003, got %d", resp.Code)
	}
}

func TestParticipantHandler_ReservePlace_Taken(t *testing.T) {
	h := NewParticipantHandler(
		&mockParticipantService{getResult: participantFixture()},
		&mockPlaceService{reserveErr: apperrors.ErrPlaceTaken},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/place", jsonBody(dto.ReservePlaceRequest{PlaceNumber: 1}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/place", func(c *gin.Context) {
		setAdmin(c)
		h.ReservePlace(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestParticipantHandler_List_NonAdminWithoutJe(t *testing.T) {
	h := NewParticipantHandler(&mockParticipantService{}, &mockPlaceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/participants", nil)

	r := gin.New()
	r.GET("/participants", func(c *gin.Context) {
		setParticipantAccount(c, "p-1")
		h.List(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SelectionHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSelectionHandler_Select_Success(t *testing.T) {
	h := NewSelectionHandler(
		&mockSelectionService{
			selectResult: &dto.SelectActivityResponse{
				Selection: dto.SelectionResponse{ID: "sel-1", ActivityID: "act-1"},
			},
		},
		&mockParticipantService{getResult: participantFixture()},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/selections", jsonBody(dto.SelectActivityRequest{
		ActivityID: "7da1f2a8-0000-4000-8000-000000000001",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/selections", func(c *gin.Context) {
		setParticipantAccount(c, "p-1")
		h.Select(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestSelectionHandler_Select_Excluded(t *testing.T) {
	h := NewSelectionHandler(
		&mockSelectionService{selectErr: service.ErrActivityExcluded},
		&mockParticipantService{getResult: participantFixture()},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/selections", jsonBody(dto.SelectActivityRequest{
		ActivityID: "7da1f2a8-0000-4000-8000-000000000001",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/selections", func(c *gin.Context) {
		setAdmin(c)
		h.Select(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15003 {
		t.Errorf("expected error code 15003, got %d", resp.Code)
	}
}

func TestSelectionHandler_Select_Full(t *testing.T) {
	h := NewSelectionHandler(
		&mockSelectionService{selectErr: apperrors.ErrActivityFull},
		&mockParticipantService{getResult: participantFixture()},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/participants/p-1/selections", jsonBody(dto.SelectActivityRequest{
		ActivityID: "7da1f2a8-0000-4000-8000-000000000001",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/participants/:id/selections", func(c *gin.Context) {
		setAdmin(c)
		h.Select(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15004 {
		t.Errorf("expected error code 15004, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// JobHandler Tests
// ═══════════════════════════════════════════════════════════

func TestJobHandler_List_AllRequiresAdmin(t *testing.T) {
	mock := &mockJobService{}
	h := NewJobHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs?all=true", nil)

	r := gin.New()
	r.GET("/jobs", func(c *gin.Context) {
		setParticipantAccount(c, "p-1")
		h.List(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestJobHandler_List_AllAsAdmin(t *testing.T) {
	mock := &mockJobService{listResult: []dto.JobResponse{}}
	h := NewJobHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jobs?all=true", nil)

	r := gin.New()
	r.GET("/jobs", func(c *gin.Context) {
		setAdmin(c)
		h.List(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !mock.lastIncludeUnpublished {
		t.Error("expected the admin listing to include unpublished offers")
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_PlacementsCSV(t *testing.T) {
	csv := []byte("first_name,last_name,place,je,zone\n")
	h := NewExportHandler(&mockExportService{csvData: csv})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/placements.csv", nil)

	r := gin.New()
	r.GET("/export/placements.csv", h.PlacementsCSV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !bytes.Equal(w.Body.Bytes(), csv) {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("unexpected content type: %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected a Content-Disposition header")
	}
}

func TestExportHandler_ProgramICS(t *testing.T) {
	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	h := NewExportHandler(&mockExportService{icsData: ics})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/program.ics", nil)

	r := gin.New()
	r.GET("/export/program.ics", h.ProgramICS)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("unexpected content type: %q", ct)
	}
}
