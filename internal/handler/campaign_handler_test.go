package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/campman/internal/campaign"
	"github.com/hitoshi/campman/internal/middleware"
	"github.com/hitoshi/campman/internal/model"
)

// mockCampaignService はテスト用のCampaignServiceInterface実装。
type mockCampaignService struct {
	createFn func(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error)
	listFn   func(ctx context.Context, userID int64) ([]*model.Campaign, error)
	updateFn func(ctx context.Context, userID, campaignID int64, input campaign.UpdateInput) (*model.Campaign, error)
	deleteFn func(ctx context.Context, userID, campaignID int64) error
}

func (m *mockCampaignService) Create(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error) {
	return m.createFn(ctx, userID, input)
}

func (m *mockCampaignService) List(ctx context.Context, userID int64) ([]*model.Campaign, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCampaignService) Update(ctx context.Context, userID, campaignID int64, input campaign.UpdateInput) (*model.Campaign, error) {
	return m.updateFn(ctx, userID, campaignID, input)
}

func (m *mockCampaignService) Delete(ctx context.Context, userID, campaignID int64) error {
	return m.deleteFn(ctx, userID, campaignID)
}

func testCampaign() *model.Campaign {
	return &model.Campaign{
		ID:             100,
		Name:           "Summer Sale",
		Status:         model.CampaignStatusActive,
		UserID:         1,
		Clicks:         0,
		Conversions:    0,
		ConversionRate: 0,
		TargetAudience: "Young adults",
		CreatedAt:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

// campaignRouter はパスパラメータの解決込みでハンドラーをテストするためのルーター。
func campaignRouter(h *CampaignHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})
	return r
}

func TestCampaignHandler_Create_Returns201(t *testing.T) {
	service := &mockCampaignService{
		createFn: func(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error) {
			if userID != 1 {
				t.Errorf("userID = %d, want 1", userID)
			}
			if input.Name != "Summer Sale" {
				t.Errorf("input.Name = %q, want Summer Sale", input.Name)
			}
			return testCampaign(), nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	body := `{"name":"Summer Sale","targetAudience":"Young adults"}`
	req := httptest.NewRequest(http.MethodPost, "/api/campaigns", strings.NewReader(body))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["name"] != "Summer Sale" {
		t.Errorf("name = %v, want Summer Sale", got["name"])
	}
	if got["status"] != "active" {
		t.Errorf("status = %v, want active", got["status"])
	}
	if got["conversionRate"] != float64(0) {
		t.Errorf("conversionRate = %v, want 0", got["conversionRate"])
	}
	if got["userId"] != float64(1) {
		t.Errorf("userId = %v, want 1", got["userId"])
	}
}

func TestCampaignHandler_Create_ValidationErrorReturns400(t *testing.T) {
	service := &mockCampaignService{
		createFn: func(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error) {
			return nil, model.NewValidationError([]model.FieldError{
				{Field: "name", Message: "Campaign name is required"},
			})
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/campaigns", strings.NewReader(`{"targetAudience":"Anyone"}`))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	var got struct {
		Errors []model.FieldError `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got.Errors) != 1 || got.Errors[0].Field != "name" {
		t.Errorf("errors = %+v, want single error on name", got.Errors)
	}
}

func TestCampaignHandler_Create_WithoutAuthReturns401(t *testing.T) {
	service := &mockCampaignService{
		createFn: func(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error) {
			t.Fatal("service should not be called without authentication")
			return nil, nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/campaigns", strings.NewReader(`{"name":"x"}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestCampaignHandler_List_ReturnsOwnedCampaigns(t *testing.T) {
	service := &mockCampaignService{
		listFn: func(ctx context.Context, userID int64) ([]*model.Campaign, error) {
			c1 := testCampaign()
			c2 := testCampaign()
			c2.ID = 101
			c2.Name = "Winter Sale"
			return []*model.Campaign{c1, c2}, nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var got []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("campaigns length = %d, want 2", len(got))
	}
	if got[1]["name"] != "Winter Sale" {
		t.Errorf("campaigns[1].name = %v", got[1]["name"])
	}
}

func TestCampaignHandler_List_EmptyReturnsArrayNotNull(t *testing.T) {
	service := &mockCampaignService{
		listFn: func(ctx context.Context, userID int64) ([]*model.Campaign, error) {
			return nil, nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	body := strings.TrimSpace(w.Body.String())
	if body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestCampaignHandler_Update_Returns200WithRecalculatedRate(t *testing.T) {
	service := &mockCampaignService{
		updateFn: func(ctx context.Context, userID, campaignID int64, input campaign.UpdateInput) (*model.Campaign, error) {
			if campaignID != 100 {
				t.Errorf("campaignID = %d, want 100", campaignID)
			}
			if input.Clicks == nil || *input.Clicks != 200 {
				t.Errorf("input.Clicks = %v, want 200", input.Clicks)
			}
			c := testCampaign()
			c.Clicks = 200
			c.Conversions = 40
			c.ConversionRate = 20.0
			return c, nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	body := `{"clicks":200,"conversions":40}`
	req := httptest.NewRequest(http.MethodPut, "/api/campaigns/100", strings.NewReader(body))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["conversionRate"] != float64(20) {
		t.Errorf("conversionRate = %v, want 20", got["conversionRate"])
	}
}

func TestCampaignHandler_Update_NotOwnedReturns404(t *testing.T) {
	service := &mockCampaignService{
		updateFn: func(ctx context.Context, userID, campaignID int64, input campaign.UpdateInput) (*model.Campaign, error) {
			return nil, model.NewCampaignNotFoundError(campaignID)
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodPut, "/api/campaigns/100", strings.NewReader(`{"name":"Hijacked"}`))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 2))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["error"] != "Campaign not found" {
		t.Errorf("error = %q, want %q", got["error"], "Campaign not found")
	}
}

func TestCampaignHandler_Update_NonNumericIDReturns404(t *testing.T) {
	service := &mockCampaignService{
		updateFn: func(ctx context.Context, userID, campaignID int64, input campaign.UpdateInput) (*model.Campaign, error) {
			t.Fatal("service should not be called for a non-numeric ID")
			return nil, nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodPut, "/api/campaigns/abc", strings.NewReader(`{"name":"x"}`))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

func TestCampaignHandler_Delete_Returns200WithMessage(t *testing.T) {
	deleted := false
	service := &mockCampaignService{
		deleteFn: func(ctx context.Context, userID, campaignID int64) error {
			deleted = true
			if campaignID != 100 {
				t.Errorf("campaignID = %d, want 100", campaignID)
			}
			return nil
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/campaigns/100", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !deleted {
		t.Error("service.Delete should have been called")
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["message"] != "Campaign deleted successfully" {
		t.Errorf("message = %q", got["message"])
	}
}

func TestCampaignHandler_Delete_NotOwnedReturns404(t *testing.T) {
	service := &mockCampaignService{
		deleteFn: func(ctx context.Context, userID, campaignID int64) error {
			return model.NewCampaignNotFoundError(campaignID)
		},
	}

	h := NewCampaignHandler(service, nil)
	router := campaignRouter(h)

	req := httptest.NewRequest(http.MethodDelete, "/api/campaigns/100", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 2))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

// --- メトリクス記録のテスト ---

type mockCampaignMetrics struct {
	created int
	deleted int
}

func (m *mockCampaignMetrics) RecordCampaignCreated() { m.created++ }
func (m *mockCampaignMetrics) RecordCampaignDeleted() { m.deleted++ }

func TestCampaignHandler_RecordsMetrics(t *testing.T) {
	metrics := &mockCampaignMetrics{}
	service := &mockCampaignService{
		createFn: func(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error) {
			return testCampaign(), nil
		},
		deleteFn: func(ctx context.Context, userID, campaignID int64) error {
			return nil
		},
	}

	h := NewCampaignHandler(service, metrics)
	router := campaignRouter(h)

	createReq := httptest.NewRequest(http.MethodPost, "/api/campaigns", strings.NewReader(`{"name":"x"}`))
	createReq = createReq.WithContext(middleware.ContextWithUserID(createReq.Context(), 1))
	router.ServeHTTP(httptest.NewRecorder(), createReq)

	deleteReq := httptest.NewRequest(http.MethodDelete, "/api/campaigns/100", nil)
	deleteReq = deleteReq.WithContext(middleware.ContextWithUserID(deleteReq.Context(), 1))
	router.ServeHTTP(httptest.NewRecorder(), deleteReq)

	if metrics.created != 1 {
		t.Errorf("campaign created count = %d, want 1", metrics.created)
	}
	if metrics.deleted != 1 {
		t.Errorf("campaign deleted count = %d, want 1", metrics.deleted)
	}
}
