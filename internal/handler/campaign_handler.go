package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/campman/internal/campaign"
	"github.com/hitoshi/campman/internal/middleware"
	"github.com/hitoshi/campman/internal/model"
)

// CampaignServiceInterface はキャンペーンハンドラーが必要とするサービスインターフェース。
type CampaignServiceInterface interface {
	// Create は呼び出し元を所有者とする新しいキャンペーンを作成する。
	Create(ctx context.Context, userID int64, input campaign.CreateInput) (*model.Campaign, error)
	// List は呼び出し元が所有するキャンペーンの一覧を返す。
	List(ctx context.Context, userID int64) ([]*model.Campaign, error)
	// Update は呼び出し元が所有するキャンペーンを部分更新する。
	Update(ctx context.Context, userID, campaignID int64, input campaign.UpdateInput) (*model.Campaign, error)
	// Delete は呼び出し元が所有するキャンペーンを削除する。
	Delete(ctx context.Context, userID, campaignID int64) error
}

// CampaignMetrics はキャンペーンハンドラーが記録するメトリクスのインターフェース。
// metrics.Collectorの部分集合として定義する。nilの場合は記録しない。
type CampaignMetrics interface {
	RecordCampaignCreated()
	RecordCampaignDeleted()
}

// CampaignHandler はキャンペーン管理のHTTPハンドラー。
type CampaignHandler struct {
	service CampaignServiceInterface
	metrics CampaignMetrics
}

// NewCampaignHandler はCampaignHandlerを生成する。metricsはnilでもよい。
func NewCampaignHandler(service CampaignServiceInterface, metrics CampaignMetrics) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		metrics: metrics,
	}
}

// createCampaignRequest はキャンペーン作成リクエストのボディ。
type createCampaignRequest struct {
	Name           string `json:"name"`
	TargetAudience string `json:"targetAudience"`
	Status         string `json:"status"`
}

// updateCampaignRequest はキャンペーン部分更新リクエストのボディ。
// 欠落フィールドと明示的なゼロ値を区別するためポインタにする。
type updateCampaignRequest struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Clicks      *int    `json:"clicks"`
	Conversions *int    `json:"conversions"`
}

// Create はキャンペーン作成を処理する。
// POST /api/campaigns
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		middleware.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), userID, campaign.CreateInput{
		Name:           req.Name,
		TargetAudience: req.TargetAudience,
		Status:         req.Status,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordCampaignCreated()
	}

	writeJSON(w, http.StatusCreated, toCampaignResponse(created))
}

// List は呼び出し元が所有するキャンペーン一覧を返す。
// GET /api/campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		middleware.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	campaigns, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// 所有キャンペーンが0件でも空配列を返す。nullにはしない
	responses := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		responses = append(responses, toCampaignResponse(c))
	}

	writeJSON(w, http.StatusOK, responses)
}

// Update はキャンペーンの部分更新を処理する。
// PUT /api/campaigns/:id
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		middleware.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	campaignID, ok := parseCampaignID(w, r)
	if !ok {
		return
	}

	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), userID, campaignID, campaign.UpdateInput{
		Name:        req.Name,
		Status:      req.Status,
		Clicks:      req.Clicks,
		Conversions: req.Conversions,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCampaignResponse(updated))
}

// Delete はキャンペーン削除を処理する。
// DELETE /api/campaigns/:id
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		middleware.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	campaignID, ok := parseCampaignID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, campaignID); err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordCampaignDeleted()
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted successfully"})
}

// parseCampaignID はパスパラメータからキャンペーンIDを取り出す。
// 数値でないIDは存在しないIDと同様に404として扱う。
func parseCampaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.WriteError(w, http.StatusNotFound, "Campaign not found")
		return 0, false
	}
	return id, true
}
