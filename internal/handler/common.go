// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hitoshi/campman/internal/middleware"
	"github.com/hitoshi/campman/internal/model"
)

// userResponse はユーザー情報のAPIレスポンス。
// パスワードハッシュは絶対に含めない。
type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// campaignResponse はキャンペーン情報のAPIレスポンス。
type campaignResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	UserID         int64     `json:"userId"`
	Clicks         int       `json:"clicks"`
	Conversions    int       `json:"conversions"`
	ConversionRate float64   `json:"conversionRate"`
	TargetAudience string    `json:"targetAudience"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// toUserResponse はmodel.UserからAPIレスポンスに変換する。
func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// toCampaignResponse はmodel.CampaignからAPIレスポンスに変換する。
func toCampaignResponse(c *model.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		Name:           c.Name,
		Status:         string(c.Status),
		UserID:         c.UserID,
		Clicks:         c.Clicks,
		Conversions:    c.Conversions,
		ConversionRate: c.ConversionRate,
		TargetAudience: c.TargetAudience,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		middleware.WriteValidationErrors(w, validationErr.Errors)
		return
	}

	var authErr *model.AuthenticationError
	if errors.As(err, &authErr) {
		middleware.WriteError(w, http.StatusUnauthorized, authErr.Message)
		return
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		middleware.WriteError(w, http.StatusNotFound, "Campaign not found")
		return
	}

	// 分類できないエラーは内部サーバーエラーとして扱う。詳細はログのみに記録する
	slog.Error("internal server error", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}
