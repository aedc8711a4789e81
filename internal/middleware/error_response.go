package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/campman/internal/model"
)

// errorResponseBody は一般エラーレスポンスの統一フォーマット。
type errorResponseBody struct {
	Error string `json:"error"`
}

// validationResponseBody は入力検証エラーレスポンスの統一フォーマット。
// 違反したルールごとに1エントリを含む。
type validationResponseBody struct {
	Errors []model.FieldError `json:"errors"`
}

// WriteError は `{"error": ...}` 形式でHTTPエラーレスポンスを書き込む。
// すべてのAPIエンドポイントで一貫したエラーレスポンスを提供する。
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponseBody{Error: message})
}

// WriteValidationErrors は `{"errors": [...]}` 形式で400レスポンスを書き込む。
func WriteValidationErrors(w http.ResponseWriter, errs []model.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(validationResponseBody{Errors: errs})
}

// WriteInternalServerError は内部サーバーエラーの統一レスポンスを書き込む。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func WriteInternalServerError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}
