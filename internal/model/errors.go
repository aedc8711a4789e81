// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"strings"
)

// FieldError は単一フィールドの入力検証エラーを表す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError は入力検証エラーの集合を表す。
// すべてのルールを評価した結果を保持する。最初の違反で打ち切らない。
type ValidationError struct {
	Errors []FieldError
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError は検証エラーを生成する。
func NewValidationError(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError はレコードが存在しない、または呼び出し元の所有物でないことを表す。
// 非所有者へ存在有無を漏らさないため、両者を外部から区別できない単一のエラーにする。
type NotFoundError struct {
	Resource string
	ID       int64
}

// Error はerrorインターフェースを実装する。
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Resource, e.ID)
}

// NewCampaignNotFoundError はキャンペーン未検出エラーを生成する。
func NewCampaignNotFoundError(id int64) *NotFoundError {
	return &NotFoundError{Resource: "campaign", ID: id}
}

// AuthenticationError は認証失敗を表す。
// 未知のメールアドレスとパスワード不一致は同一のエラーとして報告する。
type AuthenticationError struct {
	Message string
}

// Error はerrorインターフェースを実装する。
func (e *AuthenticationError) Error() string {
	return e.Message
}

// NewInvalidCredentialsError は認証情報不一致エラーを生成する。
func NewInvalidCredentialsError() *AuthenticationError {
	return &AuthenticationError{Message: "Invalid email or password"}
}

// NewInvalidTokenError はトークン検証失敗エラーを生成する。
func NewInvalidTokenError() *AuthenticationError {
	return &AuthenticationError{Message: "Invalid or expired token"}
}
