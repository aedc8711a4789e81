// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// PasswordHashにはbcryptハッシュのみを保持する。平文パスワードは永続化しない。
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role はユーザーの役割を表す。
// データとして保持するのみで、現時点で認可ロジックはどこにも存在しない。
type Role string

const (
	// RoleAdmin は管理者ロール。
	RoleAdmin Role = "admin"
	// RoleOrganizer はオーガナイザーロール。
	RoleOrganizer Role = "organizer"
	// RoleUser は一般ユーザーロール。新規登録時のデフォルト。
	RoleUser Role = "user"
)

// IsValidRole はroleが定義済みの値かどうかを返す。
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleOrganizer, RoleUser:
		return true
	default:
		return false
	}
}
