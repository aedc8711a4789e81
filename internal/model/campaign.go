// Package model はドメインモデルを定義する。
package model

import "time"

// Campaign はマーケティングキャンペーンを表す。
// UserIDは作成時に確定し、以後変更されない。
type Campaign struct {
	ID             int64
	Name           string
	Status         CampaignStatus
	UserID         int64
	Clicks         int
	Conversions    int
	ConversionRate float64
	TargetAudience string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CampaignStatus はキャンペーンの状態を表す。
// 状態遷移グラフは定義しない。任意の値から任意の値へ変更できる。
type CampaignStatus string

const (
	// CampaignStatusActive は配信中の状態。作成時のデフォルト。
	CampaignStatusActive CampaignStatus = "active"
	// CampaignStatusPaused は一時停止中の状態。
	CampaignStatusPaused CampaignStatus = "paused"
	// CampaignStatusCompleted は終了済みの状態。
	CampaignStatusCompleted CampaignStatus = "completed"
)

// IsValidCampaignStatus はstatusが定義済みの値かどうかを返す。
func IsValidCampaignStatus(status string) bool {
	switch CampaignStatus(status) {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	default:
		return false
	}
}
