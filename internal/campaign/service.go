// Package campaign はキャンペーンライフサイクルのドメインロジックを提供する。
// 作成・一覧・部分更新・削除と、永続化のたびに走る変換率の再計算を担う。
package campaign

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

// Service はキャンペーン管理のサービス層。
// すべての読み取り・変更・削除は呼び出し元ユーザーの所有物にスコープする。
type Service struct {
	repo repository.CampaignRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.CampaignRepository) *Service {
	return &Service{repo: repo}
}

// recalcConversionRate は永続化の直前に変換率を再計算する。
// clicksが0の場合は既存の値をそのまま残す（0にリセットしない）。
// 永続化フレームワークのフックではなく、明示的な手順として呼び出す。
func recalcConversionRate(c *model.Campaign) {
	if c.Clicks > 0 {
		c.ConversionRate = (float64(c.Conversions) / float64(c.Clicks)) * 100
	}
}

// Create は新規キャンペーンを作成する。
// 所有者は常に呼び出し元ユーザー。クライアントから指定はできない。
// カウンタはゼロで初期化し、作成時点の変換率は0になる。
func (s *Service) Create(ctx context.Context, userID int64, input CreateInput) (*model.Campaign, error) {
	if errs := ValidateCreate(input); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	status := model.CampaignStatusActive
	if input.Status != "" {
		status = model.CampaignStatus(input.Status)
	}

	c := &model.Campaign{
		Name:           input.Name,
		Status:         status,
		UserID:         userID,
		Clicks:         0,
		Conversions:    0,
		ConversionRate: 0,
		TargetAudience: input.TargetAudience,
	}

	recalcConversionRate(c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("キャンペーンの作成に失敗しました: %w", err)
	}

	slog.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.Int64("user_id", userID),
	)

	return c, nil
}

// List は呼び出し元ユーザーが所有するキャンペーン一覧を作成日時降順で返す。
// ページネーションやフィルタはない。
func (s *Service) List(ctx context.Context, userID int64) ([]*model.Campaign, error) {
	campaigns, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("キャンペーン一覧の取得に失敗しました: %w", err)
	}

	if campaigns == nil {
		campaigns = []*model.Campaign{}
	}

	return campaigns, nil
}

// Update はキャンペーンを部分更新する。
// 入力に存在するフィールドだけを適用し、そのうえで変換率を無条件に再計算して永続化する。
// レコードが存在しない場合と所有者が異なる場合は、区別できない同一のNotFoundになる。
func (s *Service) Update(ctx context.Context, userID, campaignID int64, input UpdateInput) (*model.Campaign, error) {
	if errs := ValidateUpdate(input); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	c, err := s.repo.FindByIDAndUserID(ctx, campaignID, userID)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if c == nil {
		return nil, model.NewCampaignNotFoundError(campaignID)
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Status != nil {
		c.Status = model.CampaignStatus(*input.Status)
	}
	if input.Clicks != nil {
		c.Clicks = *input.Clicks
	}
	if input.Conversions != nil {
		c.Conversions = *input.Conversions
	}

	recalcConversionRate(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	slog.Info("campaign updated",
		slog.Int64("campaign_id", c.ID),
		slog.Int64("user_id", userID),
	)

	return c, nil
}

// Delete はキャンペーンを物理削除する。
// スコープ付きルックアップとNotFoundの扱いはUpdateと同じ。
func (s *Service) Delete(ctx context.Context, userID, campaignID int64) error {
	c, err := s.repo.FindByIDAndUserID(ctx, campaignID, userID)
	if err != nil {
		return fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if c == nil {
		return model.NewCampaignNotFoundError(campaignID)
	}

	if err := s.repo.Delete(ctx, campaignID, userID); err != nil {
		return err
	}

	slog.Info("campaign deleted",
		slog.Int64("campaign_id", campaignID),
		slog.Int64("user_id", userID),
	)

	return nil
}
