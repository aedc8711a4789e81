package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
)

// PostgresCampaignRepo はPostgreSQLを使用したキャンペーンリポジトリ。
type PostgresCampaignRepo struct {
	db *sql.DB
}

// NewPostgresCampaignRepo はPostgresCampaignRepoを生成する。
func NewPostgresCampaignRepo(db *sql.DB) *PostgresCampaignRepo {
	return &PostgresCampaignRepo{db: db}
}

// Create はキャンペーンを作成し、生成されたIDとタイムスタンプをcに書き戻す。
func (r *PostgresCampaignRepo) Create(ctx context.Context, c *model.Campaign) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO campaigns (name, status, user_id, clicks, conversions, conversion_rate, target_audience)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Status, c.UserID, c.Clicks, c.Conversions, c.ConversionRate, c.TargetAudience,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("キャンペーンの作成に失敗しました: %w", err)
	}
	return nil
}

// ListByUserID は指定ユーザーが所有するキャンペーン一覧を作成日時降順で返す。
func (r *PostgresCampaignRepo) ListByUserID(ctx context.Context, userID int64) ([]*model.Campaign, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, status, user_id, clicks, conversions, conversion_rate, target_audience, created_at, updated_at
		 FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("キャンペーン一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var campaigns []*model.Campaign
	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.UserID, &c.Clicks, &c.Conversions, &c.ConversionRate, &c.TargetAudience, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("キャンペーン行の読み取りに失敗しました: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("キャンペーン一覧の走査に失敗しました: %w", err)
	}
	return campaigns, nil
}

// FindByIDAndUserID はIDと所有者IDでキャンペーンを取得する。
// 存在しない場合も所有者が異なる場合も同様にnilを返す。
func (r *PostgresCampaignRepo) FindByIDAndUserID(ctx context.Context, id, userID int64) (*model.Campaign, error) {
	c := &model.Campaign{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, status, user_id, clicks, conversions, conversion_rate, target_audience, created_at, updated_at
		 FROM campaigns WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&c.ID, &c.Name, &c.Status, &c.UserID, &c.Clicks, &c.Conversions, &c.ConversionRate, &c.TargetAudience, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}

	return c, nil
}

// Update は所有者スコープでキャンペーンを更新し、新しいupdated_atをcに書き戻す。
// user_idはWHERE句でのみ使用する。所有者の付け替えはできない。
func (r *PostgresCampaignRepo) Update(ctx context.Context, c *model.Campaign) error {
	err := r.db.QueryRowContext(ctx,
		`UPDATE campaigns
		 SET name = $3, status = $4, clicks = $5, conversions = $6, conversion_rate = $7, target_audience = $8, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING updated_at`,
		c.ID, c.UserID, c.Name, c.Status, c.Clicks, c.Conversions, c.ConversionRate, c.TargetAudience,
	).Scan(&c.UpdatedAt)

	if err == sql.ErrNoRows {
		return model.NewCampaignNotFoundError(c.ID)
	}
	if err != nil {
		return fmt.Errorf("キャンペーンの更新に失敗しました: %w", err)
	}
	return nil
}

// Delete は所有者スコープでキャンペーンを物理削除する。
func (r *PostgresCampaignRepo) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM campaigns WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("キャンペーンの削除に失敗しました: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の取得に失敗しました: %w", err)
	}
	if rowsAffected == 0 {
		return model.NewCampaignNotFoundError(id)
	}
	return nil
}

// compile-time interface check
var _ CampaignRepository = (*PostgresCampaignRepo)(nil)
