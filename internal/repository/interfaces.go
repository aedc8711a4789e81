// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/campman/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成し、生成されたIDとタイムスタンプをuserに書き戻す。
	// メールアドレスの一意性はストアの一意制約に委譲する。
	Create(ctx context.Context, user *model.User) error

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByEmail はメールアドレスでユーザーを検索する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateProfile は表示名のみを更新する。
	// password_hash列には一切触れない。プロフィール更新で認証情報が
	// 再ハッシュされることを構造的に防ぐ。
	UpdateProfile(ctx context.Context, id int64, firstName, lastName string) error

	// UpdatePasswordHash はハッシュ済み認証情報を差し替える。
	// 呼び出し元でハッシュ済みであること。平文を渡してはならない。
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

// CampaignRepository はキャンペーンデータの永続化インターフェース。
// 読み取り・更新・削除はすべて所有者IDでスコープする。
type CampaignRepository interface {
	// Create はキャンペーンを作成し、生成されたIDとタイムスタンプをcに書き戻す。
	Create(ctx context.Context, c *model.Campaign) error

	// ListByUserID は指定ユーザーが所有するキャンペーン一覧を作成日時降順で返す。
	ListByUserID(ctx context.Context, userID int64) ([]*model.Campaign, error)

	// FindByIDAndUserID はIDと所有者IDでキャンペーンを取得する。
	// 存在しない場合も所有者が異なる場合も同様にnilを返す。
	FindByIDAndUserID(ctx context.Context, id, userID int64) (*model.Campaign, error)

	// Update は所有者スコープでキャンペーンを更新し、新しいupdated_atをcに書き戻す。
	// 対象行がない場合はNotFoundErrorを返す。
	Update(ctx context.Context, c *model.Campaign) error

	// Delete は所有者スコープでキャンペーンを物理削除する。
	// 対象行がない場合はNotFoundErrorを返す。
	Delete(ctx context.Context, id, userID int64) error
}
