package repository

import (
	"testing"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// PostgresCampaignRepoはCampaignRepositoryインターフェースを満たすことを検証
func TestPostgresCampaignRepo_ImplementsInterface(t *testing.T) {
	var _ CampaignRepository = (*PostgresCampaignRepo)(nil)
}

// NewPostgresUserRepoが正しく初期化されることを検証
func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	repo := NewPostgresUserRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// NewPostgresCampaignRepoが正しく初期化されることを検証
func TestNewPostgresCampaignRepo_Initializes(t *testing.T) {
	repo := NewPostgresCampaignRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}
