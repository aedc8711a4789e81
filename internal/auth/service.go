package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/campman/internal/database"
	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

// Service は認証に関するビジネスロジックを提供する。
// 平文パスワードはハッシュ化の瞬間までしか保持しない。
type Service struct {
	userRepo repository.UserRepository
	hasher   *PasswordHasher
	tokens   *TokenManager
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, hasher *PasswordHasher, tokens *TokenManager) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register は新規ユーザーを登録し、発行済みトークンとともに返す。
// パスワードは最初の永続化の前にハッシュ化する。roleは常にuserで作成する。
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	if errs := ValidateRegister(input); len(errs) > 0 {
		return nil, "", model.NewValidationError(errs)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         model.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// メール重複はストアの一意制約で検出する。リトライはしない。
		if database.IsUniqueViolation(err) {
			slog.Warn("registration rejected: duplicate email",
				slog.String("email", input.Email),
			)
		}
		return nil, "", fmt.Errorf("ユーザー登録に失敗しました: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("トークンの発行に失敗しました: %w", err)
	}

	slog.Info("user registered",
		slog.Int64("user_id", user.ID),
	)

	return user, token, nil
}

// Login は認証情報を照合し、トークンを発行する。
// 未知のメールアドレスとパスワード不一致は同一のエラーとして報告する。
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("ユーザーの検索に失敗しました: %w", err)
	}
	if user == nil {
		return nil, "", model.NewInvalidCredentialsError()
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, "", model.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("トークンの発行に失敗しました: %w", err)
	}

	slog.Info("user logged in",
		slog.Int64("user_id", user.ID),
	)

	return user, token, nil
}

// GetUser は指定IDのユーザーを取得する。見つからない場合はAuthenticationErrorを返す。
// トークン検証を通過したIDに対応するユーザーが消えているケースは認証失敗として扱う。
func (s *Service) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewInvalidTokenError()
	}
	return user, nil
}

// UpdateProfile は表示名を更新し、更新後のユーザーを返す。
// 認証情報には一切触れない。既存ハッシュの再ハッシュは起こり得ない。
func (s *Service) UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) (*model.User, error) {
	if errs := ValidateProfileUpdate(firstName, lastName); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, firstName, lastName); err != nil {
		return nil, fmt.Errorf("プロフィールの更新に失敗しました: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// ChangePassword は現在のパスワードを照合したうえで新しいパスワードに差し替える。
// 差し替え時のみ再ハッシュが走る。
func (s *Service) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if errs := ValidatePasswordChange(currentPassword, newPassword); len(errs) > 0 {
		return model.NewValidationError(errs)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(user.PasswordHash, currentPassword) {
		return model.NewInvalidCredentialsError()
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hashed); err != nil {
		return fmt.Errorf("パスワードの変更に失敗しました: %w", err)
	}

	slog.Info("password changed",
		slog.Int64("user_id", userID),
	)

	return nil
}
