package auth

import (
	"regexp"

	"github.com/hitoshi/campman/internal/model"
)

// minPasswordLength はパスワードの最小文字数。
const minPasswordLength = 8

// emailPattern はメールアドレスの簡易形式チェック。
// 厳密なRFC準拠は狙わない。明らかな入力ミスを弾ければ十分。
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterInput はユーザー登録の入力を表す。
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ValidateRegister は登録入力のすべてのルールを評価し、違反の一覧を返す。
// 最初の違反で打ち切らず、フィールドごとのエラーをすべて収集する。
func ValidateRegister(input RegisterInput) []model.FieldError {
	var errs []model.FieldError

	if input.Email == "" {
		errs = append(errs, model.FieldError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(input.Email) {
		errs = append(errs, model.FieldError{Field: "email", Message: "Email must be a valid email address"})
	}

	if input.Password == "" {
		errs = append(errs, model.FieldError{Field: "password", Message: "Password is required"})
	} else if len(input.Password) < minPasswordLength {
		errs = append(errs, model.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}

	if input.FirstName == "" {
		errs = append(errs, model.FieldError{Field: "firstName", Message: "First name is required"})
	}

	if input.LastName == "" {
		errs = append(errs, model.FieldError{Field: "lastName", Message: "Last name is required"})
	}

	return errs
}

// ValidateProfileUpdate はプロフィール更新入力のすべてのルールを評価する。
func ValidateProfileUpdate(firstName, lastName string) []model.FieldError {
	var errs []model.FieldError

	if firstName == "" {
		errs = append(errs, model.FieldError{Field: "firstName", Message: "First name is required"})
	}
	if lastName == "" {
		errs = append(errs, model.FieldError{Field: "lastName", Message: "Last name is required"})
	}

	return errs
}

// ValidatePasswordChange はパスワード変更入力のすべてのルールを評価する。
func ValidatePasswordChange(currentPassword, newPassword string) []model.FieldError {
	var errs []model.FieldError

	if currentPassword == "" {
		errs = append(errs, model.FieldError{Field: "currentPassword", Message: "Current password is required"})
	}

	if newPassword == "" {
		errs = append(errs, model.FieldError{Field: "newPassword", Message: "New password is required"})
	} else if len(newPassword) < minPasswordLength {
		errs = append(errs, model.FieldError{Field: "newPassword", Message: "New password must be at least 8 characters"})
	}

	return errs
}
