package campaign

import "github.com/hitoshi/campman/internal/model"

// CreateInput はキャンペーン作成の入力を表す。
// Statusは省略可能で、空の場合はactiveになる。
type CreateInput struct {
	Name           string
	TargetAudience string
	Status         string
}

// UpdateInput はキャンペーンの部分更新の入力を表す。
// nilのフィールドは「変更しない」を意味する。欠落とゼロ値を区別するためポインタにする。
// 所有者と変換率は外部から変更できないため、ここには含めない。
type UpdateInput struct {
	Name        *string
	Status      *string
	Clicks      *int
	Conversions *int
}

// ValidateCreate は作成入力のすべてのルールを評価し、違反の一覧を返す。
// 最初の違反で打ち切らず、フィールドごとのエラーをすべて収集する。
func ValidateCreate(input CreateInput) []model.FieldError {
	var errs []model.FieldError

	if input.Name == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "Campaign name is required"})
	}

	if input.TargetAudience == "" {
		errs = append(errs, model.FieldError{Field: "targetAudience", Message: "Target audience is required"})
	}

	if input.Status != "" && !model.IsValidCampaignStatus(input.Status) {
		errs = append(errs, model.FieldError{Field: "status", Message: "Status must be one of active, paused, completed"})
	}

	return errs
}

// ValidateUpdate は部分更新入力のすべてのルールを評価し、違反の一覧を返す。
// 存在するフィールドだけを検証する。nilは検証対象外。
func ValidateUpdate(input UpdateInput) []model.FieldError {
	var errs []model.FieldError

	if input.Name != nil && *input.Name == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "Campaign name is required"})
	}

	if input.Status != nil && !model.IsValidCampaignStatus(*input.Status) {
		errs = append(errs, model.FieldError{Field: "status", Message: "Status must be one of active, paused, completed"})
	}

	if input.Clicks != nil && *input.Clicks < 0 {
		errs = append(errs, model.FieldError{Field: "clicks", Message: "Clicks must be a non-negative integer"})
	}

	if input.Conversions != nil && *input.Conversions < 0 {
		errs = append(errs, model.FieldError{Field: "conversions", Message: "Conversions must be a non-negative integer"})
	}

	return errs
}
