package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate         *validator.Validate
	maxCommentLength int
}

// NewValidator creates a new validator that implements the usecase
// IValidator interface.
func NewValidator(maxCommentLength int) usecasecontract.IValidator {
	return &AppValidator{
		validate:         validator.New(),
		maxCommentLength: maxCommentLength,
	}
}

// ValidateCommentText checks that a comment body is non-empty after
// trimming and within the configured length bound.
func (av *AppValidator) ValidateCommentText(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: comment text cannot be empty", contract.ErrValidation)
	}
	if len(trimmed) > av.maxCommentLength {
		return fmt.Errorf("%w: comment text too long (max %d characters)", contract.ErrValidation, av.maxCommentLength)
	}
	return nil
}

// ValidatePrivacy checks a post privacy value. Empty is accepted and
// defaulted by the caller.
func (av *AppValidator) ValidatePrivacy(privacy string) error {
	if err := av.validate.Var(privacy, "omitempty,oneof=public followers private"); err != nil {
		return fmt.Errorf("%w: privacy must be one of public, followers, private", contract.ErrValidation)
	}
	return nil
}

// ValidateSort checks a comment tree sort policy. Empty is accepted and
// defaulted by the caller.
func (av *AppValidator) ValidateSort(sortBy string) error {
	if err := av.validate.Var(sortBy, "omitempty,oneof=newest oldest top"); err != nil {
		return fmt.Errorf("%w: sort_by must be one of newest, oldest, top", contract.ErrValidation)
	}
	return nil
}
