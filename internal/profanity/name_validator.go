package profanity

import (
	"context"
	"fmt"
	"strings"

	"menu-board/internal/model"

	"github.com/rs/zerolog"
)

// NameValidator gates every user-supplied product/menu name. A name must be
// non-blank and pass the profanity check before it may be stored.
type NameValidator struct {
	checker Checker
	logger  zerolog.Logger
}

// NewNameValidator creates a new name validator around a profanity checker.
func NewNameValidator(checker Checker, logger zerolog.Logger) *NameValidator {
	return &NameValidator{
		checker: checker,
		logger:  logger.With().Str("component", "name-validator").Logger(),
	}
}

// Validate checks a raw name. A nil or blank name, or a name the checker
// flags, fails with model.ErrInvalidName. A checker failure is an
// infrastructure error and propagates wrapped instead.
func (v *NameValidator) Validate(ctx context.Context, name *string) error {
	if name == nil || strings.TrimSpace(*name) == "" {
		v.logger.Debug().Msg("name is missing or blank")
		return model.ErrInvalidName
	}

	contains, err := v.checker.ContainsProfanity(ctx, *name)
	if err != nil {
		return fmt.Errorf("failed to check name for profanity: %w", err)
	}

	if contains {
		v.logger.Debug().Msg("name rejected by profanity check")
		return model.ErrInvalidName
	}

	return nil
}
