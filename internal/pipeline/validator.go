package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Validator normalizes and bounds-checks raw queries and assigns each
// accepted query a time-ordered unique ID.
type Validator struct {
	minLength int
	maxLength int
	logger    *zap.Logger
}

// NewValidator creates a validator with the given trimmed-length bounds.
func NewValidator(minLength, maxLength int, logger *zap.Logger) *Validator {
	return &Validator{
		minLength: minLength,
		maxLength: maxLength,
		logger:    logger,
	}
}

// Validate trims the raw query, checks its length against the configured
// bounds, and returns it paired with a fresh query ID. UUIDv7 keeps IDs
// sortable by generation time.
func (v *Validator) Validate(raw string) (ValidatedQuery, error) {
	id, err := uuid.NewV7()
	if err != nil {
		v.logger.Error("query ID generation failed", zap.Error(err))
		return ValidatedQuery{}, &ValidationError{
			Kind:    ValidationIDGeneration,
			Message: "failed to generate query ID",
			Err:     err,
		}
	}
	queryID := id.String()

	v.logger.Info("validation started",
		zap.String("query_id", queryID),
		zap.Int("query_length", utf8.RuneCountInString(raw)))

	clean := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(clean)

	if length < v.minLength {
		v.logger.Warn("query too short",
			zap.String("query_id", queryID),
			zap.Int("length", length),
			zap.Int("minimum", v.minLength))
		return ValidatedQuery{}, &ValidationError{
			Kind:    ValidationTooShort,
			Message: fmt.Sprintf("query too short (minimum %d characters)", v.minLength),
		}
	}

	if length > v.maxLength {
		v.logger.Warn("query too long",
			zap.String("query_id", queryID),
			zap.Int("length", length),
			zap.Int("maximum", v.maxLength))
		return ValidatedQuery{}, &ValidationError{
			Kind:    ValidationTooLong,
			Message: fmt.Sprintf("query too long (maximum %d characters)", v.maxLength),
		}
	}

	v.logger.Info("validation completed", zap.String("query_id", queryID))

	return ValidatedQuery{ID: queryID, Text: clean}, nil
}
