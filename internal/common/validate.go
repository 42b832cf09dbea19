package common

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return NewValidationError("invalid request: %v", err)
	}
	return nil
}

// ParseUUID validates a path or payload id.
func ParseUUID(idStr, fieldName string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, NewValidationError("%s is required", fieldName)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, NewValidationError("%s has invalid UUID format", fieldName)
	}
	return id, nil
}

// NormalizePagination clamps limit/offset to sane bounds.
func NormalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ValidateNonNegative rejects negative numeric bounds (capacities,
// weight limits, costs, thresholds).
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError("%s must be >= 0", fieldName)
	}
	return nil
}

// ValidateEnum checks membership in an allowed value set.
func ValidateEnum(value, fieldName string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError("%s must be one of: %s", fieldName, strings.Join(allowed, ", "))
}

// SafeString dereferences an optional string.
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StatusString maps an is_active flag onto the frontend-facing status value.
func StatusString(isActive bool) string {
	if isActive {
		return "active"
	}
	return "inactive"
}

// RequireString rejects blank required fields.
func RequireString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError("%s is required", fieldName)
	}
	return nil
}
