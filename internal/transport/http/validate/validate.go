package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/placeshare/places-service/internal/domain"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct checks a request DTO against its validate tags. The first
// violation becomes a field-level validation error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.ErrInvalidField(strings.ToLower(fe.Field()), "failed "+fe.Tag()+" rule")
	}
	return domain.ErrInvalidField("body", "invalid payload")
}
