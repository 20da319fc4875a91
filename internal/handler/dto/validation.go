package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kvgate/kvgate/internal/store"
)

// Validation tags with dedicated error messages.
const (
	TagNotReserved = "notreserved"
	TagGTE         = "gte"
	TagMax         = "max"
)

var validate = validator.New()

func init() {
	_ = validate.RegisterValidation(TagNotReserved, func(fl validator.FieldLevel) bool {
		return !store.IsReserved(fl.Field().String())
	})
}

// Decode reads a JSON body into v and validates it.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return Validate(v)
}

// Validate runs struct validation on v.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// FailedTag reports whether err is a validation failure on tag.
func FailedTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
