package validation

import (
	"regexp"

	"realty-api/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// decimalPattern accepts non-negative exact decimal strings ("595000",
// "595000.00"). No sign, so negative amounts fail validation outright.
var decimalPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		return decimalPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("liststatus", func(fl validator.FieldLevel) bool {
		return domain.ValidStatus(domain.Status(fl.Field().String()))
	})
	return v
}

// Struct validates a payload against its schema tags.
func Struct(payload any) error {
	return validate.Struct(payload)
}
