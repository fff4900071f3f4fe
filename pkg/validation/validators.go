package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// E164-like phone: optional +, digits 7-15 length, spaces and dashes tolerated
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// New returns a validator with the custom tags registered and field names
// reported by their JSON key, so errors line up with form inputs.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("date_only", DateOnly)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	val = strings.NewReplacer(" ", "", "-", "").Replace(val)
	return phoneRegex.MatchString(val)
}

// NotBlank rejects whitespace-only input that "required" lets through
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// DateOnly validates a YYYY-MM-DD calendar date
func DateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}
