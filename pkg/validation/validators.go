package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Basic "something@something.something" check used by the registration form
	emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

	// Digits only, 8-15 long
	phoneRegex = regexp.MustCompile(`^\d{8,15}$`)
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		RegisterValidators(validate)
	})
	return validate
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("hr_email", Email)
	_ = v.RegisterValidation("hr_phone", Phone)
}

// NotBlank rejects empty and whitespace-only strings.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func Email(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func Phone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
