package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Loose international phone pattern, applied after stripping spaces
	// and hyphens.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	httpPattern  = regexp.MustCompile(`^https?://.+`)
	timePattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("httpurl", validateHTTPURL)
	v.RegisterValidation("timeslot", validateTimeSlot)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "httpurl":
				errors[field] = field + " must be a valid http(s) URL"
			case "timeslot":
				errors[field] = field + " must be in HH:MM format"
			case "datetime":
				errors[field] = field + " must match format " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// NormalizePhone strips spaces and hyphens so stored numbers match the
// validated shape.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	return strings.ReplaceAll(phone, "-", "")
}

// IsValidPhone reports whether phone matches the loose international
// pattern after normalization.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}

// IsValidEmail applies the validator library's email rule to a bare string.
func IsValidEmail(email string) bool {
	return validator.New().Var(email, "email") == nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	return httpPattern.MatchString(fl.Field().String())
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timePattern.MatchString(fl.Field().String())
}
