package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Course code pattern: 2-8 uppercase letters followed by 2-4 digits, e.g. CS101
	CourseCodePattern = `^[A-Z]{2,8}[0-9]{2,4}$`

	// Password minimum length
	PasswordMinLength = 8

	// Name length bounds
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CourseCode *regexp.Regexp
}{
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// IsValidCourseCode reports whether code matches the course code pattern.
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(code)
}

// RegisterCustomValidations registers custom binding rules on gin's validator.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("coursecode", func(fl validator.FieldLevel) bool {
		return IsValidCourseCode(fl.Field().String())
	})
}
