package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// EmailPattern validates account email addresses
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// PNRPattern validates the permanent enrollment number: uppercase
	// alphanumeric, 6 to 12 characters
	PNRPattern = `^[A-Z0-9]{6,12}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// StudentYears are the accepted values for a student's year of study
var StudentYears = []string{"1st", "2nd", "3rd", "4th"}

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	PNR   *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	PNR:   regexp.MustCompile(PNRPattern),
}

// IsValidPNR reports whether a PNR matches the expected format
func IsValidPNR(pnr string) bool {
	return CompiledPatterns.PNR.MatchString(pnr)
}

// IsValidEmail reports whether an email matches the expected format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidYear reports whether a year of study is one of the accepted values
func IsValidYear(year string) bool {
	for _, y := range StudentYears {
		if y == year {
			return true
		}
	}
	return false
}

// RegisterCustomValidators hooks the domain rules into gin's binding engine so
// request structs can use them as binding tags.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("pnr", func(fl validator.FieldLevel) bool {
			return IsValidPNR(fl.Field().String())
		})
	}
}
