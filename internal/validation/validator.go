package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("ymd_date", validateYMDDate)
	_ = v.RegisterValidation("category_list", validateCategoryList)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateYMDDate validates that a date is in YYYYMMDD format and names a
// real calendar date
func validateYMDDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 8 {
		return false
	}

	_, err := time.Parse("20060102", value)
	return err == nil
}

// validateCategoryList validates a comma-separated list of numeric category
// ids, tolerating whitespace and trailing commas
func validateCategoryList(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	seen := false
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		matched, _ := regexp.MatchString(`^\d+$`, part)
		if !matched {
			return false
		}
		seen = true
	}
	return seen
}
