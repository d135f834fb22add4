package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// MaxStringLength is the longest accepted value for any space attribute
const MaxStringLength = 255

var (
	idRegex       = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	photoURLRegex = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)(\?.*)?$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("spaceid", func(fl validator.FieldLevel) bool {
		return idRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("photourl", func(fl validator.FieldLevel) bool {
		return photoURLRegex.MatchString(fl.Field().String())
	})
	// utf16max limits length in UTF-16 code units, so a character outside the
	// BMP counts twice, as it does for browser and API Gateway clients
	_ = v.RegisterValidation("utf16max", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return UTF16Len(fl.Field().String()) <= limit
	})
	return v
}

// UTF16Len returns the length of s in UTF-16 code units
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ValidationResult is the outcome of validating space data
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func newResult(errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func tooLong(s string) bool {
	return validate.Var(s, fmt.Sprintf("utf16max=%d", MaxStringLength)) != nil
}

// ValidateID validates a space identifier
func ValidateID(id string) ValidationResult {
	var errs []string

	if id == "" {
		errs = append(errs, "ID is required and must be a string")
		return newResult(errs)
	}

	if strings.TrimSpace(id) == "" {
		errs = append(errs, "ID cannot be empty")
	}
	if tooLong(id) {
		errs = append(errs, fmt.Sprintf("ID must be less than %d characters", MaxStringLength))
	}
	if validate.Var(id, "spaceid") != nil {
		errs = append(errs, "ID can only contain letters, numbers, hyphens, and underscores")
	}

	return newResult(errs)
}

func validateText(field, value string) ValidationResult {
	var errs []string

	if value == "" {
		errs = append(errs, field+" is required and must be a string")
		return newResult(errs)
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs = append(errs, field+" cannot be empty")
	}
	if tooLong(trimmed) {
		errs = append(errs, fmt.Sprintf("%s must be less than %d characters", field, MaxStringLength))
	}

	return newResult(errs)
}

// ValidateLocation validates a space location
func ValidateLocation(location string) ValidationResult {
	return validateText("Location", location)
}

// ValidateWard validates a space ward
func ValidateWard(ward string) ValidationResult {
	return validateText("Ward", ward)
}

// ValidatePhotoURL validates an optional photo URL. Nil or blank means no photo.
func ValidatePhotoURL(photoURL *string) ValidationResult {
	if photoURL == nil {
		return newResult(nil)
	}

	trimmed := strings.TrimSpace(*photoURL)
	if trimmed == "" {
		return newResult(nil)
	}

	var errs []string
	if tooLong(trimmed) {
		errs = append(errs, fmt.Sprintf("Photo URL must be less than %d characters", MaxStringLength))
	}
	if validate.Var(trimmed, "photourl") != nil {
		errs = append(errs, "Photo URL must be a valid HTTP/HTTPS URL pointing to an image file (jpg, jpeg, png, gif, webp)")
	}

	return newResult(errs)
}

// ValidateSpace validates the fields present in a partial space
func ValidateSpace(p SpacePatch) ValidationResult {
	var errs []string

	if p.ID != nil {
		errs = append(errs, ValidateID(*p.ID).Errors...)
	}
	if p.Location != nil {
		errs = append(errs, ValidateLocation(*p.Location).Errors...)
	}
	if p.Ward != nil {
		errs = append(errs, ValidateWard(*p.Ward).Errors...)
	}
	if p.PhotoURL != nil {
		errs = append(errs, ValidatePhotoURL(p.PhotoURL).Errors...)
	}

	return newResult(errs)
}

// ValidateCompleteSpace validates a space that is about to be created
func ValidateCompleteSpace(p SpacePatch) ValidationResult {
	var errs []string

	if p.ID == nil || *p.ID == "" {
		errs = append(errs, "ID is required")
	} else {
		errs = append(errs, ValidateID(*p.ID).Errors...)
	}

	if p.Location == nil || *p.Location == "" {
		errs = append(errs, "Location is required")
	} else {
		errs = append(errs, ValidateLocation(*p.Location).Errors...)
	}

	if p.Ward == nil || *p.Ward == "" {
		errs = append(errs, "Ward is required")
	} else {
		errs = append(errs, ValidateWard(*p.Ward).Errors...)
	}

	errs = append(errs, ValidatePhotoURL(p.PhotoURL).Errors...)

	return newResult(errs)
}

// SanitizeSpace trims every set field and drops empty ones. A blank photo
// URL is dropped after trimming.
func SanitizeSpace(p SpacePatch) SpacePatch {
	var out SpacePatch

	if p.ID != nil && *p.ID != "" {
		out.ID = StringPtr(strings.TrimSpace(*p.ID))
	}
	if p.Location != nil && *p.Location != "" {
		out.Location = StringPtr(strings.TrimSpace(*p.Location))
	}
	if p.Ward != nil && *p.Ward != "" {
		out.Ward = StringPtr(strings.TrimSpace(*p.Ward))
	}
	if p.PhotoURL != nil && strings.TrimSpace(*p.PhotoURL) != "" {
		out.PhotoURL = StringPtr(strings.TrimSpace(*p.PhotoURL))
	}

	return out
}
