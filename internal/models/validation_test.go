package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		errors []string
	}{
		{name: "UUID", id: "3f2b9c1e-8a4d-4e7b-9c1a-2b3c4d5e6f70"},
		{name: "Underscore", id: "space_42"},
		{name: "Empty", id: "", errors: []string{"ID is required and must be a string"}},
		{name: "Blank", id: "   ", errors: []string{
			"ID cannot be empty",
			"ID can only contain letters, numbers, hyphens, and underscores",
		}},
		{name: "BadChars", id: "space/42", errors: []string{
			"ID can only contain letters, numbers, hyphens, and underscores",
		}},
		{name: "TooLong", id: strings.Repeat("a", 256), errors: []string{
			"ID must be less than 255 characters",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateID(tt.id)
			if result.IsValid != (len(tt.errors) == 0) {
				t.Errorf("IsValid = %v, errors = %v", result.IsValid, result.Errors)
			}
			if len(tt.errors) > 0 && !reflect.DeepEqual(result.Errors, tt.errors) {
				t.Errorf("Errors = %v, want %v", result.Errors, tt.errors)
			}
		})
	}
}

func TestValidateLocationAndWard(t *testing.T) {
	if r := ValidateLocation("Kreuzberg"); !r.IsValid {
		t.Errorf("Expected valid location, got %v", r.Errors)
	}
	if r := ValidateWard(""); r.IsValid || r.Errors[0] != "Ward is required and must be a string" {
		t.Errorf("Unexpected ward result: %+v", r)
	}
	if r := ValidateLocation("  "); r.IsValid || r.Errors[0] != "Location cannot be empty" {
		t.Errorf("Unexpected location result: %+v", r)
	}
	if r := ValidateWard(strings.Repeat("w", 300)); r.IsValid || r.Errors[0] != "Ward must be less than 255 characters" {
		t.Errorf("Unexpected ward result: %+v", r)
	}
}

func TestValidatePhotoURL(t *testing.T) {
	tests := []struct {
		name  string
		url   *string
		valid bool
	}{
		{name: "Nil", url: nil, valid: true},
		{name: "Blank", url: StringPtr("  "), valid: true},
		{name: "PNG", url: StringPtr("https://cdn.example.com/a/b.png"), valid: true},
		{name: "UpperCaseWithQuery", url: StringPtr("http://example.com/photo.JPEG?size=large"), valid: true},
		{name: "NotImage", url: StringPtr("https://example.com/doc.pdf"), valid: false},
		{name: "NoScheme", url: StringPtr("example.com/photo.png"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhotoURL(tt.url); got.IsValid != tt.valid {
				t.Errorf("IsValid = %v, want %v (%v)", got.IsValid, tt.valid, got.Errors)
			}
		})
	}
}

func TestValidateCompleteSpace(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p := SpacePatch{ID: StringPtr("abc"), Location: StringPtr("Mitte"), Ward: StringPtr("North")}
		if r := ValidateCompleteSpace(p); !r.IsValid {
			t.Errorf("Expected valid space, got %v", r.Errors)
		}
	})

	t.Run("MissingEverything", func(t *testing.T) {
		r := ValidateCompleteSpace(SpacePatch{})
		want := []string{"ID is required", "Location is required", "Ward is required"}
		if !reflect.DeepEqual(r.Errors, want) {
			t.Errorf("Errors = %v, want %v", r.Errors, want)
		}
	})

	t.Run("BadPhoto", func(t *testing.T) {
		p := SpacePatch{ID: StringPtr("abc"), Location: StringPtr("Mitte"), Ward: StringPtr("North"), PhotoURL: StringPtr("ftp://x/y.png")}
		if r := ValidateCompleteSpace(p); r.IsValid || len(r.Errors) != 1 {
			t.Errorf("Expected one photo error, got %v", r.Errors)
		}
	})
}

func TestValidateSpacePartial(t *testing.T) {
	if r := ValidateSpace(SpacePatch{Ward: StringPtr("East")}); !r.IsValid {
		t.Errorf("Expected valid partial space, got %v", r.Errors)
	}
	if r := ValidateSpace(SpacePatch{}); !r.IsValid || r.Errors == nil {
		t.Errorf("Expected valid empty patch with empty error list, got %+v", r)
	}
}

func TestSanitizeSpace(t *testing.T) {
	p := SanitizeSpace(SpacePatch{
		ID:       StringPtr(" abc "),
		Location: StringPtr("  Mitte "),
		Ward:     StringPtr(""),
		PhotoURL: StringPtr("   "),
	})

	if p.ID == nil || *p.ID != "abc" {
		t.Errorf("Expected trimmed ID, got %v", p.ID)
	}
	if p.Location == nil || *p.Location != "Mitte" {
		t.Errorf("Expected trimmed location, got %v", p.Location)
	}
	if p.Ward != nil {
		t.Errorf("Expected empty ward to be dropped, got %q", *p.Ward)
	}
	if p.PhotoURL != nil {
		t.Errorf("Expected blank photo URL to be dropped, got %q", *p.PhotoURL)
	}
}

func TestSpacePatchAttributes(t *testing.T) {
	p := SpacePatch{ID: StringPtr("ignored"), Ward: StringPtr("West"), PhotoURL: StringPtr("https://x.io/p.gif")}
	attrs := p.Attributes()
	want := map[string]string{"ward": "West", "photoUrl": "https://x.io/p.gif"}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("Attributes() = %v, want %v", attrs, want)
	}

	s := &Space{ID: "1", Location: "Old", Ward: "East"}
	s.Apply(attrs)
	if s.Ward != "West" || s.PhotoURL != "https://x.io/p.gif" || s.Location != "Old" {
		t.Errorf("Apply() produced %+v", s)
	}
}

func TestValidateLocation_UTF16Length(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"bmp characters at limit", strings.Repeat("é", 255), true},
		{"emoji under limit", strings.Repeat("🏠", 127), true},
		{"emoji over limit", strings.Repeat("🏠", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateLocation(tt.value).IsValid; got != tt.valid {
				t.Errorf("ValidateLocation() valid = %v, want %v (utf16 length %d)", got, tt.valid, UTF16Len(tt.value))
			}
		})
	}
}
