package models

import (
	"github.com/google/uuid"
)

// Space is a bookable location listed in the spaces table
type Space struct {
	ID       string `json:"id" dynamodbav:"id" db:"id"`
	Location string `json:"location" dynamodbav:"location" db:"location"`
	Ward     string `json:"ward" dynamodbav:"ward" db:"ward"`
	PhotoURL string `json:"photoUrl,omitempty" dynamodbav:"photoUrl,omitempty" db:"photo_url"`
}

// SpacePatch is a partial space. Nil fields are absent.
type SpacePatch struct {
	ID       *string `json:"id,omitempty"`
	Location *string `json:"location,omitempty"`
	Ward     *string `json:"ward,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// Updatable attribute names, in the order updates are applied
const (
	AttrLocation = "location"
	AttrWard     = "ward"
	AttrPhotoURL = "photoUrl"
)

// UpdatableAttributes lists the attributes a client may change
var UpdatableAttributes = []string{AttrLocation, AttrWard, AttrPhotoURL}

// NewSpaceID generates an identifier for a new space
func NewSpaceID() string {
	return uuid.New().String()
}

// IsEmpty reports whether no field is set
func (p SpacePatch) IsEmpty() bool {
	return p.ID == nil && p.Location == nil && p.Ward == nil && p.PhotoURL == nil
}

// Attributes returns the updatable fields that are set, keyed by attribute name
func (p SpacePatch) Attributes() map[string]string {
	attrs := make(map[string]string)
	if p.Location != nil {
		attrs[AttrLocation] = *p.Location
	}
	if p.Ward != nil {
		attrs[AttrWard] = *p.Ward
	}
	if p.PhotoURL != nil {
		attrs[AttrPhotoURL] = *p.PhotoURL
	}
	return attrs
}

// Space converts a complete patch into a Space
func (p SpacePatch) Space() *Space {
	s := &Space{}
	if p.ID != nil {
		s.ID = *p.ID
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Ward != nil {
		s.Ward = *p.Ward
	}
	if p.PhotoURL != nil {
		s.PhotoURL = *p.PhotoURL
	}
	return s
}

// Apply sets the given attributes on the space. Unknown names are ignored.
func (s *Space) Apply(attrs map[string]string) {
	for name, value := range attrs {
		switch name {
		case AttrLocation:
			s.Location = value
		case AttrWard:
			s.Ward = value
		case AttrPhotoURL:
			s.PhotoURL = value
		}
	}
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
