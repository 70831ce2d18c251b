package domain

import (
	"strings"
	"time"
)

// Field names reported in brand validation errors.
const (
	FieldBrandName = "name"
)

// MinBrandNameLength is the shortest accepted brand name, after trimming.
const MinBrandNameLength = 2

// Brand is a named owner of zero or more programs.
type Brand struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate checks the editable fields of a candidate brand. The id is not
// checked: new brands receive theirs when they are created.
func (b Brand) Validate() error {
	var ve ValidationErrors

	name := strings.TrimSpace(b.Name)
	switch {
	case name == "":
		ve.add(FieldBrandName, "Brand name is required.")
	case len([]rune(name)) < MinBrandNameLength:
		ve.add(FieldBrandName, "Brand name must be at least 2 characters.")
	}

	return ve.orNil()
}

// Normalize trims surrounding whitespace from the name.
func (b Brand) Normalize() Brand {
	b.Name = strings.TrimSpace(b.Name)
	return b
}
