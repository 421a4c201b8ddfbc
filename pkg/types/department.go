package types

import "strings"

// Department is an organizational unit that owns zero or more roles.
type Department struct {
	ID   int64  `db:"id" json:"id"`     // Assigned by the store on insert.
	Name string `db:"name" json:"name"` // Not unique; duplicates are allowed.
}

// ValidateName trims name and returns ErrInvalidName if nothing is left.
// Shared by every free-text field the tool accepts.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}
