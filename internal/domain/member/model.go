package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrEmptyName     = errors.New("member name cannot be empty")
	ErrDuplicateName = errors.New("member name already exists")
	ErrNotFound      = errors.New("member not found")
)

// Member holds state for one book-club participant. Members are identified
// by a unique display name; the integer ID is assigned by the store.
type Member struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Normalize trims surrounding whitespace from the name.
// POST: Name carries no leading or trailing whitespace
func (m *Member) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
}

// Validate checks if the Member has valid data.
// PRE: Normalize has been applied
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name must be non-empty and within MaxNameLength
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 100 characters")
	}
	return nil
}
