package book

import (
	"errors"
	"strings"
)

// Rating bounds for a book entry.
const (
	MinRating = 0
	MaxRating = 5
)

// Domain errors
var (
	ErrEmptyMemberName = errors.New("member name cannot be empty")
	ErrEmptyTitle      = errors.New("book title cannot be empty")
)

// Entry is one member's record of a book. Entries are not persisted locally;
// they exist only long enough to be mirrored to the external note service.
type Entry struct {
	MemberName string
	Title      string
	Author     string
	Genre      string
	Completed  bool
	Rating     int
	Review     string
}

// Validate checks if the Entry has valid data.
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: MemberName and Title must be non-empty; Rating within bounds
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.MemberName) == "" {
		return ErrEmptyMemberName
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Rating < MinRating || e.Rating > MaxRating {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

// ClampRating forces the rating into the valid range.
// POST: MinRating <= Rating <= MaxRating
func (e *Entry) ClampRating() {
	if e.Rating < MinRating {
		e.Rating = MinRating
	}
	if e.Rating > MaxRating {
		e.Rating = MaxRating
	}
}

// Metadata is descriptive catalog data for a book, as returned by the
// external book-metadata service. A zero Metadata means nothing was found;
// callers receive it together with a found flag rather than a nil sentinel.
type Metadata struct {
	Title         string
	Authors       []string
	Description   string
	Categories    []string
	PublishedDate string
	PageCount     int
}
