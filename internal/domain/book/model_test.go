package book

import "testing"

// TestValidate_Valid tests a complete entry.
func TestValidate_Valid(t *testing.T) {
	e := Entry{MemberName: "김철수", Title: "그리스인 조르바", Author: "니코스 카잔차키스", Rating: 5}
	if err := e.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_MissingFields tests required-field checks.
func TestValidate_MissingFields(t *testing.T) {
	e := Entry{Title: "그리스인 조르바"}
	if err := e.Validate(); err != ErrEmptyMemberName {
		t.Errorf("expected ErrEmptyMemberName, got %v", err)
	}

	e = Entry{MemberName: "김철수", Title: "  "}
	if err := e.Validate(); err != ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

// TestValidate_RatingBounds tests the rating range.
func TestValidate_RatingBounds(t *testing.T) {
	e := Entry{MemberName: "a", Title: "b", Rating: 6}
	if err := e.Validate(); err == nil {
		t.Error("expected error for rating above bounds")
	}
	e.Rating = -1
	if err := e.Validate(); err == nil {
		t.Error("expected error for negative rating")
	}
}

// TestClampRating tests forcing a rating into range.
func TestClampRating(t *testing.T) {
	e := Entry{Rating: 9}
	e.ClampRating()
	if e.Rating != MaxRating {
		t.Errorf("expected %d, got %d", MaxRating, e.Rating)
	}
	e.Rating = -3
	e.ClampRating()
	if e.Rating != MinRating {
		t.Errorf("expected %d, got %d", MinRating, e.Rating)
	}
}
