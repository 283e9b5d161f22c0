package member

import (
	"context"

	domain "bookclub/internal/domain/member"
)

// Store persists Member state. Insert surfaces domain.ErrDuplicateName when
// the UNIQUE name constraint rejects the row; the uniqueness invariant lives
// in the storage layer, not in a check-then-act read, so concurrent
// submissions cannot race.
type Store interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByName(ctx context.Context, name string) (domain.Member, error)
	Insert(ctx context.Context, value domain.Member) (domain.Member, error)
	Count(ctx context.Context) (int, error)
}
