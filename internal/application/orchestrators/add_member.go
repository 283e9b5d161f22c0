package orchestrators

import (
	"context"
	"time"

	"bookclub/internal/domain/member"
)

// MemberStore defines the interface for member persistence.
type MemberStore interface {
	List(ctx context.Context) ([]member.Member, error)
	Insert(ctx context.Context, m member.Member) (member.Member, error)
	Count(ctx context.Context) (int, error)
}

// AddMemberInput carries input for the orchestrator.
type AddMemberInput struct {
	Name string
}

// AddMemberDeps holds dependencies for AddMember.
type AddMemberDeps struct {
	MemberStore MemberStore
	Now         func() time.Time
}

// ExecuteAddMember coordinates adding a club member.
// PRE: deps.MemberStore is non-nil
// POST: Member created with a server-assigned id and UTC timestamp, or
// member.ErrEmptyName / member.ErrDuplicateName without state change
// INVARIANT: Name uniqueness enforced by the store's constraint
func ExecuteAddMember(ctx context.Context, input AddMemberInput, deps AddMemberDeps) (member.Member, error) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	m := member.Member{Name: input.Name}
	m.Normalize()
	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
	m.CreatedAt = now().UTC()

	return deps.MemberStore.Insert(ctx, m)
}
