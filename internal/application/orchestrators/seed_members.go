package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookclub/internal/domain/member"
)

// DefaultMembers are seeded on first boot so the submission form's member
// selection is never empty.
var DefaultMembers = []string{"김철수", "이영희", "박민수", "최유진"}

// SeedMembersDeps holds dependencies for SeedMembers.
type SeedMembersDeps struct {
	MemberStore MemberStore
	Now         func() time.Time
}

// ExecuteSeedMembers creates the default member set if no members exist.
// Seeding never re-runs once any member is present.
// POST: Store contains at least the default members on a fresh database;
// an already-populated store is left untouched
func ExecuteSeedMembers(ctx context.Context, deps SeedMembersDeps) error {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	count, err := deps.MemberStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	for _, name := range DefaultMembers {
		_, err := deps.MemberStore.Insert(ctx, member.Member{
			Name:      name,
			CreatedAt: now().UTC(),
		})
		// A concurrent boot may have inserted the same name between the
		// count and this insert; the constraint makes that harmless.
		if err != nil && !errors.Is(err, member.ErrDuplicateName) {
			return err
		}
	}

	slog.Info("members_seeded", "count", len(DefaultMembers))
	return nil
}
