package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookclub/internal/domain/book"
)

// mockMirror implements NoteMirror for testing.
type mockMirror struct {
	calls   int
	last    book.Entry
	failErr error
}

// Mirror implements the mock NoteMirror.
// POST: records the call and returns the configured error
func (m *mockMirror) Mirror(_ context.Context, entry book.Entry) error {
	m.calls++
	m.last = entry
	return m.failErr
}

// mockNotifier implements OrganizerNotifier for testing.
type mockNotifier struct {
	calls       int
	lastSubject string
	failErr     error
}

// Notify implements the mock OrganizerNotifier.
// POST: records the call and returns the configured error
func (m *mockNotifier) Notify(_ context.Context, subject, _ string) error {
	m.calls++
	m.lastSubject = subject
	return m.failErr
}

func validInput() RecordBookInput {
	return RecordBookInput{
		MemberName: "김철수",
		Title:      "그리스인 조르바",
		Author:     "니코스 카잔차키스",
		Genre:      "소설",
		Completed:  true,
		Rating:     5,
		Review:     "자유에 대해 다시 생각하게 됐다.",
	}
}

// TestExecuteRecordBook_Success tests the happy path with notification.
func TestExecuteRecordBook_Success(t *testing.T) {
	mirror := &mockMirror{}
	notifier := &mockNotifier{}
	err := ExecuteRecordBook(context.Background(), validInput(), RecordBookDeps{Mirror: mirror, Notifier: notifier})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mirror.calls != 1 {
		t.Errorf("expected 1 mirror call, got %d", mirror.calls)
	}
	if mirror.last.Title != "그리스인 조르바" || !mirror.last.Completed {
		t.Errorf("unexpected mirrored entry: %+v", mirror.last)
	}
	if notifier.calls != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.calls)
	}
	if !strings.Contains(notifier.lastSubject, "그리스인 조르바") {
		t.Errorf("unexpected subject %q", notifier.lastSubject)
	}
}

// TestExecuteRecordBook_MirrorFailure tests that the error surfaces and no
// notification is sent.
func TestExecuteRecordBook_MirrorFailure(t *testing.T) {
	mirrorErr := errors.New("notion: status 400")
	mirror := &mockMirror{failErr: mirrorErr}
	notifier := &mockNotifier{}
	err := ExecuteRecordBook(context.Background(), validInput(), RecordBookDeps{Mirror: mirror, Notifier: notifier})
	if !errors.Is(err, mirrorErr) {
		t.Fatalf("expected mirror error, got %v", err)
	}
	if notifier.calls != 0 {
		t.Errorf("expected no notification on failure, got %d", notifier.calls)
	}
}

// TestExecuteRecordBook_ValidationFailure tests that invalid entries never
// reach the mirror.
func TestExecuteRecordBook_ValidationFailure(t *testing.T) {
	mirror := &mockMirror{}
	input := validInput()
	input.Title = "   "
	err := ExecuteRecordBook(context.Background(), input, RecordBookDeps{Mirror: mirror})
	if !errors.Is(err, book.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if mirror.calls != 0 {
		t.Errorf("expected no mirror call, got %d", mirror.calls)
	}
}

// TestExecuteRecordBook_ClampsRating tests out-of-range rating coercion.
func TestExecuteRecordBook_ClampsRating(t *testing.T) {
	mirror := &mockMirror{}
	input := validInput()
	input.Rating = 11
	if err := ExecuteRecordBook(context.Background(), input, RecordBookDeps{Mirror: mirror}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mirror.last.Rating != book.MaxRating {
		t.Errorf("expected clamped rating %d, got %d", book.MaxRating, mirror.last.Rating)
	}
}

// TestExecuteRecordBook_NotifierFailureIgnored tests that a failed
// notification does not fail the recording.
func TestExecuteRecordBook_NotifierFailureIgnored(t *testing.T) {
	mirror := &mockMirror{}
	notifier := &mockNotifier{failErr: errors.New("resend down")}
	if err := ExecuteRecordBook(context.Background(), validInput(), RecordBookDeps{Mirror: mirror, Notifier: notifier}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
