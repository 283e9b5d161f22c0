package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"bookclub/internal/domain/book"
)

// NoteMirror writes a book entry to the external note service.
type NoteMirror interface {
	Mirror(ctx context.Context, entry book.Entry) error
}

// OrganizerNotifier sends a notification to the club organizer.
type OrganizerNotifier interface {
	Notify(ctx context.Context, subject, htmlBody string) error
}

// RecordBookInput carries the submitted book entry fields.
type RecordBookInput struct {
	MemberName string
	Title      string
	Author     string
	Genre      string
	Completed  bool
	Rating     int
	Review     string
}

// RecordBookDeps holds dependencies for RecordBook.
type RecordBookDeps struct {
	Mirror   NoteMirror
	Notifier OrganizerNotifier
}

// ExecuteRecordBook validates a book entry and mirrors it to the note
// service. The entry is transient: on failure it is discarded, never queued
// or retried. A successful mirror optionally notifies the organizer; a
// failed notification is logged, not surfaced.
// PRE: deps.Mirror is non-nil
// POST: nil when the entry was mirrored; otherwise the validation or mirror error
func ExecuteRecordBook(ctx context.Context, input RecordBookInput, deps RecordBookDeps) error {
	entry := book.Entry{
		MemberName: input.MemberName,
		Title:      input.Title,
		Author:     input.Author,
		Genre:      input.Genre,
		Completed:  input.Completed,
		Rating:     input.Rating,
		Review:     input.Review,
	}
	entry.ClampRating()
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := deps.Mirror.Mirror(ctx, entry); err != nil {
		return err
	}

	if deps.Notifier != nil {
		subject := fmt.Sprintf("독서 기록: %s — %s", entry.MemberName, entry.Title)
		body := fmt.Sprintf("<p>%s님이 <strong>%s</strong>(%s)을(를) 기록했습니다. 별점 %d/5</p>",
			html.EscapeString(entry.MemberName), html.EscapeString(entry.Title),
			html.EscapeString(entry.Author), entry.Rating)
		if err := deps.Notifier.Notify(ctx, subject, body); err != nil {
			slog.Warn("organizer_notify_failed", "error", err, "title", entry.Title)
		}
	}
	return nil
}
