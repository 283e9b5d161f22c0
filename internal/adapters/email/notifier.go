package email

import "context"

// Notifier sends organizer notifications to a fixed recipient.
// A zero recipient disables notifications without branching at call sites.
type Notifier struct {
	sender Sender
	to     string
	from   string
}

// NewNotifier creates a Notifier. When to is empty, Notify is a no-op.
func NewNotifier(sender Sender, to, from string) *Notifier {
	return &Notifier{sender: sender, to: to, from: from}
}

// Notify sends one HTML notification to the configured organizer address.
// POST: nil when notifications are disabled or the send was accepted
func (n *Notifier) Notify(ctx context.Context, subject, htmlBody string) error {
	if n == nil || n.sender == nil || n.to == "" {
		return nil
	}
	_, err := n.sender.Send(ctx, SendRequest{
		To:      []string{n.to},
		From:    n.from,
		Subject: subject,
		HTML:    htmlBody,
	})
	return err
}
