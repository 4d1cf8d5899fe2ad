package notify

import "context"

// Mailer is a minimal abstraction for outbound email used by the domain.
// Delivery is fire-and-forget: callers log failures and never roll back.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
