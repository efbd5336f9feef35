package provider

import "context"

// SMSProvider is the capability the dispatcher needs from a messaging
// backend: deliver one body to one number and hand back the provider's
// message id. Implementations may fail per call; the caller decides
// what a failure means for the batch.
type SMSProvider interface {
	Send(ctx context.Context, to, body string) (messageID string, err error)
}
