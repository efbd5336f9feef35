package domain

import "time"

type RecipientOutcome string

const (
	OutcomeSent   RecipientOutcome = "sent"
	OutcomeFailed RecipientOutcome = "failed"
)

// RecipientResult is the per-phone outcome of one dispatch batch entry.
type RecipientResult struct {
	PhoneNumber       string           `json:"phone_number"`
	Outcome           RecipientOutcome `json:"outcome"`
	ProviderMessageID string           `json:"provider_message_id,omitempty"`
	ErrorDetail       string           `json:"error_detail,omitempty"`
}

// DispatchReport aggregates a whole batch. Once preconditions pass the
// batch itself never fails; individual failures live in Results.
type DispatchReport struct {
	DispatchID  string            `json:"dispatch_id"`
	JobID       int64             `json:"job_id"`
	SentCount   int               `json:"sent_count"`
	FailedCount int               `json:"failed_count"`
	Results     []RecipientResult `json:"results"`
}

// DispatchEvent is the status record published per recipient after a
// send attempt resolves.
type DispatchEvent struct {
	DispatchID        string           `json:"dispatch_id"`
	JobID             int64            `json:"job_id"`
	PhoneNumber       string           `json:"phone_number"`
	Outcome           RecipientOutcome `json:"outcome"`
	ProviderMessageID string           `json:"provider_message_id,omitempty"`
	ErrorDetail       string           `json:"error_detail,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}
