package domain

import "time"

// ContactRecord is one audit entry for a message sent to an interpreter
// about a job. Records are append-only; nothing in the system edits or
// deletes them.
type ContactRecord struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"job_id"`
	InterpreterID int64     `json:"interpreter_id"`
	ContactedAt   time.Time `json:"contacted_at"`
	MessageSent   string    `json:"message_sent"`
	PhoneNumber   string    `json:"phone_number"`
}
