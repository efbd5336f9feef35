package entity

import (
	"time"

	"github.com/dianestephani/laango-backend/internal/domain"
)

// InterpreterContact rows are written once and never touched again.
type InterpreterContact struct {
	ID            int64 `gorm:"primary_key"`
	JobID         int64
	InterpreterID int64
	ContactedAt   time.Time `gorm:"autoCreateTime"`
	MessageSent   string
	PhoneNumber   string
}

func (InterpreterContact) TableName() string {
	return "interpreter_contacts"
}

func (c InterpreterContact) ToDomain() domain.ContactRecord {
	return domain.ContactRecord{
		ID:            c.ID,
		JobID:         c.JobID,
		InterpreterID: c.InterpreterID,
		ContactedAt:   c.ContactedAt,
		MessageSent:   c.MessageSent,
		PhoneNumber:   c.PhoneNumber,
	}
}
