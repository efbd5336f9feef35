package entity

import (
	"time"

	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/lib/pq"
)

type Interpreter struct {
	ID            int64 `gorm:"primary_key"`
	FirstName     string
	LastName      string
	PhoneNumber   string
	EmailAddress  string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
	Certified     bool
	Languages     pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Interpreter) TableName() string {
	return "interpreters"
}

func (i Interpreter) ToDomain() domain.Interpreter {
	langs := make([]domain.Language, len(i.Languages))
	for n, l := range i.Languages {
		langs[n] = domain.Language(l)
	}

	return domain.Interpreter{
		ID:            i.ID,
		FirstName:     i.FirstName,
		LastName:      i.LastName,
		PhoneNumber:   i.PhoneNumber,
		EmailAddress:  i.EmailAddress,
		StreetAddress: i.StreetAddress,
		City:          i.City,
		State:         i.State,
		ZipCode:       i.ZipCode,
		Certified:     i.Certified,
		Languages:     langs,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func InterpreterFromDomain(d domain.Interpreter) Interpreter {
	return Interpreter{
		ID:            d.ID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		PhoneNumber:   d.PhoneNumber,
		EmailAddress:  d.EmailAddress,
		StreetAddress: d.StreetAddress,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		Certified:     d.Certified,
		Languages:     pq.StringArray(domain.LanguageStrings(d.Languages)),
		CreatedAt:     d.CreatedAt,
	}
}
