package domain

import (
	"fmt"
	"time"
)

type Interpreter struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	PhoneNumber   string     `json:"phone_number"`
	EmailAddress  string     `json:"email_address"`
	StreetAddress string     `json:"street_address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	ZipCode       string     `json:"zip_code"`
	Certified     bool       `json:"certified"`
	Languages     []Language `json:"languages"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (i Interpreter) FullName() string {
	return fmt.Sprintf("%s %s", i.FirstName, i.LastName)
}

// SpokenSubset returns the subset of needed that the interpreter speaks,
// in needed's order.
func (i Interpreter) SpokenSubset(needed []Language) []Language {
	return IntersectLanguages(needed, i.Languages)
}
