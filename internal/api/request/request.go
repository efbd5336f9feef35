package request

type CreateInterpreterRequest struct {
	FirstName     string   `json:"first_name" binding:"required"`
	LastName      string   `json:"last_name" binding:"required"`
	PhoneNumber   string   `json:"phone_number" binding:"required"`
	EmailAddress  string   `json:"email_address" binding:"required,email"`
	StreetAddress string   `json:"street_address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Certified     bool     `json:"certified"`
	Languages     []string `json:"languages"`
}

type UpdateInterpreterRequest struct {
	FirstName     string   `json:"first_name" binding:"required"`
	LastName      string   `json:"last_name" binding:"required"`
	PhoneNumber   string   `json:"phone_number" binding:"required"`
	EmailAddress  string   `json:"email_address" binding:"required,email"`
	StreetAddress string   `json:"street_address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Certified     bool     `json:"certified"`
	Languages     []string `json:"languages"`
}

type CreateJobRequest struct {
	Languages             []string `json:"languages"`
	StreetAddress         string   `json:"street_address"`
	City                  string   `json:"city"`
	State                 string   `json:"state"`
	ZipCode               string   `json:"zip_code"`
	Date                  string   `json:"date" binding:"required"` // 2006-01-02
	Time                  string   `json:"time" binding:"required"` // 15:04
	JobType               string   `json:"job_type" binding:"required,oneof=medical legal other"`
	RequiresCertification bool     `json:"requires_certification"`
	Payment               int      `json:"payment"`
	MileageIncluded       bool     `json:"mileage_included"`
}

// DispatchRequest fields are validated by the dispatcher itself so a
// missing field surfaces as its structured validation error, not as a
// binding failure.
type DispatchRequest struct {
	JobID        int64    `json:"job_id"`
	PhoneNumbers []string `json:"phone_numbers"`
	Message      string   `json:"message"`
}
