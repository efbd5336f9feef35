package domain

import (
	"fmt"
	"time"
)

type JobType string

const (
	JobTypeMedical JobType = "medical"
	JobTypeLegal   JobType = "legal"
	JobTypeOther   JobType = "other"
)

type JobStatus string

const (
	JobStatusUnassigned JobStatus = "unassigned"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

type Job struct {
	ID                    int64      `json:"id"`
	NeededLanguages       []Language `json:"languages"`
	StreetAddress         string     `json:"street_address"`
	City                  string     `json:"city"`
	State                 string     `json:"state"`
	ZipCode               string     `json:"zip_code"`
	Date                  time.Time  `json:"date"`
	StartTime             string     `json:"time"`
	JobType               JobType    `json:"job_type"`
	Status                JobStatus  `json:"status"`
	RequiresCertification bool       `json:"requires_certification"`
	Payment               int        `json:"payment"`
	MileageIncluded       bool       `json:"mileage_included"`
	AssignedInterpreterID *int64     `json:"assigned_interpreter_id"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (j Job) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", j.StreetAddress, j.City, j.State, j.ZipCode)
}
