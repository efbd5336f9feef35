package entity

import (
	"time"

	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/lib/pq"
)

type Job struct {
	ID                    int64          `gorm:"primary_key"`
	Languages             pq.StringArray `gorm:"type:text[]"`
	StreetAddress         string
	City                  string
	State                 string
	ZipCode               string
	Date                  time.Time `gorm:"type:date"`
	StartTime             string
	JobType               string
	Status                string
	RequiresCertification bool
	Payment               int
	MileageIncluded       bool
	AssignedInterpreterID *int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Job) TableName() string {
	return "jobs"
}

func (j Job) ToDomain() domain.Job {
	langs := make([]domain.Language, len(j.Languages))
	for n, l := range j.Languages {
		langs[n] = domain.Language(l)
	}

	return domain.Job{
		ID:                    j.ID,
		NeededLanguages:       langs,
		StreetAddress:         j.StreetAddress,
		City:                  j.City,
		State:                 j.State,
		ZipCode:               j.ZipCode,
		Date:                  j.Date,
		StartTime:             j.StartTime,
		JobType:               domain.JobType(j.JobType),
		Status:                domain.JobStatus(j.Status),
		RequiresCertification: j.RequiresCertification,
		Payment:               j.Payment,
		MileageIncluded:       j.MileageIncluded,
		AssignedInterpreterID: j.AssignedInterpreterID,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}

func JobFromDomain(d domain.Job) Job {
	return Job{
		ID:                    d.ID,
		Languages:             pq.StringArray(domain.LanguageStrings(d.NeededLanguages)),
		StreetAddress:         d.StreetAddress,
		City:                  d.City,
		State:                 d.State,
		ZipCode:               d.ZipCode,
		Date:                  d.Date,
		StartTime:             d.StartTime,
		JobType:               string(d.JobType),
		Status:                string(d.Status),
		RequiresCertification: d.RequiresCertification,
		Payment:               d.Payment,
		MileageIncluded:       d.MileageIncluded,
		AssignedInterpreterID: d.AssignedInterpreterID,
	}
}
