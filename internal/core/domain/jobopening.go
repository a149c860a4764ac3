package domain

import "time"

// JobOpeningStatus is the lifecycle state of a job opening.
type JobOpeningStatus string

const (
	JobOpen   JobOpeningStatus = "open"
	JobClosed JobOpeningStatus = "closed"
	JobOnHold JobOpeningStatus = "on-hold"
)

func (s JobOpeningStatus) Valid() bool {
	switch s {
	case JobOpen, JobClosed, JobOnHold:
		return true
	}
	return false
}

// JobOpening is a position candidates apply to. It owns its Candidates:
// deleting an opening cascades to them.
type JobOpening struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	Title            string           `json:"title" bson:"title"`
	Description      string           `json:"description,omitempty" bson:"description,omitempty"`
	Department       string           `json:"department,omitempty" bson:"department,omitempty"`
	Location         string           `json:"location,omitempty" bson:"location,omitempty"`
	EmploymentType   string           `json:"employment_type,omitempty" bson:"employment_type,omitempty"`
	ExperienceLevel  string           `json:"experience_level,omitempty" bson:"experience_level,omitempty"`
	SalaryRange      string           `json:"salary_range,omitempty" bson:"salary_range,omitempty"`
	Requirements     string           `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Responsibilities string           `json:"responsibilities,omitempty" bson:"responsibilities,omitempty"`
	Status           JobOpeningStatus `json:"status" bson:"status"`
	OpeningsCount    int              `json:"openings_count" bson:"openings_count"`
	CompanyID        string           `json:"company_id,omitempty" bson:"company_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" bson:"updated_at"`
}

// ToggleStatus flips the opening between open and closed. An opening that
// is on-hold is not toggle-eligible.
func (j *JobOpening) ToggleStatus() error {
	switch j.Status {
	case JobOpen:
		j.Status = JobClosed
	case JobClosed:
		j.Status = JobOpen
	default:
		return NewConflict("job opening status '" + string(j.Status) + "' cannot be toggled")
	}
	return nil
}
