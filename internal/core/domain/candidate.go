package domain

import "time"

// InterviewStage is the current step of a candidate in the hiring pipeline.
// Stages may be assigned freely by an authorized caller; the set is closed
// but there is no enforced adjacency (human-driven process).
type InterviewStage string

const (
	StageScreening InterviewStage = "screening"
	StageTechnical InterviewStage = "technical"
	StageHR        InterviewStage = "hr"
	StageFinal     InterviewStage = "final"
	StageOffered   InterviewStage = "offered"
	StageRejected  InterviewStage = "rejected"
)

func (s InterviewStage) Valid() bool {
	switch s {
	case StageScreening, StageTechnical, StageHR, StageFinal, StageOffered, StageRejected:
		return true
	}
	return false
}

// FinalStatus is the aggregate outcome of an application, distinct from
// the interview stage.
type FinalStatus string

const (
	FinalInProgress FinalStatus = "in-progress"
	FinalSelected   FinalStatus = "selected"
	FinalRejected   FinalStatus = "rejected"
	FinalOffered    FinalStatus = "offered"
	FinalJoined     FinalStatus = "joined"
)

func (s FinalStatus) Valid() bool {
	switch s {
	case FinalInProgress, FinalSelected, FinalRejected, FinalOffered, FinalJoined:
		return true
	}
	return false
}

// Candidate is an applicant attached to a JobOpening. AppliedAt is set
// once at first persistence and never changes.
type Candidate struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	Name            string         `json:"name" bson:"name"`
	Email           string         `json:"email" bson:"email"`
	Phone           string         `json:"phone,omitempty" bson:"phone,omitempty"`
	ResumeURL       string         `json:"resume_url,omitempty" bson:"resume_url,omitempty"`
	LinkedinURL     string         `json:"linkedin_url,omitempty" bson:"linkedin_url,omitempty"`
	CurrentCompany  string         `json:"current_company,omitempty" bson:"current_company,omitempty"`
	TotalExperience float64        `json:"total_experience,omitempty" bson:"total_experience,omitempty"`
	Skills          string         `json:"skills,omitempty" bson:"skills,omitempty"`
	InterviewStage  InterviewStage `json:"interview_stage" bson:"interview_stage"`
	FinalStatus     FinalStatus    `json:"final_status" bson:"final_status"`
	HRNotes         string         `json:"hr_notes,omitempty" bson:"hr_notes,omitempty"`
	JobOpeningID    string         `json:"job_opening_id" bson:"job_opening_id"`
	AppliedAt       time.Time      `json:"applied_at" bson:"applied_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
}
