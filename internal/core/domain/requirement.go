package domain

import "time"

// RequirementStatus is the fulfilment state of a staffing requirement.
type RequirementStatus string

const (
	RequirementOpen               RequirementStatus = "open"
	RequirementFulfilled          RequirementStatus = "fulfilled"
	RequirementPartiallyFulfilled RequirementStatus = "partially_fulfilled"
	RequirementClosed             RequirementStatus = "closed"
	RequirementOnHold             RequirementStatus = "on-hold"
)

func (s RequirementStatus) Valid() bool {
	switch s {
	case RequirementOpen, RequirementFulfilled, RequirementPartiallyFulfilled,
		RequirementClosed, RequirementOnHold:
		return true
	}
	return false
}

// RequirementPriority ranks how urgently a requirement must be staffed.
type RequirementPriority string

const (
	PriorityLow    RequirementPriority = "low"
	PriorityMedium RequirementPriority = "medium"
	PriorityHigh   RequirementPriority = "high"
	PriorityUrgent RequirementPriority = "urgent"
)

func (p RequirementPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ResourceRequirement is a client's request for staff with a given role.
type ResourceRequirement struct {
	ID              string              `json:"id" bson:"_id,omitempty"`
	Role            string              `json:"role" bson:"role"`
	Description     string              `json:"description,omitempty" bson:"description,omitempty"`
	ClientID        string              `json:"client_id" bson:"client_id"`
	ProjectName     string              `json:"project_name,omitempty" bson:"project_name,omitempty"`
	RequiredCount   int                 `json:"required_count" bson:"required_count"`
	FulfilledCount  int                 `json:"fulfilled_count" bson:"fulfilled_count"`
	SkillsRequired  string              `json:"skills_required,omitempty" bson:"skills_required,omitempty"`
	ExperienceLevel string              `json:"experience_level,omitempty" bson:"experience_level,omitempty"`
	Location        string              `json:"location,omitempty" bson:"location,omitempty"`
	StartDate       *time.Time          `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate         *time.Time          `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Status          RequirementStatus   `json:"status" bson:"status"`
	Priority        RequirementPriority `json:"priority" bson:"priority"`
	Notes           string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at"`
}

// Validate enforces the requirement's structural invariants, including
// fulfilled_count <= required_count.
func (r *ResourceRequirement) Validate() error {
	if r.RequiredCount < 1 {
		return NewValidation("required_count", "must be at least 1")
	}
	if r.FulfilledCount < 0 {
		return NewValidation("fulfilled_count", "must not be negative")
	}
	if r.FulfilledCount > r.RequiredCount {
		return NewValidation("fulfilled_count", "must not exceed required_count")
	}
	if !r.Status.Valid() {
		return NewValidation("status", "must be one of: open, fulfilled, partially_fulfilled, closed, on-hold")
	}
	if !r.Priority.Valid() {
		return NewValidation("priority", "must be one of: low, medium, high, urgent")
	}
	return nil
}
