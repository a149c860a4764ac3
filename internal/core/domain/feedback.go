package domain

import "time"

// FeedbackStatus is the moderation state of a submitted feedback.
// pending is the only non-terminal state.
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackApproved FeedbackStatus = "approved"
	FeedbackRejected FeedbackStatus = "rejected"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackPending, FeedbackApproved, FeedbackRejected:
		return true
	}
	return false
}

// Feedback is a public submission awaiting moderation.
type Feedback struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	Name      string         `json:"name" bson:"name"`
	Email     string         `json:"email,omitempty" bson:"email,omitempty"`
	Rating    int            `json:"rating" bson:"rating"`
	Feedback  string         `json:"feedback" bson:"feedback"`
	Consent   bool           `json:"consent" bson:"consent"`
	Status    FeedbackStatus `json:"status" bson:"status"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// Testimonial is the public artifact materialized when a feedback is
// approved. FeedbackID is a back-reference only, never an ownership link.
type Testimonial struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	FeedbackID string    `json:"feedback_id,omitempty" bson:"feedback_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email,omitempty" bson:"email,omitempty"`
	Rating     int       `json:"rating" bson:"rating"`
	Message    string    `json:"message" bson:"message"`
	Role       string    `json:"role,omitempty" bson:"role,omitempty"`
	IsActive   bool      `json:"is_active" bson:"is_active"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// FromFeedback copies the public fields of an approved feedback into a
// new active testimonial carrying the supplied role.
func FromFeedback(f *Feedback, role string, now time.Time) *Testimonial {
	return &Testimonial{
		FeedbackID: f.ID,
		Name:       f.Name,
		Email:      f.Email,
		Rating:     f.Rating,
		Message:    f.Feedback,
		Role:       role,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
