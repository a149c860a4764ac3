package domain

import "time"

// Inquiry is a public contact-form submission. Unlike feedback it has no
// moderation lifecycle, only a read marker the back office flips.
type Inquiry struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FullName    string    `json:"full_name" bson:"full_name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	InquiryType string    `json:"inquiry_type" bson:"inquiry_type"`
	Message     string    `json:"message" bson:"message"`
	IsRead      bool      `json:"is_read" bson:"is_read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// DashboardStats is the admin landing-page summary: the work queue sizes
// (unread inquiries, pending feedback) next to the published inventory.
type DashboardStats struct {
	TotalInquiries     int64     `json:"total_inquiries"`
	UnreadInquiries    int64     `json:"unread_inquiries"`
	PendingFeedback    int64     `json:"pending_feedback"`
	ActiveTestimonials int64     `json:"active_testimonials"`
	LastUpdated        time.Time `json:"last_updated"`
}
