package domain

import "time"

// Company is a hiring organization that owns job openings.
type Company struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	LogoURL      string    `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	WebsiteURL   string    `json:"website_url,omitempty" bson:"website_url,omitempty"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	DisplayOrder int       `json:"display_order" bson:"display_order"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
