package domain

import "time"

// ClientStatus is the lifecycle state of a consultancy client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientProspect ClientStatus = "prospect"
)

// Valid reports whether s is one of the closed set of client statuses.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientProspect:
		return true
	}
	return false
}

// Client is a consultancy customer. It owns its Contracts and
// ResourceRequirements: deleting a client cascades to both.
type Client struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	Name          string       `json:"name" bson:"name"`
	CompanyName   string       `json:"company_name,omitempty" bson:"company_name,omitempty"`
	Email         string       `json:"email,omitempty" bson:"email,omitempty"`
	Phone         string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string       `json:"address,omitempty" bson:"address,omitempty"`
	Industry      string       `json:"industry,omitempty" bson:"industry,omitempty"`
	WebsiteURL    string       `json:"website_url,omitempty" bson:"website_url,omitempty"`
	ContactPerson string       `json:"contact_person,omitempty" bson:"contact_person,omitempty"`
	Status        ClientStatus `json:"status" bson:"status"`
	Notes         string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" bson:"updated_at"`
}

// ToggleStatus flips the client between active and inactive. A client in
// any other state (prospect) is not toggle-eligible and the call fails
// with a conflict rather than silently coercing the status.
func (c *Client) ToggleStatus() error {
	switch c.Status {
	case ClientActive:
		c.Status = ClientInactive
	case ClientInactive:
		c.Status = ClientActive
	default:
		return NewConflict("client status '" + string(c.Status) + "' cannot be toggled")
	}
	return nil
}
