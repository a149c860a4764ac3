package domain

import "time"

// ContractStatus is the lifecycle state of a client contract.
type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractCompleted  ContractStatus = "completed"
	ContractTerminated ContractStatus = "terminated"
	ContractExpired    ContractStatus = "expired"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractCompleted, ContractTerminated, ContractExpired:
		return true
	}
	return false
}

// Contract is an engagement agreement owned by a Client.
type Contract struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Name           string         `json:"name" bson:"name"`
	ContractNumber string         `json:"contract_number,omitempty" bson:"contract_number,omitempty"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	ClientID       string         `json:"client_id" bson:"client_id"`
	StartDate      time.Time      `json:"start_date" bson:"start_date"`
	EndDate        time.Time      `json:"end_date" bson:"end_date"`
	ContractValue  float64        `json:"contract_value,omitempty" bson:"contract_value,omitempty"`
	Currency       string         `json:"currency" bson:"currency"`
	Status         ContractStatus `json:"status" bson:"status"`
	PaymentTerms   string         `json:"payment_terms,omitempty" bson:"payment_terms,omitempty"`
	DocumentURL    string         `json:"document_url,omitempty" bson:"document_url,omitempty"`
	Terms          string         `json:"terms,omitempty" bson:"terms,omitempty"`
	Notes          string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// Validate enforces the contract's structural invariants.
func (c *Contract) Validate() error {
	if c.EndDate.Before(c.StartDate) {
		return NewValidation("end_date", "must not be before start_date")
	}
	if !c.Status.Valid() {
		return NewValidation("status", "must be one of: active, completed, terminated, expired")
	}
	return nil
}
