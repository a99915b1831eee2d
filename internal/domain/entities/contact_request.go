package entities

import "time"

// ContactRequest is an inbound inquiry from the public storefront.
//
// A request carries no client reference; attribution to a client happens
// heuristically at aggregation time (case-insensitive match on email, company
// name, or contact-person name).
//
// Storage model (DynamoDB):
//   - PK: id
type ContactRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
