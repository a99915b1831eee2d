package entities

import "time"

// ClientPriority is the operator-assigned tier of a client.
type ClientPriority string

const (
	ClientPriorityLow    ClientPriority = "low"
	ClientPriorityMedium ClientPriority = "medium"
	ClientPriorityHigh   ClientPriority = "high"
)

// Client is a company the back-office quotes and sells to.
//
// Storage model (DynamoDB):
//   - PK: id
type Client struct {
	ID            string         `json:"id"`
	CompanyName   string         `json:"company_name"`
	ContactPerson string         `json:"contact_person,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Country       string         `json:"country,omitempty"`
	City          string         `json:"city,omitempty"`
	Address       string         `json:"address,omitempty"`
	UsualDiscount float64        `json:"usual_discount,omitempty"`
	Priority      ClientPriority `json:"priority,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
