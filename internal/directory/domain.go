// Package directory holds the people around a sale: customers, sellers and
// cashiers. Sales reference them by id; lookups degrade to a placeholder
// instead of failing.
package directory

import "errors"

// Customer is a buyer record with light CRM fields.
type Customer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	AvatarURL     string  `json:"avatarUrl"`
	LastOrderDate string  `json:"lastOrderDate"`
	TotalSpent    float64 `json:"totalSpent"`
}

// Party is a staff member who can be attached to a sale. The password is
// stored hashed only.
type Party struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

var (
	// ErrNotFound indicates no record carries the requested id.
	ErrNotFound = errors.New("directory: record not found")
	// ErrBadCredentials indicates a failed password check.
	ErrBadCredentials = errors.New("directory: bad credentials")
)
