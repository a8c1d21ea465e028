package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a registered bank client. Apart from its account collection
// growing, a client is immutable after registration.
type Client struct {
	ClientID       string    `json:"clientID"`
	Name           string    `json:"name"`
	BirthDate      time.Time `json:"birthDate"`
	DocumentNumber string    `json:"documentNumber"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Accounts       []Account `json:"accounts,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewClient creates a client with a fresh identity. The password must already
// be hashed by the credential boundary.
func NewClient(name, documentNumber string, birthDate time.Time, email, passwordHash string) Client {
	return Client{
		ClientID:       uuid.NewString(),
		Name:           name,
		BirthDate:      birthDate,
		DocumentNumber: documentNumber,
		Email:          email,
		PasswordHash:   passwordHash,
		CreatedAt:      time.Now().UTC(),
	}
}
