package models

import "time"

// Client is the persistence model for the clients table.
type Client struct {
	ClientID       string    `db:"client_id"`
	Name           string    `db:"name"`
	BirthDate      time.Time `db:"birth_date"`
	DocumentNumber string    `db:"document_number"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	CreatedAt      time.Time `db:"created_at"`
}
