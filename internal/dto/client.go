package dto

import (
	"time"

	"github.com/corebanc/bankledger_app/internal/core/domain"
)

// RegisterClientRequest defines the data needed to register a client.
type RegisterClientRequest struct {
	Name            string    `json:"name" binding:"required,max=100"`
	BirthDate       time.Time `json:"birthDate" binding:"required"`
	DocumentNumber  string    `json:"documentNumber" binding:"required,max=14"`
	Email           string    `json:"email" binding:"required,email"`
	Password        string    `json:"password" binding:"required,min=8"`
	ConfirmPassword string    `json:"confirmPassword" binding:"required,min=8"`
}

// ClientResponse defines the data returned for a client. The credential hash
// never leaves the service layer.
type ClientResponse struct {
	ClientID       string            `json:"clientID"`
	Name           string            `json:"name"`
	DocumentNumber string            `json:"documentNumber"`
	Email          string            `json:"email"`
	Accounts       []AccountResponse `json:"accounts,omitempty"`
}

// ToClientResponse converts a domain.Client to a ClientResponse DTO.
func ToClientResponse(client *domain.Client) ClientResponse {
	resp := ClientResponse{
		ClientID:       client.ClientID,
		Name:           client.Name,
		DocumentNumber: client.DocumentNumber,
		Email:          client.Email,
	}
	if len(client.Accounts) > 0 {
		resp.Accounts = ToAccountResponses(client.Accounts)
	}
	return resp
}
