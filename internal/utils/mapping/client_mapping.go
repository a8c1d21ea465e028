package mapping

import (
	"github.com/corebanc/bankledger_app/internal/core/domain"
	"github.com/corebanc/bankledger_app/internal/models"
)

// ToModelClient converts a domain.Client to its persistence model.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		Name:           d.Name,
		BirthDate:      d.BirthDate,
		DocumentNumber: d.DocumentNumber,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainClient converts a persistence model to a domain.Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:       m.ClientID,
		Name:           m.Name,
		BirthDate:      m.BirthDate,
		DocumentNumber: m.DocumentNumber,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		CreatedAt:      m.CreatedAt,
	}
}
