package mapping

import (
	"github.com/corebanc/bankledger_app/internal/core/domain"
	"github.com/corebanc/bankledger_app/internal/models"
)

// ToModelAccount converts a domain.Account to its persistence model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		Number:    d.Number,
		Balance:   d.Balance,
		Fee:       d.Fee,
		Status:    string(d.Status),
		Type:      string(d.Type),
		ClientID:  d.ClientID,
	}
}

// ToDomainAccount converts a persistence model to a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Number:    m.Number,
		Balance:   m.Balance,
		Fee:       m.Fee,
		Status:    domain.AccountStatus(m.Status),
		Type:      domain.AccountType(m.Type),
		ClientID:  m.ClientID,
	}
}
