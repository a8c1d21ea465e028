package mapping

import (
	"github.com/corebanc/bankledger_app/internal/core/domain"
	"github.com/corebanc/bankledger_app/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its persistence model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Type:            string(d.Type),
		Amount:          d.Amount,
		Timestamp:       d.Timestamp,
		SourceAccountID: d.SourceAccountID,
		TargetAccountID: d.TargetAccountID,
	}
}

// ToDomainTransaction converts a persistence model to a domain.Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Type:            domain.TransactionType(m.Type),
		Amount:          m.Amount,
		Timestamp:       m.Timestamp,
		SourceAccountID: m.SourceAccountID,
		TargetAccountID: m.TargetAccountID,
	}
}

// ToDomainTransactionSlice converts a slice of persistence models.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
