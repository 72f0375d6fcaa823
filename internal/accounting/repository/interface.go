package repository

import (
	"context"

	"egy-discovery/internal/accounting"
)

// Repository is the composed interface for the accounting data store.
type Repository interface {
	TransactionRepository
}

// TransactionRepository defines all data access methods for the Transaction entity.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, opt CreateTransactionOptions) (accounting.Transaction, error)
	ListTransactions(ctx context.Context, opt ListTransactionsOptions) ([]accounting.Transaction, error)
}
