package accounting

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (CreateTransactionOutput, error)
	ListTransactions(ctx context.Context, input ListTransactionsInput) (ListTransactionsOutput, error)
}
