package usecase

import (
	"context"

	"egy-discovery/internal/accounting"
	repo "egy-discovery/internal/accounting/repository"
)

// ListTransactions returns up to ListLimit Transactions, newest first.
func (uc *implUseCase) ListTransactions(ctx context.Context, input accounting.ListTransactionsInput) (accounting.ListTransactionsOutput, error) {
	txs, err := uc.repo.ListTransactions(ctx, repo.ListTransactionsOptions{
		Account:  input.Account,
		Category: input.Category,
		Limit:    accounting.ListLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTransactions ListTransactions: %v", err)
		return accounting.ListTransactionsOutput{}, err
	}

	return accounting.ListTransactionsOutput{Transactions: txs}, nil
}
