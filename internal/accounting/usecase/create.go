package usecase

import (
	"context"

	"egy-discovery/internal/accounting"
	repo "egy-discovery/internal/accounting/repository"
)

// CreateTransaction records a new Transaction. Currency defaults to USD.
func (uc *implUseCase) CreateTransaction(ctx context.Context, input accounting.CreateTransactionInput) (accounting.CreateTransactionOutput, error) {
	currency := input.Currency
	if currency == "" {
		currency = accounting.DefaultCurrency
	}
	meta := input.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	tx, err := uc.repo.CreateTransaction(ctx, repo.CreateTransactionOptions{
		Date:         input.Date,
		Type:         input.Type,
		Account:      input.Account,
		Counterparty: input.Counterparty,
		Currency:     currency,
		Amount:       input.Amount,
		Category:     input.Category,
		Description:  input.Description,
		Meta:         meta,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTransaction CreateTransaction: %v", err)
		return accounting.CreateTransactionOutput{}, err
	}

	return accounting.CreateTransactionOutput{Transaction: tx}, nil
}
