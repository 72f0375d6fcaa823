package memory

import (
	"context"
	"sort"

	"egy-discovery/internal/accounting"
	repo "egy-discovery/internal/accounting/repository"
)

// CreateTransaction appends a new Transaction and returns it.
func (r *implRepository) CreateTransaction(ctx context.Context, opt repo.CreateTransactionOptions) (accounting.Transaction, error) {
	tx := accounting.Transaction{
		ID:           r.seq.Next(),
		Date:         opt.Date,
		Type:         opt.Type,
		Account:      opt.Account,
		Counterparty: opt.Counterparty,
		Currency:     opt.Currency,
		Amount:       opt.Amount,
		Category:     opt.Category,
		Description:  opt.Description,
		Meta:         opt.Meta,
		CreatedAt:    r.now(),
	}

	r.mu.Lock()
	r.transactions = append(r.transactions, tx)
	r.mu.Unlock()

	return tx, nil
}

// ListTransactions returns matching Transactions, newest ID first.
func (r *implRepository) ListTransactions(ctx context.Context, opt repo.ListTransactionsOptions) ([]accounting.Transaction, error) {
	r.mu.RLock()
	out := make([]accounting.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if opt.Account != "" && tx.Account != opt.Account {
			continue
		}
		if opt.Category != "" && tx.Category != opt.Category {
			continue
		}
		out = append(out, tx)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}
