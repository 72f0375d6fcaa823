package usecase

import (
	"context"
	"testing"

	"egy-discovery/internal/accounting"
	"egy-discovery/internal/accounting/repository/memory"
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/sequence"
)

func TestCreateTransactionDefaults(t *testing.T) {
	uc := New(memory.New(sequence.New(1)), log.NewNop())

	out, err := uc.CreateTransaction(context.Background(), accounting.CreateTransactionInput{
		Date: "2024-05-01", Type: "expense", Account: "ops", Amount: 12.5, Category: "fuel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Transaction.Currency != accounting.DefaultCurrency {
		t.Errorf("expected USD, got %q", out.Transaction.Currency)
	}
	if out.Transaction.Meta == nil {
		t.Errorf("expected empty meta map")
	}
	if out.Transaction.ID != 1 {
		t.Errorf("expected id 1, got %d", out.Transaction.ID)
	}
}

func TestListTransactionsLimit(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.New(sequence.New(1)), log.NewNop())

	for i := 0; i < accounting.ListLimit+5; i++ {
		if _, err := uc.CreateTransaction(ctx, accounting.CreateTransactionInput{Account: "ops"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	out, err := uc.ListTransactions(ctx, accounting.ListTransactionsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Transactions) != accounting.ListLimit {
		t.Fatalf("expected %d, got %d", accounting.ListLimit, len(out.Transactions))
	}
	if out.Transactions[0].ID != int64(accounting.ListLimit+5) {
		t.Errorf("expected newest first, got id %d", out.Transactions[0].ID)
	}
}
