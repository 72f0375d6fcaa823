package accounting

import "time"

// Transaction is one ledger entry.
type Transaction struct {
	ID           int64
	Date         string
	Type         string
	Account      string
	Counterparty string
	Currency     string
	Amount       float64
	Category     string
	Description  string
	Meta         map[string]any
	CreatedAt    time.Time
}

// --- UseCase Inputs ---

type CreateTransactionInput struct {
	Date         string
	Type         string
	Account      string
	Counterparty string
	Currency     string
	Amount       float64
	Category     string
	Description  string
	Meta         map[string]any
}

type ListTransactionsInput struct {
	Account  string
	Category string
}

// --- UseCase Outputs ---

type CreateTransactionOutput struct {
	Transaction Transaction
}

type ListTransactionsOutput struct {
	Transactions []Transaction
}
