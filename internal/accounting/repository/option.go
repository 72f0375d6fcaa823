package repository

// CreateTransactionOptions holds parameters for inserting a new Transaction.
type CreateTransactionOptions struct {
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

// ListTransactionsOptions holds filter parameters for listing Transactions.
// Non-empty fields are applied as AND conditions. Results are ordered by ID descending.
type ListTransactionsOptions struct {
	Account  string
	Category string
	Limit    int
}
