package http

import (
	"time"

	"egy-discovery/internal/accounting"
	pkgErrors "egy-discovery/pkg/errors"
)

// --- Request DTOs ---

type createReq struct {
	Date         *string        `json:"date"`
	Type         *string        `json:"type"`
	Account      *string        `json:"account"`
	Counterparty string         `json:"counterparty"`
	Currency     string         `json:"currency"`
	Amount       *float64       `json:"amount"`
	Category     *string        `json:"category"`
	Description  string         `json:"description"`
	Meta         map[string]any `json:"meta"`
}

// validate reports the first missing required field in declaration order.
func (r createReq) validate() error {
	switch {
	case r.Date == nil:
		return pkgErrors.NewBadRequestError("Missing required field: date")
	case r.Type == nil:
		return pkgErrors.NewBadRequestError("Missing required field: type")
	case r.Account == nil:
		return pkgErrors.NewBadRequestError("Missing required field: account")
	case r.Amount == nil:
		return pkgErrors.NewBadRequestError("Missing required field: amount")
	case r.Category == nil:
		return pkgErrors.NewBadRequestError("Missing required field: category")
	}
	return nil
}

func (r createReq) toInput() accounting.CreateTransactionInput {
	return accounting.CreateTransactionInput{
		Date:         *r.Date,
		Type:         *r.Type,
		Account:      *r.Account,
		Counterparty: r.Counterparty,
		Currency:     r.Currency,
		Amount:       *r.Amount,
		Category:     *r.Category,
		Description:  r.Description,
		Meta:         r.Meta,
	}
}

type listReq struct {
	Account  string `form:"account"`
	Category string `form:"category"`
}

func (r listReq) toInput() accounting.ListTransactionsInput {
	return accounting.ListTransactionsInput{
		Account:  r.Account,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type transactionResp struct {
	ID           int64          `json:"id"`
	Date         string         `json:"date"`
	Type         string         `json:"type"`
	Account      string         `json:"account"`
	Counterparty string         `json:"counterparty,omitempty"`
	Currency     string         `json:"currency"`
	Amount       float64        `json:"amount"`
	Category     string         `json:"category"`
	Description  string         `json:"description,omitempty"`
	Meta         map[string]any `json:"meta"`
	CreatedAt    time.Time      `json:"created_at"`
}

func newTransactionResp(tx accounting.Transaction) transactionResp {
	return transactionResp{
		ID:           tx.ID,
		Date:         tx.Date,
		Type:         tx.Type,
		Account:      tx.Account,
		Counterparty: tx.Counterparty,
		Currency:     tx.Currency,
		Amount:       tx.Amount,
		Category:     tx.Category,
		Description:  tx.Description,
		Meta:         tx.Meta,
		CreatedAt:    tx.CreatedAt,
	}
}

func (h *handler) newCreateResp(out accounting.CreateTransactionOutput) transactionResp {
	return newTransactionResp(out.Transaction)
}

func (h *handler) newListResp(out accounting.ListTransactionsOutput) []transactionResp {
	items := make([]transactionResp, len(out.Transactions))
	for i, tx := range out.Transactions {
		items[i] = newTransactionResp(tx)
	}
	return items
}
