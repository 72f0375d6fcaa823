package http

import (
	"github.com/gin-gonic/gin"

	"egy-discovery/pkg/response"
)

// CreateTransaction godoc
// @Summary     Record a transaction
// @Description Creates an accounting transaction. date, type, account, amount and category are required.
// @Tags        Accounting
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Transaction"
// @Success     201  {object} transactionResp
// @Failure     400  {object} response.Resp "Missing required field"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/accounting/transactions [POST]
func (h *handler) CreateTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTransaction(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTransaction: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// ListTransactions godoc
// @Summary     List transactions
// @Description Returns up to 200 transactions, newest first, optionally filtered by account and category.
// @Tags        Accounting
// @Produce     json
// @Param       account  query string false "Account filter"
// @Param       category query string false "Category filter"
// @Success     200 {array}  transactionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/accounting/transactions [GET]
func (h *handler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListTransactions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTransactions: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
