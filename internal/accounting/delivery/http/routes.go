package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	txs := rg.Group("/accounting/transactions")
	{
		txs.POST("", h.CreateTransaction)
		txs.GET("", h.ListTransactions)
	}
}
