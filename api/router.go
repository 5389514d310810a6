package api

import (
	"net/http"

	"api_transactions/internal/transactions"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers the ledger endpoints on the given Gin engine under the
// /transactions prefix. Read endpoints require a session cookie; creating a
// transaction issues one when missing.
func InitRoutes(e *gin.Engine, service *transactions.Service, logger *zap.Logger) {
	h := NewTransactionsHandler(service, logger)

	group := e.Group("/transactions", requestLogger(logger))
	group.GET("", requireSession(), h.handleList)
	group.GET("/", requireSession(), h.handleList)
	group.GET("/summary", requireSession(), h.handleSummary)
	group.GET("/:id", requireSession(), h.handleGet)
	group.POST("", h.handleCreate)
	group.POST("/", h.handleCreate)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
