package api

import (
	"net/http"

	"api_transactions/internal/transactions"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// transactionsHandler holds the ledger service and implements HTTP handlers for it.
type transactionsHandler struct {
	service *transactions.Service
	logger  *zap.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(service *transactions.Service, logger *zap.Logger) *transactionsHandler {
	return &transactionsHandler{
		service: service,
		logger:  logger,
	}
}

type listResponse struct {
	Transactions []*transactions.Transaction `json:"transactions"`
}

// getResponse omits "transaction" entirely when nothing matched.
type getResponse struct {
	Transaction *transactions.Transaction `json:"transaction,omitempty"`
}

type summaryResponse struct {
	Summary transactions.Summary `json:"summary"`
}

// handleList handles GET /transactions.
func (h *transactionsHandler) handleList(ctx *gin.Context) {
	sessionID := ctx.GetString(sessionIDKey)

	all, err := h.service.ListTransactions(ctx.Request.Context(), sessionID)
	if err != nil {
		h.internalError(ctx, "failed to list transactions", err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse{Transactions: all})
}

// handleGet handles GET /transactions/:id.
func (h *transactionsHandler) handleGet(ctx *gin.Context) {
	var params getTransactionParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		h.logger.Warn("invalid transaction id", zap.String("id", ctx.Param("id")), zap.Error(err))
		abortWithValidationError(ctx, err)
		return
	}

	sessionID := ctx.GetString(sessionIDKey)
	t, err := h.service.GetTransaction(ctx.Request.Context(), sessionID, params.ID)
	if err != nil {
		h.internalError(ctx, "failed to get transaction", err)
		return
	}

	ctx.JSON(http.StatusOK, getResponse{Transaction: t})
}

// handleSummary handles GET /transactions/summary.
func (h *transactionsHandler) handleSummary(ctx *gin.Context) {
	sessionID := ctx.GetString(sessionIDKey)

	summary, err := h.service.Summary(ctx.Request.Context(), sessionID)
	if err != nil {
		h.internalError(ctx, "failed to summarize transactions", err)
		return
	}

	ctx.JSON(http.StatusOK, summaryResponse{Summary: summary})
}

// handleCreate handles POST /transactions.
func (h *transactionsHandler) handleCreate(ctx *gin.Context) {
	var req createTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		abortWithValidationError(ctx, err)
		return
	}

	sessionID := ensureSession(ctx)

	_, err := h.service.CreateTransaction(ctx.Request.Context(), sessionID, transactions.CreateInput{
		Title:  *req.Title,
		Amount: *req.Amount,
		Type:   transactions.Kind(req.Type),
	})
	if err != nil {
		h.internalError(ctx, "failed to create transaction", err)
		return
	}

	ctx.Status(http.StatusCreated)
}

func (h *transactionsHandler) internalError(ctx *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
