package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first. Pass the returned nextToken to fetch the following page.
// @Tags transactions
// @Produce  json
// @Param   month        query string false "Calendar month (YYYY-MM)"
// @Param   type         query string false "income or expense"
// @Param   status       query string false "paid or pending"
// @Param   accountID    query string false "Account ID"
// @Param   creditCardID query string false "Credit card ID"
// @Param   categoryID   query string false "Category ID"
// @Param   limit        query int    false "Page size (1-200)"
// @Param   nextToken    query string false "Continuation token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid transaction filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or nextToken"})
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), scope, filter)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Exactly one of accountID and creditCardID must be given. A paid transaction on an account moves its balance.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Referenced account, card or category not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), scope, req)
	if err != nil {
		respondWithError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), scope, transactionID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction's status or description
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), scope, transactionID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deleting a paid account transaction reverses its effect on the balance
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), scope, transactionID); err != nil {
		respondWithError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
