package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type creditCardHandler struct {
	creditCardService portssvc.CreditCardSvcFacade
}

func registerCreditCardRoutes(rg *gin.RouterGroup, creditCardService portssvc.CreditCardSvcFacade) {
	h := &creditCardHandler{creditCardService: creditCardService}

	cards := rg.Group("/credit-cards")
	{
		cards.GET("", h.listCreditCards)
		cards.POST("", h.createCreditCard)
		cards.GET("/:id", h.getCreditCard)
		cards.PATCH("/:id", h.updateCreditCard)
		cards.DELETE("/:id", h.deleteCreditCard)
	}
}

// createCreditCard godoc
// @Summary Create a credit card
// @Tags credit-cards
// @Accept  json
// @Produce  json
// @Param   card body dto.CreateCreditCardRequest true "Card details"
// @Success 201 {object} dto.CreditCardResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Paying account not found"
// @Security BearerAuth
// @Router /credit-cards [post]
func (h *creditCardHandler) createCreditCard(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	card, err := h.creditCardService.CreateCreditCard(c.Request.Context(), scope, req)
	if err != nil {
		respondWithError(c, err, "Failed to create credit card")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreditCardResponse(card))
}

// listCreditCards godoc
// @Summary List credit cards
// @Description Lists the workspace's cards, each with the invoice of the billing cycle containing today
// @Tags credit-cards
// @Produce  json
// @Success 200 {array} dto.CreditCardResponse
// @Security BearerAuth
// @Router /credit-cards [get]
func (h *creditCardHandler) listCreditCards(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	cards, err := h.creditCardService.ListCreditCards(c.Request.Context(), scope)
	if err != nil {
		respondWithError(c, err, "Failed to list credit cards")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCreditCardResponse(cards))
}

// getCreditCard godoc
// @Summary Get a credit card with its current invoice
// @Tags credit-cards
// @Produce  json
// @Param   id path string true "Credit card ID"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 404 {object} map[string]string "Credit card not found"
// @Security BearerAuth
// @Router /credit-cards/{id} [get]
func (h *creditCardHandler) getCreditCard(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	card, err := h.creditCardService.GetCreditCardByID(c.Request.Context(), scope, cardID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve credit card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// updateCreditCard godoc
// @Summary Update a credit card
// @Tags credit-cards
// @Accept  json
// @Produce  json
// @Param   id path string true "Credit card ID"
// @Param   card body dto.UpdateCreditCardRequest true "Fields to change"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Credit card not found"
// @Security BearerAuth
// @Router /credit-cards/{id} [patch]
func (h *creditCardHandler) updateCreditCard(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	card, err := h.creditCardService.UpdateCreditCard(c.Request.Context(), scope, cardID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update credit card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// deleteCreditCard godoc
// @Summary Delete a credit card
// @Tags credit-cards
// @Param   id path string true "Credit card ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Credit card not found"
// @Security BearerAuth
// @Router /credit-cards/{id} [delete]
func (h *creditCardHandler) deleteCreditCard(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.creditCardService.DeleteCreditCard(c.Request.Context(), scope, cardID); err != nil {
		respondWithError(c, err, "Failed to delete credit card")
		return
	}
	c.Status(http.StatusNoContent)
}
