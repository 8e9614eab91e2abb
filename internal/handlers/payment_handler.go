package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/eventora/platform/internal/billing"
	"github.com/eventora/platform/internal/helpers"
	"github.com/eventora/platform/internal/models"
)

type PaymentRequest struct {
	TicketID   uint    `json:"ticketId" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	CardNumber string  `json:"cardNumber" binding:"required"`
}

type PaymentResponse struct {
	ID       uint            `json:"id"`
	TicketID uint            `json:"ticketId"`
	Amount   decimal.Decimal `json:"amount"`
	CardHash string          `json:"cardHash"`
	PaidAt   time.Time       `json:"paidAt"`
}

type PaymentHandler struct {
	payments *billing.Service
}

func NewPaymentHandler(payments *billing.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func paymentResponse(payment models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       payment.ID,
		TicketID: payment.TicketID,
		Amount:   payment.Amount,
		CardHash: payment.CardHash,
		PaidAt:   payment.PaidAt,
	}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	payment, err := h.payments.CreatePayment(req.TicketID, decimal.NewFromFloat(req.Amount), req.CardNumber)
	if err != nil {
		if isPaymentRuleViolation(err) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment.")
		return
	}

	c.JSON(http.StatusCreated, paymentResponse(payment))
}

// isPaymentRuleViolation classifies every business-rule and validation
// failure of the payment workflow as a client error.
func isPaymentRuleViolation(err error) bool {
	return errors.Is(err, billing.ErrTicketNotFound) ||
		errors.Is(err, billing.ErrDuplicatePayment) ||
		errors.Is(err, billing.ErrPriceUnavailable) ||
		errors.Is(err, billing.ErrAmountMismatch) ||
		errors.Is(err, billing.ErrInvalidCardNumber) ||
		errors.Is(err, models.ErrInvalidInput)
}
