package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eventora/platform/internal/billing"
	"github.com/eventora/platform/internal/helpers"
	"github.com/eventora/platform/internal/models"
	"github.com/eventora/platform/internal/ticketing"
)

type TicketRequest struct {
	EventID    string  `json:"eventId" binding:"required"`
	BuyerName  string  `json:"buyerName" binding:"required"`
	BuyerEmail string  `json:"buyerEmail" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
}

type TicketResponse struct {
	ID         uint            `json:"id"`
	EventID    string          `json:"eventId"`
	BuyerEmail string          `json:"buyerEmail"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type TicketHandler struct {
	tickets  *ticketing.Service
	payments *billing.Service
}

func NewTicketHandler(tickets *ticketing.Service, payments *billing.Service) *TicketHandler {
	return &TicketHandler{tickets: tickets, payments: payments}
}

func ticketResponse(ticket models.Ticket) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID,
		EventID:    ticket.EventID.String(),
		BuyerEmail: ticket.BuyerEmail,
		Price:      ticket.Price,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event ID must be a valid UUID.")
		return
	}

	ticket, err := h.tickets.CreateTicket(eventID, req.BuyerName, req.BuyerEmail, decimal.NewFromFloat(req.Price))
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket.")
		return
	}

	c.JSON(http.StatusCreated, ticketResponse(ticket))
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID.")
		return
	}

	ticket, found, err := h.tickets.GetTicket(ticketID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
		return
	}

	c.JSON(http.StatusOK, ticketResponse(ticket))
}

func (h *TicketHandler) List(c *gin.Context) {
	eventID := uuid.Nil
	if raw := c.Query("event_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Event ID must be a valid UUID.")
			return
		}
		eventID = parsed
	}

	tickets, err := h.tickets.ListTickets(eventID, c.Query("buyer_email"))
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving tickets.")
		return
	}

	responses := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		responses = append(responses, ticketResponse(ticket))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID.")
		return
	}

	_, found, err := h.tickets.GetTicket(ticketID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
		return
	}

	if err := h.tickets.DeleteTicket(ticketID); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ticket.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket deleted successfully."})
}

// GetPayment returns the payment recorded against a ticket, if any.
func (h *TicketHandler) GetPayment(c *gin.Context) {
	ticketID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID.")
		return
	}

	payment, found, err := h.payments.FindPaymentForTicket(ticketID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving payment.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "No payment found for ticket.")
		return
	}

	c.JSON(http.StatusOK, paymentResponse(payment))
}
