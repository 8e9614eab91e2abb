package ticketing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eventora/platform/internal/models"
	"github.com/eventora/platform/internal/monitoring"
)

// Service handles ticket commands and queries. Tickets are immutable once
// created, so the command side is creation and deletion only.
type Service struct {
	store TicketStore
}

func NewService(store TicketStore) *Service {
	return &Service{store: store}
}

// CreateTicket validates buyer data, normalizes the email and persists a
// new ticket.
func (s *Service) CreateTicket(eventID uuid.UUID, buyerName, buyerEmail string, price decimal.Decimal) (models.Ticket, error) {
	email, err := models.NewEmailAddress(buyerEmail)
	if err != nil {
		return models.Ticket{}, err
	}

	ticket, err := models.NewTicket(eventID, buyerName, email, price)
	if err != nil {
		return models.Ticket{}, err
	}

	stored, err := s.store.Save(ticket)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("saving ticket: %w", err)
	}

	monitoring.TicketCreated()
	return stored, nil
}

func (s *Service) GetTicket(ticketID uint) (models.Ticket, bool, error) {
	return s.store.FindByID(ticketID)
}

// ListTickets returns tickets filtered by event id and/or buyer email.
// Zero-value filters are ignored.
func (s *Service) ListTickets(eventID uuid.UUID, buyerEmail string) ([]models.Ticket, error) {
	switch {
	case eventID != uuid.Nil:
		return s.store.FindByEventID(eventID)
	case buyerEmail != "":
		email, err := models.NewEmailAddress(buyerEmail)
		if err != nil {
			return nil, err
		}
		return s.store.FindByBuyerEmail(email.String())
	default:
		return s.store.FindAll()
	}
}

func (s *Service) CountTicketsForEvent(eventID uuid.UUID) (int64, error) {
	return s.store.CountByEventID(eventID)
}

func (s *Service) DeleteTicket(ticketID uint) error {
	return s.store.DeleteByID(ticketID)
}
