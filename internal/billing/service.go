package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/eventora/platform/internal/models"
	"github.com/eventora/platform/internal/monitoring"
	"github.com/eventora/platform/internal/ticketing"
)

// Service orchestrates payment acceptance. It reaches ticket data only
// through the read-only ticketing facade.
type Service struct {
	store   PaymentStore
	hasher  Hasher
	tickets ticketing.Facade
}

func NewService(store PaymentStore, hasher Hasher, tickets ticketing.Facade) *Service {
	return &Service{
		store:   store,
		hasher:  hasher,
		tickets: tickets,
	}
}

// CreatePayment validates and records a payment for a ticket. The checks
// run in a fixed order, each with its own failure: the ticket must exist,
// no payment may already exist for it, the price must be retrievable and
// the amount must equal the price exactly. The card number is hashed only
// after all checks pass.
func (s *Service) CreatePayment(ticketID uint, amount decimal.Decimal, cardNumber string) (models.Payment, error) {
	exists, err := s.tickets.TicketExists(ticketID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("checking ticket existence: %w", err)
	}
	if !exists {
		monitoring.PaymentRejected("ticket_not_found")
		return models.Payment{}, fmt.Errorf("%w: ticket ID %d", ErrTicketNotFound, ticketID)
	}

	alreadyPaid, err := s.store.ExistsForTicket(ticketID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("checking existing payment: %w", err)
	}
	if alreadyPaid {
		monitoring.PaymentRejected("duplicate")
		return models.Payment{}, fmt.Errorf("%w: ticket ID %d", ErrDuplicatePayment, ticketID)
	}

	price, ok, err := s.tickets.TicketPrice(ticketID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("retrieving ticket price: %w", err)
	}
	if !ok {
		monitoring.PaymentRejected("price_unavailable")
		return models.Payment{}, fmt.Errorf("%w: ticket ID %d", ErrPriceUnavailable, ticketID)
	}

	if !price.Equal(amount) {
		monitoring.PaymentRejected("amount_mismatch")
		return models.Payment{}, fmt.Errorf("%w: amount %s, price %s", ErrAmountMismatch, amount, price)
	}

	cardHash, err := s.hasher.Hash(cardNumber)
	if err != nil {
		monitoring.PaymentRejected("invalid_card")
		return models.Payment{}, err
	}

	payment, err := models.NewPayment(ticketID, amount, cardHash)
	if err != nil {
		return models.Payment{}, err
	}

	stored, err := s.store.Save(payment)
	if err != nil {
		// Concurrent requests can pass the existence check together; the
		// unique index on ticket_id settles it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			monitoring.PaymentRejected("duplicate")
			return models.Payment{}, fmt.Errorf("%w: ticket ID %d", ErrDuplicatePayment, ticketID)
		}
		return models.Payment{}, fmt.Errorf("saving payment: %w", err)
	}

	monitoring.PaymentCreated()
	return stored, nil
}

// FindPaymentForTicket returns the payment recorded for a ticket, if any.
func (s *Service) FindPaymentForTicket(ticketID uint) (models.Payment, bool, error) {
	return s.store.FindByTicket(ticketID)
}
