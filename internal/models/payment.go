package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a settled payment against a ticket. At most one payment
// exists per ticket, backed by the unique index on TicketID. Immutable
// after creation.
type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	TicketID  uint            `gorm:"not null;uniqueIndex" json:"ticketId"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CardHash  string          `gorm:"not null" json:"cardHash"`
	PaidAt    time.Time       `gorm:"not null" json:"paidAt"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewPayment validates and assembles a payment with the paid-at timestamp
// set to now.
func NewPayment(ticketID uint, amount decimal.Decimal, cardHash string) (Payment, error) {
	payment := Payment{
		TicketID: ticketID,
		Amount:   amount,
		CardHash: cardHash,
		PaidAt:   time.Now(),
	}

	if err := payment.validate(); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (p Payment) validate() error {
	if p.TicketID == 0 {
		return fmt.Errorf("%w: ticket ID cannot be empty", ErrInvalidInput)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(p.CardHash) == "" {
		return fmt.Errorf("%w: card hash cannot be empty", ErrInvalidInput)
	}
	if p.PaidAt.After(time.Now()) {
		return fmt.Errorf("%w: payment date cannot be in the future", ErrInvalidInput)
	}
	return nil
}

// IsForTicket reports whether the payment references the given ticket.
func (p Payment) IsForTicket(ticketID uint) bool {
	return p.TicketID == ticketID
}
