package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is a ticket sold for an event. All business attributes are
// immutable after creation; there is no update path.
type Ticket struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	EventID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"eventId"`
	BuyerName   string          `gorm:"not null" json:"buyerName"`
	BuyerEmail  string          `gorm:"not null;index" json:"buyerEmail"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	PurchasedAt time.Time       `gorm:"not null" json:"purchasedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewTicket validates and assembles a ticket. The purchase timestamp is
// set here and must not be in the future.
func NewTicket(eventID uuid.UUID, buyerName string, buyerEmail EmailAddress, price decimal.Decimal) (Ticket, error) {
	ticket := Ticket{
		EventID:     eventID,
		BuyerName:   strings.TrimSpace(buyerName),
		BuyerEmail:  buyerEmail.String(),
		Price:       price,
		PurchasedAt: time.Now(),
	}

	if err := ticket.validate(); err != nil {
		return Ticket{}, err
	}
	return ticket, nil
}

func (t Ticket) validate() error {
	if t.EventID == uuid.Nil {
		return fmt.Errorf("%w: event ID cannot be empty", ErrInvalidInput)
	}
	if t.BuyerName == "" {
		return fmt.Errorf("%w: buyer name cannot be empty", ErrInvalidInput)
	}
	if t.BuyerEmail == "" {
		return fmt.Errorf("%w: buyer email cannot be empty", ErrInvalidInput)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if t.PurchasedAt.After(time.Now()) {
		return fmt.Errorf("%w: purchase date cannot be in the future", ErrInvalidInput)
	}
	return nil
}

// PriceMatches reports whether the ticket price equals amount exactly.
func (t Ticket) PriceMatches(amount decimal.Decimal) bool {
	return t.Price.Equal(amount)
}
