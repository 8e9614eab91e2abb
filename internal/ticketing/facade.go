package ticketing

import "github.com/shopspring/decimal"

// Summary is the ticket view exposed to other modules. It carries only
// what external contexts need and never the persistence model.
type Summary struct {
	TicketID   uint
	EventID    string
	Price      decimal.Decimal
	BuyerEmail string
	Valid      bool
}

// Facade is the read-only boundary other modules use to query ticket
// data. All lookups report absence instead of failing when the ticket id
// is unknown or non-positive.
type Facade interface {
	TicketExists(ticketID uint) (bool, error)
	TicketPrice(ticketID uint) (decimal.Decimal, bool, error)
	CanReceivePayment(ticketID uint) (bool, error)
	TicketSummary(ticketID uint) (Summary, bool, error)
}

type storeFacade struct {
	store TicketStore
}

func NewFacade(store TicketStore) Facade {
	return &storeFacade{store: store}
}

func (f *storeFacade) TicketExists(ticketID uint) (bool, error) {
	if ticketID == 0 {
		return false, nil
	}
	return f.store.ExistsByID(ticketID)
}

func (f *storeFacade) TicketPrice(ticketID uint) (decimal.Decimal, bool, error) {
	if ticketID == 0 {
		return decimal.Decimal{}, false, nil
	}
	ticket, found, err := f.store.FindByID(ticketID)
	if err != nil || !found {
		return decimal.Decimal{}, false, err
	}
	return ticket.Price, true, nil
}

func (f *storeFacade) CanReceivePayment(ticketID uint) (bool, error) {
	price, found, err := f.TicketPrice(ticketID)
	if err != nil || !found {
		return false, err
	}
	return price.IsPositive(), nil
}

func (f *storeFacade) TicketSummary(ticketID uint) (Summary, bool, error) {
	if ticketID == 0 {
		return Summary{}, false, nil
	}
	ticket, found, err := f.store.FindByID(ticketID)
	if err != nil || !found {
		return Summary{}, false, err
	}
	return Summary{
		TicketID:   ticket.ID,
		EventID:    ticket.EventID.String(),
		Price:      ticket.Price,
		BuyerEmail: ticket.BuyerEmail,
		Valid:      ticket.Price.IsPositive(),
	}, true, nil
}
