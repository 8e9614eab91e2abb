package billing

import "errors"

var (
	// ErrTicketNotFound means the referenced ticket does not exist.
	ErrTicketNotFound = errors.New("ticket does not exist")
	// ErrDuplicatePayment means a payment was already recorded for the ticket.
	ErrDuplicatePayment = errors.New("payment already exists for ticket")
	// ErrPriceUnavailable means the ticket price could not be retrieved.
	ErrPriceUnavailable = errors.New("could not retrieve ticket price")
	// ErrAmountMismatch means the payment amount does not equal the ticket price.
	ErrAmountMismatch = errors.New("payment amount does not match ticket price")
	// ErrInvalidCardNumber means the card number is empty or blank.
	ErrInvalidCardNumber = errors.New("card number cannot be empty")
)
