package billing

import (
	"errors"

	"gorm.io/gorm"

	"github.com/eventora/platform/internal/models"
)

// PaymentStore is the persistence boundary for payments. The payments
// table has a unique index on ticket_id; Save surfaces a violation as
// gorm.ErrDuplicatedKey for the workflow to classify.
type PaymentStore interface {
	Save(payment models.Payment) (models.Payment, error)
	ExistsForTicket(ticketID uint) (bool, error)
	FindByTicket(ticketID uint) (models.Payment, bool, error)
}

type gormPaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) PaymentStore {
	return &gormPaymentStore{db: db}
}

func (s *gormPaymentStore) Save(payment models.Payment) (models.Payment, error) {
	if err := s.db.Create(&payment).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *gormPaymentStore) ExistsForTicket(ticketID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Payment{}).Where("ticket_id = ?", ticketID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormPaymentStore) FindByTicket(ticketID uint) (models.Payment, bool, error) {
	var payment models.Payment
	err := s.db.Where("ticket_id = ?", ticketID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Payment{}, false, nil
	}
	if err != nil {
		return models.Payment{}, false, err
	}
	return payment, true, nil
}
