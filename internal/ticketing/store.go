package ticketing

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventora/platform/internal/models"
)

// TicketStore is the persistence boundary for tickets. Implementations
// carry no business validation.
type TicketStore interface {
	Save(ticket models.Ticket) (models.Ticket, error)
	FindByID(ticketID uint) (models.Ticket, bool, error)
	ExistsByID(ticketID uint) (bool, error)
	FindAll() ([]models.Ticket, error)
	FindByEventID(eventID uuid.UUID) ([]models.Ticket, error)
	FindByBuyerEmail(buyerEmail string) ([]models.Ticket, error)
	CountByEventID(eventID uuid.UUID) (int64, error)
	DeleteByID(ticketID uint) error
}

type gormTicketStore struct {
	db *gorm.DB
}

func NewTicketStore(db *gorm.DB) TicketStore {
	return &gormTicketStore{db: db}
}

func (s *gormTicketStore) Save(ticket models.Ticket) (models.Ticket, error) {
	if err := s.db.Create(&ticket).Error; err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

func (s *gormTicketStore) FindByID(ticketID uint) (models.Ticket, bool, error) {
	var ticket models.Ticket
	err := s.db.Where("id = ?", ticketID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ticket{}, false, nil
	}
	if err != nil {
		return models.Ticket{}, false, err
	}
	return ticket, true, nil
}

func (s *gormTicketStore) ExistsByID(ticketID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Ticket{}).Where("id = ?", ticketID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormTicketStore) FindAll() ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.db.Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *gormTicketStore) FindByEventID(eventID uuid.UUID) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.db.Where("event_id = ?", eventID).Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *gormTicketStore) FindByBuyerEmail(buyerEmail string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.db.Where("buyer_email = ?", buyerEmail).Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *gormTicketStore) CountByEventID(eventID uuid.UUID) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Ticket{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *gormTicketStore) DeleteByID(ticketID uint) error {
	return s.db.Delete(&models.Ticket{}, ticketID).Error
}
