package billing

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eventora/platform/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Payment{}))

	return db
}

func testPayment(t *testing.T, ticketID uint) models.Payment {
	t.Helper()
	payment, err := models.NewPayment(ticketID, decimal.NewFromFloat(49.99), "cardhash")
	require.NoError(t, err)
	return payment
}

func TestPaymentStore_SaveAssignsIdentity(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	stored, err := store.Save(testPayment(t, 1))
	require.NoError(t, err)

	assert.NotZero(t, stored.ID)
	assert.Equal(t, uint(1), stored.TicketID)
}

func TestPaymentStore_ExistsForTicket(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	exists, err := store.ExistsForTicket(1)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Save(testPayment(t, 1))
	require.NoError(t, err)

	exists, err = store.ExistsForTicket(1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsForTicket(2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPaymentStore_FindByTicket(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	_, found, err := store.FindByTicket(1)
	require.NoError(t, err)
	assert.False(t, found)

	stored, err := store.Save(testPayment(t, 1))
	require.NoError(t, err)

	payment, found, err := store.FindByTicket(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, stored.ID, payment.ID)
	assert.True(t, payment.Amount.Equal(decimal.NewFromFloat(49.99)))
	assert.Equal(t, "cardhash", payment.CardHash)
}

func TestPaymentStore_UniqueTicketConstraint(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	_, err := store.Save(testPayment(t, 1))
	require.NoError(t, err)

	_, err = store.Save(testPayment(t, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
