package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eventora/platform/internal/billing"
	"github.com/eventora/platform/internal/models"
	"github.com/eventora/platform/internal/ticketing"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ticket{}, &models.Payment{}))

	ticketStore := ticketing.NewTicketStore(db)
	ticketService := ticketing.NewService(ticketStore)
	facade := ticketing.NewFacade(ticketStore)

	paymentStore := billing.NewPaymentStore(db)
	hasher := billing.NewCardHasher("test-secret")
	paymentService := billing.NewService(paymentStore, hasher, facade)

	ticketHandler := NewTicketHandler(ticketService, paymentService)
	paymentHandler := NewPaymentHandler(paymentService)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.POST("/tickets", ticketHandler.Create)
		api.GET("/tickets", ticketHandler.List)
		api.GET("/tickets/:id", ticketHandler.Get)
		api.GET("/tickets/:id/payment", ticketHandler.GetPayment)
		api.POST("/payments", paymentHandler.Create)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeInto(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createTicket(t *testing.T, r *gin.Engine, eventID string, price float64) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/tickets", gin.H{
		"eventId":    eventID,
		"buyerName":  "Ana",
		"buyerEmail": "ana@example.com",
		"price":      price,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	return uint(body["id"].(float64))
}
