package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicket_Success(t *testing.T) {
	r := newTestRouter(t)
	eventID := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/v1/tickets", gin.H{
		"eventId":    eventID,
		"buyerName":  "Ana",
		"buyerEmail": "ana@example.com",
		"price":      49.99,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, eventID, body["eventId"])
	assert.Equal(t, "ana@example.com", body["buyerEmail"])
	assert.Equal(t, 49.99, body["price"])
	assert.NotEmpty(t, body["createdAt"])
	assert.NotEmpty(t, body["updatedAt"])
}

func TestCreateTicket_NormalizesEmail(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tickets", gin.H{
		"eventId":    uuid.New().String(),
		"buyerName":  "Ana",
		"buyerEmail": "  User@Example.COM ",
		"price":      10.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "user@example.com", body["buyerEmail"])
}

func TestCreateTicket_ValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing fields", gin.H{"eventId": uuid.New().String()}},
		{"malformed uuid", gin.H{"eventId": "not-a-uuid", "buyerName": "Ana", "buyerEmail": "ana@example.com", "price": 10.0}},
		{"invalid email", gin.H{"eventId": uuid.New().String(), "buyerName": "Ana", "buyerEmail": "not-an-email", "price": 10.0}},
		{"negative price", gin.H{"eventId": uuid.New().String(), "buyerName": "Ana", "buyerEmail": "ana@example.com", "price": -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/tickets", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			body := decodeBody(t, w)
			assert.Equal(t, "Bad Request", body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestGetTicket(t *testing.T) {
	r := newTestRouter(t)
	ticketID := createTicket(t, r, uuid.New().String(), 49.99)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/tickets/%d", ticketID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(ticketID), body["id"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/tickets/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tickets/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTickets(t *testing.T) {
	r := newTestRouter(t)
	eventA := uuid.New().String()
	eventB := uuid.New().String()

	createTicket(t, r, eventA, 10)
	createTicket(t, r, eventA, 20)
	createTicket(t, r, eventB, 30)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tickets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []map[string]any
	require.NoError(t, decodeInto(w, &all))
	assert.Len(t, all, 3)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tickets?event_id="+eventA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []map[string]any
	require.NoError(t, decodeInto(w, &filtered))
	assert.Len(t, filtered, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tickets?event_id=not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
