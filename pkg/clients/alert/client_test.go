package alert

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cashpoint/internal/config"
	"github.com/mamadbah2/cashpoint/internal/domain/models"
)

func TestSendReserveAlert(t *testing.T) {
	var received models.ReserveAlert
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(config.AlertConfig{WebhookURL: srv.URL})

	alert := models.ReserveAlert{
		TotalValue: 300,
		Threshold:  5000,
		Breakdown:  map[string]int{"100": 3},
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, client.SendReserveAlert(context.Background(), alert))

	assert.Equal(t, alert.TotalValue, received.TotalValue)
	assert.Equal(t, alert.Threshold, received.Threshold)
	assert.Equal(t, alert.Breakdown, received.Breakdown)
}

func TestSendReserveAlertRejectedByWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(config.AlertConfig{WebhookURL: srv.URL})

	err := client.SendReserveAlert(context.Background(), models.ReserveAlert{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=403")
}
