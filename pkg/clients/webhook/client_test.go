package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/config"
	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

func TestSendPostsJSON(t *testing.T) {
	var got models.Notification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(config.NotifierConfig{WebhookURL: srv.URL})
	err := c.Send(context.Background(), models.Notification{Kind: models.NotificationReminder, Text: "Water the tomatoes"})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationReminder, got.Kind)
	assert.Equal(t, "Water the tomatoes", got.Text)
}

func TestSendSurfacesReceiverError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"unknown channel"}`))
	}))
	defer srv.Close()

	c := NewClient(config.NotifierConfig{WebhookURL: srv.URL})
	err := c.Send(context.Background(), models.Notification{Kind: models.NotificationReport, Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=422")
	assert.Contains(t, err.Error(), "unknown channel")
}

func TestSendWithoutURL(t *testing.T) {
	err := NewClient(config.NotifierConfig{}).Send(context.Background(), models.Notification{})
	assert.Error(t, err)
}
