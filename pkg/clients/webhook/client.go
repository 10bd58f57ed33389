package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/greenthumb/internal/config"
	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// Client delivers garden notifications to an external receiver.
type Client interface {
	Send(ctx context.Context, n models.Notification) error
}

// APIClient is a resty-backed implementation of Client posting JSON to a
// single webhook URL.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.NotifierConfig) *APIClient {
	restyClient := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &APIClient{httpClient: restyClient, url: cfg.WebhookURL}
}

// apiError is the error body receivers may send back.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Send implements Client.
func (c *APIClient) Send(ctx context.Context, n models.Notification) error {
	if c.url == "" {
		return fmt.Errorf("webhook url is not configured")
	}

	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(n).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send webhook notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return fmt.Errorf("webhook error: code=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
