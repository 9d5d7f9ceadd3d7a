package alert

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/cashpoint/internal/config"
	"github.com/mamadbah2/cashpoint/internal/domain/models"
)

// Client exposes operator notification operations used by the application.
type Client interface {
	SendReserveAlert(ctx context.Context, alert models.ReserveAlert) error
}

// WebhookClient is a resty-backed implementation of Client that posts alerts
// to a configured operator webhook.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.AlertConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// SendReserveAlert posts the low-reserve payload to the operator webhook.
func (c *WebhookClient) SendReserveAlert(ctx context.Context, alert models.ReserveAlert) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send reserve alert: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("alert webhook error: code=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
