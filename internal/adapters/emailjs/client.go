// Package emailjs submits booking emails through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cyprus_travel/internal/adapters/observability"
)

// ErrRelayRejected means the relay answered with a non-success status.
// Distinct from transport errors so callers can tell the two apart; neither
// is retried here, retry stays a user action.
var ErrRelayRejected = errors.New("emailjs: send rejected")

type Client struct {
	base      string
	hc        *http.Client
	serviceID string
	publicKey string
}

func New(base, serviceID, publicKey string) (*Client, error) {
	if serviceID == "" {
		return nil, fmt.Errorf("emailjs: service id is required")
	}
	if publicKey == "" {
		return nil, fmt.Errorf("emailjs: public key is required")
	}
	return &Client{
		base:      strings.TrimRight(base, "/"),
		hc:        &http.Client{Timeout: 20 * time.Second},
		serviceID: serviceID,
		publicKey: publicKey,
	}, nil
}

type sendPayload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send fires one booking email: a single POST, no retries. Params are passed
// to the relay as-is; templating and escaping are the relay's job.
func (c *Client) Send(ctx context.Context, templateID string, params map[string]any) error {
	body, err := json.Marshal(sendPayload{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("emailjs", templateID, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("emailjs", templateID, resp.StatusCode, time.Since(start))

	if resp.StatusCode/100 == 2 {
		_, _ = io.Copy(io.Discard, resp.Body) // payload is ignored on success
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("%w: status %d: %s", ErrRelayRejected, resp.StatusCode, strings.TrimSpace(string(b)))
}
