// Package content is the read-only client for the static catalog host.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"cyprus_travel/internal/adapters/observability"
	"cyprus_travel/internal/domain"
)

var ErrNotFound = errors.New("content: not found")

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	return out, c.get(ctx, "hotels.json", &out)
}

func (c *Client) GetTours(ctx context.Context) ([]domain.Tour, error) {
	var out []domain.Tour
	return out, c.get(ctx, "tours.json", &out)
}

func (c *Client) GetAbout(ctx context.Context) (domain.AboutDocument, error) {
	var out domain.AboutDocument
	return out, c.get(ctx, "about.json", &out)
}

// get performs a single rate-limited GET and decodes the JSON document into
// out. One attempt only: a failed catalog fetch is terminal for the
// requesting page, never retried here.
func (c *Client) get(ctx context.Context, doc string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+doc, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cyprus-travel/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("content", doc, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("content", doc, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return ErrNotFound
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("content: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
