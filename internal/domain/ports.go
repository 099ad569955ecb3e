package domain

import (
	"context"
	"time"
)

// ContentClient reads the static catalog documents from the remote host.
type ContentClient interface {
	GetHotels(ctx context.Context) ([]Hotel, error)
	GetTours(ctx context.Context) ([]Tour, error)
	GetAbout(ctx context.Context) (AboutDocument, error)
}

// MailRelay dispatches one booking email through the transactional email
// service. Fire-and-forget: a nil error means the relay accepted the send,
// nothing else is surfaced.
type MailRelay interface {
	Send(ctx context.Context, templateID string, params map[string]any) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
