// Package live fetches the in-progress tournament leaderboard.
package live

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/pkg/logger"
	"github.com/okian/fairway/pkg/metrics"
)

const (
	defaultFeedURL = "https://site.api.espn.com/apis/site/v2/sports/golf/pga/scoreboard"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

// ESPNClient reads the ESPN golf scoreboard. It never returns errors to
// callers: failures are logged and produce an empty result.
type ESPNClient struct {
	url        string
	httpClient *http.Client
	logger     logger.Logger
}

// Option configures an ESPNClient.
type Option func(*ESPNClient)

// WithURL overrides the scoreboard endpoint.
func WithURL(url string) Option {
	return func(c *ESPNClient) {
		if url != "" {
			c.url = url
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *ESPNClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *ESPNClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(c *ESPNClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewESPNClient creates a live leaderboard client.
func NewESPNClient(opts ...Option) *ESPNClient {
	c := &ESPNClient{
		url:        defaultFeedURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current leaderboard, or an empty snapshot when the
// feed is unreachable or malformed.
func (c *ESPNClient) Snapshot(ctx context.Context) model.Snapshot {
	start := time.Now()
	sb, err := c.fetch(ctx)
	if err != nil {
		c.fail(ctx, "live leaderboard unavailable", err)
		return model.EmptySnapshot()
	}

	snap := sb.snapshot()
	metrics.RecordLiveFetch(float64(time.Since(start).Milliseconds()), snap.Len())
	c.logger.Debug(ctx, "live leaderboard fetched",
		logger.String("event", snap.Event),
		logger.Int("entries", snap.Len()),
		logger.Duration("took", time.Since(start)),
	)
	return snap
}

// EventName returns the current tournament's display name, falling back to
// UnknownTournament.
func (c *ESPNClient) EventName(ctx context.Context) string {
	sb, err := c.fetch(ctx)
	if err != nil {
		c.fail(ctx, "tournament name unavailable", err)
		return UnknownTournament
	}
	if name, ok := sb.eventName(); ok {
		return name
	}
	return UnknownTournament
}

func (c *ESPNClient) fail(ctx context.Context, msg string, err error) {
	metrics.RecordLiveFailure(reason(err))
	c.logger.Warn(ctx, msg, logger.String("url", c.url), logger.Error(err))
}

func (c *ESPNClient) fetch(ctx context.Context) (scoreboard, error) {
	var sb scoreboard

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return sb, fmt.Errorf("%w: build request: %w", ErrFeedRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sb, fmt.Errorf("%w: %w", ErrFeedRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return sb, fmt.Errorf("%w: read body: %w", ErrFeedRequest, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return sb, fmt.Errorf("%w: %d", ErrFeedStatus, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &sb); err != nil {
		return sb, fmt.Errorf("%w: %w", ErrFeedDecode, err)
	}
	return sb, nil
}
