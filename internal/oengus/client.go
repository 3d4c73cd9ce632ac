// Package oengus is the HTTP client for the public marathon platform
// API. It is the only place the viewer talks to the network.
package oengus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/pkg/config"
	appErrors "github.com/speedrunjp/oengus-viewer-api/pkg/errors"
)

// Observer receives one measurement per upstream call, labelled by the
// logical endpoint name.
type Observer func(endpoint string, status int, duration time.Duration)

// Client fetches marathon data from the platform API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	observe Observer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithObserver installs a per-call metrics hook.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observe = o }
}

// NewClient constructs a Client from the upstream configuration.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EventList returns the categorized live/open/next marathon listing.
func (c *Client) EventList(ctx context.Context) (*models.EventList, error) {
	var list models.EventList
	if err := c.getJSON(ctx, "marathon_list", c.baseURL+"/marathon", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// EventsForDates returns marathons whose scheduled window intersects
// [start, end), evaluated by the platform in the given zone.
func (c *Client) EventsForDates(ctx context.Context, start, end time.Time, zoneID string) ([]models.EventSummary, error) {
	q := url.Values{}
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))
	q.Set("zoneId", zoneID)

	var events []models.EventSummary
	if err := c.getJSON(ctx, "marathon_for_dates", c.baseURL+"/marathon/forDates?"+q.Encode(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Event returns the full marathon record.
func (c *Client) Event(ctx context.Context, eventID string) (*models.EventDetail, error) {
	var detail models.EventDetail
	if err := c.getJSON(ctx, "marathon_detail", c.eventURL(eventID, ""), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Games returns the submission list for a marathon.
func (c *Client) Games(ctx context.Context, eventID string) ([]models.GameSubmission, error) {
	var games []models.GameSubmission
	if err := c.getJSON(ctx, "marathon_games", c.eventURL(eventID, "/game"), &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Selection returns the category id to selection result mapping.
func (c *Client) Selection(ctx context.Context, eventID string) (models.SelectionMap, error) {
	var selection models.SelectionMap
	if err := c.getJSON(ctx, "marathon_selection", c.eventURL(eventID, "/selection"), &selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// Schedule returns the published running order.
func (c *Client) Schedule(ctx context.Context, eventID string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := c.getJSON(ctx, "marathon_schedule", c.eventURL(eventID, "/schedule"), &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *Client) eventURL(eventID, suffix string) string {
	return c.baseURL + "/marathon/" + url.PathEscape(eventID) + suffix
}

func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.report(endpoint, 0, time.Since(start))
		c.logger.Warn("upstream request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("fetch %s", endpoint))
	}
	defer resp.Body.Close()

	c.report(endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s returned 404", endpoint))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warn("upstream returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("%s returned status %d", endpoint, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("decode %s response", endpoint))
	}
	return nil
}

func (c *Client) report(endpoint string, status int, d time.Duration) {
	if c.observe != nil {
		c.observe(endpoint, status, d)
	}
}
