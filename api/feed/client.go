// Package feed retrieves live dam data from the Kerala dam water level feed.
package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"

	"github.com/steve-cse/keralam-mcp-server/api/cache"
	"github.com/steve-cse/keralam-mcp-server/api/dam"
	"github.com/steve-cse/keralam-mcp-server/log"
)

// LiveURL is the public feed of current Kerala dam water levels
const LiveURL = "https://raw.githubusercontent.com/amith-vp/Kerala-Dam-Water-Levels/main/live.json"

// DashboardURL is the browser-viewable dashboard for the same data
const DashboardURL = "https://amith-vp.github.io/Kerala-Dam-Water-Levels/"

// ErrorCode defines error types for feed operations
type ErrorCode string

const (
	// ErrFeedUnavailable represents errors fetching or decoding the live feed
	ErrFeedUnavailable ErrorCode = "FeedUnavailable"
	// ErrDamNotFound represents an unknown dam ID
	ErrDamNotFound ErrorCode = "DamNotFound"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Client fetches the live feed with cache support
type Client struct {
	url        string
	httpClient *http.Client
	cache      *cache.Cache[dam.Feed]
}

// Option configures a Client
type Option func(*Client)

// WithURL overrides the feed URL
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithCacheDir redirects the feed cache to the given directory
func WithCacheDir(dir string) Option {
	return func(c *Client) {
		c.cache.SetDir(dir)
	}
}

// WithCacheTTL overrides the feed cache TTL
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		c.cache.SetTTL(d)
	}
}

// NewClient creates a feed client. HTTP traffic goes through the logging
// transport so KERALAM_DEBUG shows every feed request.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:        LiveURL,
		httpClient: &http.Client{Transport: log.Transport()},
		cache:      cache.New[dam.Feed]("feed"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the live feed, served from cache unless the entry is
// stale or forceUpdate is set.
func (c *Client) Fetch(ctx context.Context, forceUpdate bool) (dam.Feed, error) {
	return c.cache.GetOrSet(c.url, func() (dam.Feed, error) {
		return c.fetch(ctx)
	}, forceUpdate)
}

func (c *Client) fetch(ctx context.Context) (dam.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return dam.Feed{}, failure.Wrap(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dam.Feed{}, failure.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dam.Feed{}, failure.New(ErrFeedUnavailable,
			failure.Message("Dam data feed is unavailable"),
			failure.Context{
				"url":    c.url,
				"status": resp.Status,
			},
		)
	}

	var feed dam.Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return dam.Feed{}, failure.Wrap(err,
			failure.Context{
				"url": c.url,
			},
		)
	}

	return feed, nil
}

// Dams returns all dams from the live feed
func (c *Client) Dams(ctx context.Context, forceUpdate bool) ([]dam.Dam, error) {
	feed, err := c.Fetch(ctx, forceUpdate)
	if err != nil {
		return nil, err
	}
	return feed.Dams, nil
}

// Dam returns a single dam by ID
func (c *Client) Dam(ctx context.Context, id string, forceUpdate bool) (dam.Dam, error) {
	feed, err := c.Fetch(ctx, forceUpdate)
	if err != nil {
		return dam.Dam{}, err
	}
	return DamFrom(feed, id)
}

// DamFrom looks up a dam by ID in an already fetched feed
func DamFrom(f dam.Feed, id string) (dam.Dam, error) {
	d, ok := lo.Find(f.Dams, func(d dam.Dam) bool {
		return d.ID == id
	})
	if !ok {
		return dam.Dam{}, failure.New(ErrDamNotFound,
			failure.Message("No data found for dam ID: "+id),
			failure.Context{
				"dam_id": id,
			},
		)
	}

	return d, nil
}
