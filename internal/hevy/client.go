package hevy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gzclptracker/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL = "https://api.hevyapp.com"

	workoutsPageSize = 10
	cacheSizeBytes   = 10 * 1024 * 1024
)

// Client talks to the Hevy public API. Raw page responses are cached for a
// short TTL so that repeated sync triggers do not hammer the API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *freecache.Cache
	cacheTTL   time.Duration
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, cacheTTL time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSizeBytes),
		cacheTTL:   cacheTTL,
	}
}

// Workouts fetches all workouts, walking the pages until the last one.
func (c *Client) Workouts(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var all []Workout
	page := 1
	for {
		pageResp, err := c.workoutsPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("get workouts page %d: %w", page, err)
		}

		all = append(all, pageResp.Workouts...)

		if page >= pageResp.PageCount {
			break
		}
		page++
	}

	span.SetAttributes(attribute.Int("workouts.count", len(all)))

	return all, nil
}

func (c *Client) workoutsPage(ctx context.Context, page int) (*workoutsPageResponse, error) {
	cacheKey := []byte(fmt.Sprintf("workouts-page-%d", page))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		var pageResp workoutsPageResponse
		if err := json.Unmarshal(cached, &pageResp); err == nil {
			return &pageResp, nil
		}
		// unreadable cache entry, fall through to the API
		c.cache.Del(cacheKey)
	}

	url := fmt.Sprintf("%s/v1/workouts?page=%d&pageSize=%d", c.baseURL, page, workoutsPageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnf("hevy client, close response body: %s", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var pageResp workoutsPageResponse
	if err := json.Unmarshal(body, &pageResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if c.cacheTTL > 0 {
		if err := c.cache.Set(cacheKey, body, int(c.cacheTTL.Seconds())); err != nil {
			log.Tracef("hevy client, cache workouts page %d: %s", page, err)
		}
	}

	return &pageResp, nil
}
