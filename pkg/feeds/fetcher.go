package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// DefaultUserAgent is the default User-Agent for feed requests.
const DefaultUserAgent = "asuntos-feeds/1.0"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultWorkers is the default worker pool width.
const DefaultWorkers = 3

// RetryPolicy bounds how persistently a single source is retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries per source.
	MaxAttempts int

	// Backoff is the pause between consecutive attempts.
	Backoff time.Duration
}

// DefaultRetryPolicy returns the standard three-attempt policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: 2 * time.Second}
}

// Result is the outcome of fetching one source. A failed source carries its
// error; it never fails the whole run.
type Result struct {
	Source Source
	Items  []NewsItem
	Err    error
}

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client

	// UserAgent is the User-Agent header.
	UserAgent string

	// Workers is the worker pool width.
	Workers int

	// Retry bounds per-source retries.
	Retry RetryPolicy
}

// DefaultFetcherConfig returns a FetcherConfig with sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  DefaultUserAgent,
		Workers:    DefaultWorkers,
		Retry:      DefaultRetryPolicy(),
	}
}

// Fetcher downloads configured sources through a fixed-size worker pool.
type Fetcher struct {
	config FetcherConfig
}

// NewFetcher creates a Fetcher, filling unset config fields with defaults.
func NewFetcher(config FetcherConfig) *Fetcher {
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.Retry.MaxAttempts <= 0 {
		config.Retry = DefaultRetryPolicy()
	}
	return &Fetcher{config: config}
}

// FetchAll downloads every source concurrently and joins the results in
// source order. Every source yields exactly one Result.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < f.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items, err := f.fetchSource(ctx, sources[i])
				results[i] = Result{Source: sources[i], Items: items, Err: err}
			}
		}()
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// fetchSource downloads and parses one source, retrying per the policy.
func (f *Fetcher) fetchSource(ctx context.Context, source Source) ([]NewsItem, error) {
	var lastErr error
	for attempt := 1; attempt <= f.config.Retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.config.Retry.Backoff):
			}
		}

		items, err := f.fetchOnce(ctx, source)
		if err == nil {
			return items, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("source %s failed after %d attempts: %w",
		source.ID, f.config.Retry.MaxAttempts, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, source Source) ([]NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	return ParseFeed(body, source.ID)
}
