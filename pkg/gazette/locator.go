package gazette

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the base URL of the gazette site.
const DefaultBaseURL = "https://www.boletinoficial.gob.ar"

// DefaultUserAgent is sent with every request; the gazette site rejects
// clients without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// urlDateLayout is the date key embedded in the issue URL.
const urlDateLayout = "20060102"

// pdfMagic is the leading byte signature every issue download must carry.
var pdfMagic = []byte("%PDF")

// ErrNotFound reports that no issue exists for the probed date range.
var ErrNotFound = errors.New("gazette not found for date range")

// ErrNotPDF reports that a download did not carry the PDF magic bytes.
var ErrNotPDF = errors.New("downloaded document is not a PDF")

// LocatorConfig configures a Locator.
type LocatorConfig struct {
	// BaseURL is the gazette site root.
	BaseURL string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client

	// UserAgent is the User-Agent header.
	UserAgent string

	// CacheDir, when non-empty, keeps downloaded issues on disk keyed by
	// date so a re-run of the same day skips the network.
	CacheDir string
}

// DefaultLocatorConfig returns a LocatorConfig with sensible defaults.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  DefaultUserAgent,
	}
}

// Locator computes the date-keyed issue URL and downloads the issue PDF.
type Locator struct {
	config LocatorConfig
}

// NewLocator creates a Locator, filling unset config fields with defaults.
func NewLocator(config LocatorConfig) *Locator {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	return &Locator{config: config}
}

// BusinessDay rolls a date back over weekends to the preceding business day.
func BusinessDay(day time.Time) time.Time {
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// IssueURL returns the date-keyed PDF URL for a given day.
func (l *Locator) IssueURL(day time.Time) string {
	return fmt.Sprintf("%s/pdf/pdfPorNombre/%s", l.config.BaseURL, day.Format(urlDateLayout))
}

// Locate resolves the issue URL for today, rolled back over weekends. When
// the probe reports not-found it retries once with the prior day before
// failing with ErrNotFound.
func (l *Locator) Locate(ctx context.Context, today time.Time) (string, time.Time, error) {
	day := BusinessDay(today)

	for attempt := 0; attempt < 2; attempt++ {
		url := l.IssueURL(day)
		found, err := l.probe(ctx, url)
		if err != nil {
			return "", time.Time{}, err
		}
		if found {
			return url, day, nil
		}
		day = day.AddDate(0, 0, -1)
	}

	return "", time.Time{}, fmt.Errorf("%w: %s back to %s",
		ErrNotFound, BusinessDay(today).Format(urlDateLayout), day.AddDate(0, 0, 1).Format(urlDateLayout))
}

// probe issues a HEAD request and reports whether the issue exists. Any
// status other than 404 counts as found: the site answers some HEAD
// requests with errors that a GET still serves.
func (l *Locator) probe(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create probe request: %w", err)
	}
	req.Header.Set("User-Agent", l.config.UserAgent)

	resp, err := l.config.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("probe failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode != http.StatusNotFound, nil
}

// Download fetches the issue for a given day, validating the PDF signature
// and caching the bytes on disk when a cache directory is configured.
func (l *Locator) Download(ctx context.Context, day time.Time) ([]byte, error) {
	if data, ok := l.cached(day); ok {
		return data, nil
	}

	url := l.IssueURL(day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", l.config.UserAgent)

	resp, err := l.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, day.Format(urlDateLayout))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read issue body: %w", err)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, ErrNotPDF
	}

	l.store(day, data)
	return data, nil
}

func (l *Locator) cachePath(day time.Time) string {
	return filepath.Join(l.config.CacheDir, fmt.Sprintf("boletin_%s.pdf", day.Format(urlDateLayout)))
}

func (l *Locator) cached(day time.Time) ([]byte, bool) {
	if l.config.CacheDir == "" {
		return nil, false
	}
	data, err := os.ReadFile(l.cachePath(day))
	if err != nil || !bytes.HasPrefix(data, pdfMagic) {
		return nil, false
	}
	return data, true
}

func (l *Locator) store(day time.Time, data []byte) {
	if l.config.CacheDir == "" {
		return
	}
	if err := os.MkdirAll(l.config.CacheDir, 0o755); err != nil {
		return
	}
	// Cache writes are best-effort; a failed write only costs a re-download.
	_ = os.WriteFile(l.cachePath(day), data, 0o644)
}
