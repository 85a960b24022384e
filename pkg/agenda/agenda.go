// Package agenda scrapes the published committee meeting agendas of both
// legislative chambers.
package agenda

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Chamber identifies which chamber published a meeting.
type Chamber string

const (
	// ChamberSenate is the upper chamber.
	ChamberSenate Chamber = "senado"

	// ChamberDeputies is the lower chamber.
	ChamberDeputies Chamber = "diputados"
)

// Meeting is one scheduled committee meeting.
type Meeting struct {
	// Chamber is the chamber holding the meeting.
	Chamber Chamber `json:"chamber"`

	// Committee is the committee name.
	Committee string `json:"committee"`

	// Day is the announced meeting day, as published.
	Day string `json:"day"`

	// Time is the announced meeting time, as published.
	Time string `json:"time,omitempty"`

	// Room is the announced meeting room, when published.
	Room string `json:"room,omitempty"`

	// AgendaURL links to the meeting's agenda document, when published.
	AgendaURL string `json:"agenda_url,omitempty"`
}

// ScraperConfig configures a Scraper.
type ScraperConfig struct {
	// SenateURL is the Senate agenda page.
	SenateURL string

	// DeputiesURL is the Deputies agenda page.
	DeputiesURL string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client

	// UserAgent is the User-Agent header.
	UserAgent string
}

// DefaultSenateURL is the Senate committee agenda page.
const DefaultSenateURL = "https://www.senado.gob.ar/parlamentario/agenda"

// DefaultDeputiesURL is the Deputies committee agenda page.
const DefaultDeputiesURL = "https://www.hcdn.gob.ar/comisiones/reuniones.html"

// DefaultScraperConfig returns a ScraperConfig with sensible defaults.
func DefaultScraperConfig() ScraperConfig {
	return ScraperConfig{
		SenateURL:   DefaultSenateURL,
		DeputiesURL: DefaultDeputiesURL,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		UserAgent:   "asuntos-agenda/1.0",
	}
}

// Scraper fetches and parses the agenda pages.
type Scraper struct {
	config ScraperConfig
}

// NewScraper creates a Scraper, filling unset config fields with defaults.
func NewScraper(config ScraperConfig) *Scraper {
	defaults := DefaultScraperConfig()
	if config.SenateURL == "" {
		config.SenateURL = defaults.SenateURL
	}
	if config.DeputiesURL == "" {
		config.DeputiesURL = defaults.DeputiesURL
	}
	if config.HTTPClient == nil {
		config.HTTPClient = defaults.HTTPClient
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	return &Scraper{config: config}
}

// ScrapeAll collects the meetings of both chambers. A chamber that fails to
// scrape contributes nothing; the other chamber's meetings still return.
func (s *Scraper) ScrapeAll(ctx context.Context) ([]Meeting, error) {
	var meetings []Meeting
	var firstErr error

	senate, err := s.ScrapeSenate(ctx)
	if err != nil {
		firstErr = err
	}
	meetings = append(meetings, senate...)

	deputies, err := s.ScrapeDeputies(ctx)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	meetings = append(meetings, deputies...)

	if len(meetings) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return meetings, nil
}

func (s *Scraper) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.config.UserAgent)

	resp, err := s.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agenda page: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("agenda page returned status %d", resp.StatusCode)
	}
	return resp, nil
}
