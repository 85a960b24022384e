// Package feeds ingests news from configured RSS/Atom sources and from a
// locally maintained news spreadsheet, filtered to items published on the
// day of the run.
package feeds

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// NewsItem is one news entry surfaced by a source.
type NewsItem struct {
	// Title is the item headline.
	Title string `json:"title"`

	// SourceID identifies the source that produced the item.
	SourceID string `json:"source_id"`

	// Published is the item's publication time.
	Published time.Time `json:"published"`

	// Link is the item URL, when the source provides one.
	Link string `json:"link,omitempty"`

	// Summary is the item description, when the source provides one.
	Summary string `json:"summary,omitempty"`

	// MatchedKeyword is filled during classification with the keyword that
	// matched the item, empty until then.
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}

// Source is one configured news feed.
type Source struct {
	// ID is the unique identifier for this source.
	ID string `yaml:"id"`

	// Name is the display name used in reports.
	Name string `yaml:"name"`

	// URL is the feed URL.
	URL string `yaml:"url"`
}

// SourcesConfig holds the complete feed source configuration.
type SourcesConfig struct {
	// Sources is the list of configured feeds.
	Sources []Source `yaml:"sources"`
}

// LoadSourcesConfig loads feed source configuration from a YAML file.
func LoadSourcesConfig(path string) (*SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config: %w", err)
	}

	var config SourcesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	seen := make(map[string]bool, len(config.Sources))
	for i, source := range config.Sources {
		if source.ID == "" {
			return nil, fmt.Errorf("source %d: id is required", i)
		}
		if seen[source.ID] {
			return nil, fmt.Errorf("source %s: duplicate id", source.ID)
		}
		seen[source.ID] = true
		if source.URL == "" {
			return nil, fmt.Errorf("source %s: url is required", source.ID)
		}
	}

	return &config, nil
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// PublishedOn keeps only the items published on the given day. Items whose
// publication time is unset (an unparseable feed date) are dropped.
func PublishedOn(items []NewsItem, day time.Time) []NewsItem {
	var kept []NewsItem
	for _, item := range items {
		if item.Published.IsZero() {
			continue
		}
		if SameDay(item.Published, day) {
			kept = append(kept, item)
		}
	}
	return kept
}
