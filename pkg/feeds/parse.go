package feeds

import (
	"encoding/xml"
	"fmt"
	"time"
)

// RSSFeed represents an RSS 2.0 feed.
type RSSFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []RSSItem `xml:"item"`
	} `xml:"channel"`
}

// RSSItem represents an RSS item.
type RSSItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// AtomFeed represents an Atom feed.
type AtomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []AtomEntry `xml:"entry"`
}

// AtomEntry represents an Atom entry.
type AtomEntry struct {
	Title   string     `xml:"title"`
	Updated string     `xml:"updated"`
	Links   []AtomLink `xml:"link"`
	Summary string     `xml:"summary"`
}

// AtomLink represents an Atom link.
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// ParseFeed parses a feed body, trying RSS 2.0 first and falling back to
// Atom. Items with unparseable dates keep a zero Published time; the
// day filter drops them later.
func ParseFeed(data []byte, sourceID string) ([]NewsItem, error) {
	items, err := parseRSSFeed(data, sourceID)
	if err != nil {
		items, err = parseAtomFeed(data, sourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse feed: %w", err)
		}
	}
	return items, nil
}

func parseRSSFeed(data []byte, sourceID string) ([]NewsItem, error) {
	var feed RSSFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	items := make([]NewsItem, 0, len(feed.Channel.Items))
	for _, item := range feed.Channel.Items {
		items = append(items, NewsItem{
			Title:     item.Title,
			SourceID:  sourceID,
			Published: parseFeedDate(item.PubDate),
			Link:      item.Link,
			Summary:   item.Description,
		})
	}

	return items, nil
}

func parseAtomFeed(data []byte, sourceID string) ([]NewsItem, error) {
	var feed AtomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}

	items := make([]NewsItem, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		var link string
		for _, l := range entry.Links {
			if l.Rel == "" || l.Rel == "alternate" {
				link = l.Href
				break
			}
		}
		if link == "" && len(entry.Links) > 0 {
			link = entry.Links[0].Href
		}

		items = append(items, NewsItem{
			Title:     entry.Title,
			SourceID:  sourceID,
			Published: parseFeedDate(entry.Updated),
			Link:      link,
			Summary:   entry.Summary,
		})
	}

	return items, nil
}

// parseFeedDate tries the date formats feeds use in the wild. An
// unrecognized date yields the zero time.
func parseFeedDate(dateStr string) time.Time {
	formats := []string{
		time.RFC1123,
		time.RFC1123Z,
		time.RFC822,
		time.RFC822Z,
		time.RFC3339,
		"Mon, 02 Jan 2006 15:04:05 -0700",
		"Mon, 02 Jan 2006 15:04:05 MST",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t
		}
	}

	return time.Time{}
}
