package agenda

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	senateDayPattern  = regexp.MustCompile(`([\p{L}]+\s+\d{1,2}\s+de\s+[\p{L}]+)`)
	senateTimePattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*h`)
)

// ScrapeSenate parses the Senate agenda page. Meetings sit in the first
// table after the "Agenda de Reuniones" heading, one row per meeting with
// committee, day and time, and an agenda link.
func (s *Scraper) ScrapeSenate(ctx context.Context) ([]Meeting, error) {
	resp, err := s.get(ctx, s.config.SenateURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse agenda page: %w", err)
	}

	return parseSenateAgenda(doc), nil
}

func parseSenateAgenda(doc *goquery.Document) []Meeting {
	var table *goquery.Selection
	doc.Find("h1").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(h.Text(), "Agenda de Reuniones") {
			table = h.NextAllFiltered("table").First()
			if table.Length() == 0 {
				table = h.Parent().Find("table").First()
			}
			return false
		}
		return true
	})
	if table == nil || table.Length() == 0 {
		return nil
	}

	var meetings []Meeting
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		committee := strings.TrimSpace(cells.Eq(0).Text())
		if committee == "" {
			return
		}

		schedule := cells.Eq(1).Text()
		meeting := Meeting{
			Chamber:   ChamberSenate,
			Committee: committee,
		}
		if m := senateDayPattern.FindStringSubmatch(schedule); m != nil {
			meeting.Day = strings.TrimSpace(m[1])
		}
		if m := senateTimePattern.FindStringSubmatch(schedule); m != nil {
			meeting.Time = m[1]
		}
		if href, ok := cells.Eq(2).Find("a").First().Attr("href"); ok {
			meeting.AgendaURL = href
		}

		meetings = append(meetings, meeting)
	})

	return meetings
}
