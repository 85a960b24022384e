package agenda

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var deputiesTimePattern = regexp.MustCompile(`^(\d{1,2}:\d{2})(.*)`)

// ScrapeDeputies parses the Deputies agenda page. The schedule table groups
// meetings under full-width weekday date rows; each meeting row carries the
// time plus room in one cell and the committee with a citation link in the
// other.
func (s *Scraper) ScrapeDeputies(ctx context.Context) ([]Meeting, error) {
	resp, err := s.get(ctx, s.config.DeputiesURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse agenda page: %w", err)
	}

	return parseDeputiesAgenda(doc), nil
}

func parseDeputiesAgenda(doc *goquery.Document) []Meeting {
	var meetings []Meeting
	currentDay := ""

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		// Date rows span the table width and reset the running day.
		header := row.Find("th[colspan]")
		if header.Length() > 0 {
			currentDay = strings.TrimSpace(header.Text())
			return
		}

		cells := row.Find("td")
		if cells.Length() < 2 || currentDay == "" {
			return
		}

		meeting := Meeting{
			Chamber: ChamberDeputies,
			Day:     currentDay,
		}

		schedule := strings.TrimSpace(cells.Eq(0).Text())
		if m := deputiesTimePattern.FindStringSubmatch(schedule); m != nil {
			meeting.Time = m[1]
			meeting.Room = strings.TrimSpace(m[2])
		} else {
			meeting.Room = schedule
		}

		committeeCell := cells.Eq(1)
		committee := committeeCell.Find(".description").First().Text()
		if committee == "" {
			committee = committeeCell.Text()
		}
		meeting.Committee = strings.TrimSpace(committee)
		if meeting.Committee == "" {
			return
		}

		if href, ok := committeeCell.Find("a").First().Attr("href"); ok {
			meeting.AgendaURL = href
		}

		meetings = append(meetings, meeting)
	})

	return meetings
}
