package gazette

import (
	"regexp"
	"strconv"
	"strings"
)

// SummaryEntry is one line of the issue's table of contents.
type SummaryEntry struct {
	Type    DocumentType `json:"type"`
	Number  string       `json:"number"`
	Page    int          `json:"page"`
	RawLine string       `json:"raw_line"`
}

// summaryStartMarker opens TOC capture; summaryEndMarker closes it.
const (
	summaryStartMarker = "SUMARIO"
	summaryEndMarker   = "Primera Sección"
)

// summaryPatterns match TOC entries of the shape
// "<type> <num>/<year> ... pág. <page>", one pattern per document type.
var summaryPatterns = buildSummaryPatterns()

func buildSummaryPatterns() map[DocumentType]*regexp.Regexp {
	patterns := make(map[DocumentType]*regexp.Regexp, len(typePatterns))
	for _, tp := range typePatterns {
		patterns[tp.docType] = regexp.MustCompile(
			`(?i)` + regexp.QuoteMeta(string(tp.docType)) + `\s+(\d+/\d{4}).*?\.+\s*pág\.\s*(\d+)`)
	}
	return patterns
}

// ExtractSummary parses the leading pages of an issue into a best-effort
// TOC index. Lines before the SUMARIO marker are ignored; capture returns
// immediately at the "Primera Sección" marker. The index is never
// cross-validated against the full per-document extraction; the two may
// disagree.
func ExtractSummary(pages []string) []SummaryEntry {
	var entries []SummaryEntry
	capturing := false

	for _, page := range pages {
		if !capturing {
			if strings.Contains(page, summaryStartMarker) {
				// The marker page itself is headers and section titles; entry
				// lines begin on the following page.
				capturing = true
			}
			continue
		}

		for _, line := range strings.Split(page, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			for _, tp := range typePatterns {
				if !containsFold(line, string(tp.docType)) {
					continue
				}
				m := summaryPatterns[tp.docType].FindStringSubmatch(line)
				if m == nil {
					continue
				}
				pageNum, _ := strconv.Atoi(m[2])
				entries = append(entries, SummaryEntry{
					Type:    tp.docType,
					Number:  m[1],
					Page:    pageNum,
					RawLine: strings.TrimSpace(line),
				})
				break
			}
			// The end-marker check runs after entry matching so a line
			// carrying both still contributes its entry.
			if strings.Contains(line, summaryEndMarker) {
				return entries
			}
		}
	}

	return entries
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
