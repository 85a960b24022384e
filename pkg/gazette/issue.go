package gazette

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue aggregates everything extracted from one processed gazette PDF.
// Documents appear in page order; the segmenter always closes a block
// before opening the next, so documents never interleave.
type Issue struct {
	IssueNumber string         `json:"issue_number,omitempty"`
	IssueDate   string         `json:"issue_date,omitempty"`
	Summary     []SummaryEntry `json:"summary"`
	Documents   []Document     `json:"documents"`
}

// summaryPageCount is how many leading pages the TOC extractor scans.
const summaryPageCount = 3

var (
	issueNumberPattern = regexp.MustCompile(`Boletín\s+Oficial\s+N[°º]\s+(\d+\.?\d*)`)
	issueDatePattern   = regexp.MustCompile(`(?:Lunes|Martes|Miércoles|Jueves|Viernes)\s+(\d{1,2})\s+de\s+([A-Za-zÁÉÍÓÚáéíóúñÑ]+)\s+de\s+(\d{4})`)
)

// ParseIssue runs the full extraction over the per-page text of one issue:
// header metadata from the first page, the TOC from the leading pages, and
// segmentation plus field extraction over the whole flattened text.
func ParseIssue(pages []string) *Issue {
	issue := &Issue{}

	if len(pages) > 0 {
		issue.IssueNumber, issue.IssueDate = extractIssueHeader(pages[0])
	}

	tocPages := pages
	if len(tocPages) > summaryPageCount {
		tocPages = tocPages[:summaryPageCount]
	}
	issue.Summary = ExtractSummary(tocPages)

	extractor := NewFieldExtractor()
	for _, seg := range SegmentLines(flattenPages(pages)) {
		issue.Documents = append(issue.Documents, extractor.Extract(seg))
	}

	return issue
}

// extractIssueHeader pulls the issue number and the spelled-out weekday date
// from the first page's masthead.
func extractIssueHeader(firstPage string) (number, date string) {
	if m := issueNumberPattern.FindStringSubmatch(firstPage); m != nil {
		number = m[1]
	}
	if m := issueDatePattern.FindStringSubmatch(firstPage); m != nil {
		date = fmt.Sprintf("%s de %s de %s", m[1], m[2], m[3])
	}
	return number, date
}

// flattenPages linearizes per-page text into one line sequence, preserving
// page order. Page boundaries are transparent to segmentation: a document
// may span pages.
func flattenPages(pages []string) []string {
	var lines []string
	for _, page := range pages {
		lines = append(lines, strings.Split(page, "\n")...)
	}
	return lines
}
