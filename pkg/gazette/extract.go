package gazette

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Document is one extracted legal instrument. Every field except Type and
// RawText is best-effort: a pattern that fails to match leaves the field
// empty, it never aborts the document.
type Document struct {
	Type            DocumentType `json:"type"`
	Number          string       `json:"number,omitempty"`
	Identifier      string       `json:"identifier,omitempty"`
	IssueDate       string       `json:"date,omitempty"`
	Title           string       `json:"title,omitempty"`
	IssuingBody     string       `json:"issuing_body,omitempty"`
	Signatories     []string     `json:"signatories,omitempty"`
	PublicationCode string       `json:"publication_code,omitempty"`
	HashCode        string       `json:"hash_code,omitempty"`
	HasWebAnnex     bool         `json:"has_web_annex"`
	RawText         string       `json:"raw_text"`
}

// FieldExtractor extracts the structured fields of one segmented block.
type FieldExtractor struct {
	identifierPattern  *regexp.Regexp
	spelledDatePattern *regexp.Regexp
	numericDatePattern *regexp.Regexp
	publicationPattern *regexp.Regexp
	hashPattern        *regexp.Regexp
	bodyPatterns       []*regexp.Regexp
	signatoryPattern   *regexp.Regexp
}

// titleScanLines bounds the title heuristic to the top of the block.
const titleScanLines = 5

// signatureScanLines bounds the signatory scan to the bottom of the block.
const signatureScanLines = 10

// nonSignatureLines are all-caps running heads that qualify under the bare
// personal-name shape but never name a signatory.
var nonSignatureLines = map[string]bool{
	"BUENOS AIRES":           true,
	"CIUDAD DE BUENOS AIRES": true,
}

// NewFieldExtractor compiles the field patterns once.
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{
		identifierPattern:  regexp.MustCompile(`[A-Z]+-\d{4}-\d+-[A-Z]+-[A-Z]+(?:#[A-Z]+)?`),
		spelledDatePattern: regexp.MustCompile(`Ciudad de Buenos Aires,\s*(\d{1,2}\s+de\s+[A-Za-zÁÉÍÓÚáéíóúñÑ]+\s+de\s+\d{4})`),
		numericDatePattern: regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
		publicationPattern: regexp.MustCompile(`e\.\s+\d{2}/\d{2}/\d{4}\s+N[°º]\s+\d+/\d{2}\s+v\.\s+\d{2}/\d{2}/\d{4}`),
		hashPattern:        regexp.MustCompile(`#[IF]\d+[IF]#`),
		bodyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`MINISTERIO\s+DE\s+[A-ZÁÉÍÓÚÑ\s]+`),
			regexp.MustCompile(`SECRETARÍA\s+[A-ZÁÉÍÓÚÑ\s]+`),
			regexp.MustCompile(`PRESIDENCIA\s+DE\s+LA\s+NACIÓN`),
		},
		signatoryPattern: regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ][a-záéíóúñA-ZÁÉÍÓÚÑ]+(?:\s+[A-ZÁÉÍÓÚÑ][a-záéíóúñA-ZÁÉÍÓÚÑ]+)+$`),
	}
}

// Extract builds a Document from one segmented block.
func (e *FieldExtractor) Extract(seg Segment) Document {
	lines := strings.Split(seg.Text, "\n")

	return Document{
		Type:            seg.Type,
		Number:          e.extractNumber(seg.Type, seg.Text),
		Identifier:      e.identifierPattern.FindString(seg.Text),
		IssueDate:       e.extractDate(seg.Text),
		Title:           e.extractTitle(lines),
		IssuingBody:     e.extractIssuingBody(seg.Text),
		Signatories:     e.extractSignatories(lines),
		PublicationCode: e.publicationPattern.FindString(seg.Text),
		HashCode:        e.hashPattern.FindString(seg.Text),
		HasWebAnnex:     hasWebAnnex(seg.Text),
		RawText:         seg.Text,
	}
}

// extractNumber re-applies the type's own boundary pattern against the full
// block and returns its captured number group.
func (e *FieldExtractor) extractNumber(docType DocumentType, text string) string {
	re := patternFor(docType)
	if re == nil {
		return ""
	}
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractDate tries the spelled-out Buenos Aires dateline first, then a bare
// DD/MM/YYYY anywhere in the block.
func (e *FieldExtractor) extractDate(text string) string {
	if m := e.spelledDatePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := e.numericDatePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractTitle returns the first of the block's leading lines that contains
// a hyphen and is longer than 10 characters. Gazette titles are typically
// "SUBJECT - detail" one-liners near the top; a preamble line with a dash
// can mis-fire here, which is a documented imprecision of the heuristic.
func (e *FieldExtractor) extractTitle(lines []string) string {
	limit := titleScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if strings.Contains(line, "-") && utf8.RuneCountInString(line) > 10 {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func (e *FieldExtractor) extractIssuingBody(text string) string {
	for _, re := range e.bodyPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractSignatories scans the block's trailing lines for bare personal
// names: two or more capitalized words and nothing else on the line.
// Institutional trailer lines (ministries, secretariats, the presidency)
// share that shape and are rejected via the issuing-body patterns.
func (e *FieldExtractor) extractSignatories(lines []string) []string {
	start := len(lines) - signatureScanLines
	if start < 0 {
		start = 0
	}
	var signatories []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || nonSignatureLines[trimmed] || e.isInstitutional(trimmed) {
			continue
		}
		if e.signatoryPattern.MatchString(trimmed) {
			signatories = append(signatories, trimmed)
		}
	}
	return signatories
}

func (e *FieldExtractor) isInstitutional(line string) bool {
	for _, re := range e.bodyPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// hasWebAnnex reports whether the block announces an annex published on the
// web rather than in the printed issue.
func hasWebAnnex(text string) bool {
	return strings.Contains(text, "ANEXO") &&
		strings.Contains(strings.ToLower(text), "web")
}
