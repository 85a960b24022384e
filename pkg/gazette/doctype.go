// Package gazette turns the linear page text of an official-gazette issue
// into typed legal-instrument records: it segments the text into one block
// per instrument, extracts the structured fields of each block, and parses
// the leading SUMARIO pages into a lightweight index.
package gazette

import "regexp"

// DocumentType identifies the kind of legal instrument a block announces.
type DocumentType string

const (
	TypeLey                    DocumentType = "LEY"
	TypeDecreto                DocumentType = "DECRETO"
	TypeResolucion             DocumentType = "RESOLUCIÓN"
	TypeDisposicion            DocumentType = "DISPOSICIÓN"
	TypeDecisionAdministrativa DocumentType = "DECISIÓN ADMINISTRATIVA"
)

// typePattern pairs an instrument type with the pattern that detects a block
// opening for it. The pattern is anchored at line start so a type keyword in
// running prose never opens a new block, and captures the instrument number
// (digits with optional thousands separators and an optional /year suffix).
type typePattern struct {
	docType DocumentType
	re      *regexp.Regexp
}

// typePatterns is consulted in declaration order; the first matching pattern
// wins. The keywords are mutually exclusive, so order only matters for
// DECISIÓN ADMINISTRATIVA, which must not be shadowed by a bare DECISIÓN
// pattern (there is none).
var typePatterns = []typePattern{
	{TypeLey, regexp.MustCompile(`(?i)^LEY\s+(?:N[°º]\s*)?(\d+(?:\.\d+)*(?:/\d{4})?)`)},
	{TypeDecreto, regexp.MustCompile(`(?i)^DECRETO\s+(?:N[°º]\s*)?(\d+(?:\.\d+)*(?:/\d{4})?)`)},
	{TypeResolucion, regexp.MustCompile(`(?i)^RESOLUCIÓN\s+(?:N[°º]\s*)?(\d+(?:\.\d+)*(?:/\d{4})?)`)},
	{TypeDisposicion, regexp.MustCompile(`(?i)^DISPOSICIÓN\s+(?:N[°º]\s*)?(\d+(?:\.\d+)*(?:/\d{4})?)`)},
	{TypeDecisionAdministrativa, regexp.MustCompile(`(?i)^DECISIÓN\s+ADMINISTRATIVA\s+(?:N[°º]\s*)?(\d+(?:\.\d+)*(?:/\d{4})?)`)},
}

// Types returns every known document type in declaration order.
func Types() []DocumentType {
	types := make([]DocumentType, 0, len(typePatterns))
	for _, tp := range typePatterns {
		types = append(types, tp.docType)
	}
	return types
}

// DetectType reports whether line opens a new instrument block and, if so,
// which type it announces.
func DetectType(line string) (DocumentType, bool) {
	for _, tp := range typePatterns {
		if tp.re.MatchString(line) {
			return tp.docType, true
		}
	}
	return "", false
}

// patternFor returns the boundary pattern for a document type, or nil for an
// unknown type.
func patternFor(docType DocumentType) *regexp.Regexp {
	for _, tp := range typePatterns {
		if tp.docType == docType {
			return tp.re
		}
	}
	return nil
}
