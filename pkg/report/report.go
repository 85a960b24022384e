// Package report renders classified pipeline output into the delivery
// formats: tab-separated and XLSX tables, a JSON dump of the full issue,
// and Word documents for client distribution.
package report

import (
	"strconv"
	"strings"

	"github.com/joacoherrero/AsuntosPublicos/pkg/feeds"
	"github.com/joacoherrero/AsuntosPublicos/pkg/gazette"
)

// ClassifiedDocument pairs an extracted gazette document with its
// classification outcome.
type ClassifiedDocument struct {
	gazette.Document

	// Topics are the matched topic names, in taxonomy order.
	Topics []string `json:"topics,omitempty"`

	// Keywords are the keywords that produced the matches, parallel to
	// Topics.
	Keywords []string `json:"keywords,omitempty"`

	// Accounts are the interested account names, sorted.
	Accounts []string `json:"accounts,omitempty"`
}

// columnHeaders is the fixed column order shared by the TSV and XLSX sinks.
var columnHeaders = []string{
	"tipo",
	"numero",
	"fecha",
	"titulo",
	"organismo",
	"identificador",
	"codigo_publicacion",
	"codigo_hash",
	"firmantes",
	"anexo_web",
	"temas",
	"palabras_clave",
	"cuentas",
	"texto",
}

// documentRow renders one classified document into the shared column order.
func documentRow(doc ClassifiedDocument) []string {
	return []string{
		string(doc.Type),
		doc.Number,
		doc.IssueDate,
		doc.Title,
		doc.IssuingBody,
		doc.Identifier,
		doc.PublicationCode,
		doc.HashCode,
		strings.Join(doc.Signatories, "; "),
		strconv.FormatBool(doc.HasWebAnnex),
		strings.Join(doc.Topics, "; "),
		strings.Join(doc.Keywords, "; "),
		strings.Join(doc.Accounts, "; "),
		escapeCell(doc.RawText),
	}
}

// escapeCell flattens multi-line text into a single table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", `\n`)
}

// TopicGroup collects the news items that matched one topic.
type TopicGroup struct {
	Topic string
	Items []feeds.NewsItem
}
