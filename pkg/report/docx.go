package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/joacoherrero/AsuntosPublicos/pkg/feeds"
)

const (
	docxTitleSize   = "32"
	docxHeadingSize = "26"
	docxBodySize    = "22"
)

// WriteNewsReport writes the general news digest: one heading per matched
// topic followed by its items.
func WriteNewsReport(path, title string, groups []TopicGroup) error {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(title).Size(docxTitleSize).Bold()
	w.AddParagraph()

	for _, group := range groups {
		if len(group.Items) == 0 {
			continue
		}
		w.AddParagraph().AddText(group.Topic).Size(docxHeadingSize).Bold()
		for _, item := range group.Items {
			addNewsItem(w, item)
		}
		w.AddParagraph()
	}

	return saveDocx(w, path)
}

// WriteAccountNewsReport writes one client's news digest, restricted to the
// topic groups that client follows.
func WriteAccountNewsReport(path, account string, groups []TopicGroup) error {
	return WriteNewsReport(path, fmt.Sprintf("Novedades - %s", account), groups)
}

// WriteAccountGazetteReport writes one client's gazette digest: the
// documents whose classification reached that account.
func WriteAccountGazetteReport(path, account string, docs []ClassifiedDocument) error {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(fmt.Sprintf("Boletín Oficial - %s", account)).Size(docxTitleSize).Bold()
	w.AddParagraph()

	for _, doc := range docs {
		heading := string(doc.Type)
		if doc.Number != "" {
			heading += " " + doc.Number
		}
		w.AddParagraph().AddText(heading).Size(docxHeadingSize).Bold()

		if doc.Title != "" {
			w.AddParagraph().AddText(doc.Title).Size(docxBodySize)
		}
		if doc.IssuingBody != "" {
			w.AddParagraph().AddText("Organismo: " + doc.IssuingBody).Size(docxBodySize)
		}
		if doc.IssueDate != "" {
			w.AddParagraph().AddText("Fecha: " + doc.IssueDate).Size(docxBodySize)
		}
		if doc.Identifier != "" {
			w.AddParagraph().AddText("Identificador: " + doc.Identifier).Size(docxBodySize)
		}
		if len(doc.Topics) > 0 {
			w.AddParagraph().AddText("Temas: " + strings.Join(doc.Topics, "; ")).Size(docxBodySize)
		}
		if len(doc.Keywords) > 0 {
			w.AddParagraph().AddText("Palabras clave: " + strings.Join(doc.Keywords, "; ")).Size(docxBodySize)
		}

		w.AddParagraph().AddText("Contenido completo").Size(docxBodySize).Bold()
		for _, line := range strings.Split(doc.RawText, "\n") {
			w.AddParagraph().AddText(line).Size(docxBodySize)
		}
		w.AddParagraph()
	}

	return saveDocx(w, path)
}

func addNewsItem(w *docx.Docx, item feeds.NewsItem) {
	line := item.Title
	if item.SourceID != "" {
		line = fmt.Sprintf("%s (%s)", line, item.SourceID)
	}
	w.AddParagraph().AddText(line).Size(docxBodySize)
	if item.MatchedKeyword != "" {
		w.AddParagraph().AddText("Palabra clave encontrada: " + item.MatchedKeyword).Size(docxBodySize)
	}
	if item.Link != "" {
		w.AddParagraph().AddText(item.Link).Size(docxBodySize)
	}
}

func saveDocx(w *docx.Docx, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create Word report: %w", err)
	}
	defer f.Close()

	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write Word report: %w", err)
	}
	return nil
}
