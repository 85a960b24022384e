// Package pipeline wires the gazette, news and agenda stages together and
// drives them end to end for one run day.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joacoherrero/AsuntosPublicos/pkg/agenda"
	"github.com/joacoherrero/AsuntosPublicos/pkg/config"
	"github.com/joacoherrero/AsuntosPublicos/pkg/feeds"
	"github.com/joacoherrero/AsuntosPublicos/pkg/gazette"
	"github.com/joacoherrero/AsuntosPublicos/pkg/pdftext"
	"github.com/joacoherrero/AsuntosPublicos/pkg/report"
	"github.com/joacoherrero/AsuntosPublicos/pkg/taxonomy"
)

// fileDateLayout keys output files by run day.
const fileDateLayout = "20060102"

// Pipeline holds the collaborators of one configured run.
type Pipeline struct {
	cfg       *config.Config
	store     *taxonomy.Store
	log       *slog.Logger
	extractor pdftext.Extractor
	locator   *gazette.Locator
	fetcher   *feeds.Fetcher
	scraper   *agenda.Scraper
	now       func() time.Time
}

// New builds a Pipeline from configuration. A taxonomy that fails to load
// degrades to an empty store: extraction still runs, classification finds
// nothing.
func New(cfg *config.Config, log *slog.Logger) *Pipeline {
	store, err := taxonomy.Load(cfg.TopicsPath, cfg.AccountsPath)
	if err != nil {
		log.Warn("taxonomy load failed, classification disabled", "error", err)
		store = taxonomy.NewStore(nil, nil)
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}

	return &Pipeline{
		cfg:       cfg,
		store:     store,
		log:       log,
		extractor: pdftext.NewReader(),
		locator: gazette.NewLocator(gazette.LocatorConfig{
			BaseURL:    cfg.GazetteBaseURL,
			HTTPClient: client,
			CacheDir:   cfg.CacheDir,
		}),
		fetcher: feeds.NewFetcher(feeds.FetcherConfig{
			HTTPClient: client,
			Workers:    cfg.FeedWorkers,
			Retry: feeds.RetryPolicy{
				MaxAttempts: cfg.FeedRetries,
				Backoff:     cfg.FeedBackoff,
			},
		}),
		scraper: agenda.NewScraper(agenda.ScraperConfig{HTTPClient: client}),
		now:     time.Now,
	}
}

// Run executes every stage. A failed stage is logged and the remaining
// stages still run; the first failure is returned.
func (p *Pipeline) Run(ctx context.Context, localPDF, dateOverride string) error {
	var firstErr error

	if err := p.RunGazette(ctx, localPDF, dateOverride); err != nil {
		p.log.Error("gazette stage failed", "error", err)
		firstErr = err
	}
	if err := p.RunNews(ctx); err != nil {
		p.log.Error("news stage failed", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	if err := p.RunAgenda(ctx); err != nil {
		p.log.Error("agenda stage failed", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// RunGazette processes one gazette issue: locate and download (or read a
// local PDF), extract, classify and write every report. A report sink that
// fails is logged and skipped; the remaining sinks still run.
func (p *Pipeline) RunGazette(ctx context.Context, localPDF, dateOverride string) error {
	day, err := p.runDay(dateOverride)
	if err != nil {
		return err
	}

	data, day, err := p.issueBytes(ctx, localPDF, day)
	if err != nil {
		return err
	}

	pages, err := p.extractor.Pages(data)
	if err != nil {
		return fmt.Errorf("failed to extract PDF text: %w", err)
	}

	issue := gazette.ParseIssue(pages)
	classified := p.classifyDocuments(issue.Documents)
	runID := uuid.NewString()

	p.log.Info("gazette issue processed",
		"run_id", runID,
		"issue_number", issue.IssueNumber,
		"documents", len(classified))

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	stamp := day.Format(fileDateLayout)
	p.writeReport("tsv", func() error {
		return report.WriteTSV(p.outPath("boletin_"+stamp+".tsv"), classified)
	})
	p.writeReport("xlsx", func() error {
		return report.WriteXLSX(p.outPath("boletin_"+stamp+".xlsx"), classified)
	})
	p.writeReport("json", func() error {
		return report.WriteJSON(p.outPath("boletin_"+stamp+".json"), report.IssueDump{
			RunID:       runID,
			IssueNumber: issue.IssueNumber,
			IssueDate:   issue.IssueDate,
			Summary:     issue.Summary,
			Documents:   classified,
		})
	})

	for account, docs := range groupByAccount(classified) {
		base := fmt.Sprintf("boletin_%s_%s", stamp, sanitizeFileName(account))
		p.writeReport("account xlsx", func() error {
			return report.WriteXLSX(p.outPath(base+".xlsx"), docs)
		})
		p.writeReport("account docx", func() error {
			return report.WriteAccountGazetteReport(p.outPath(base+".docx"), account, docs)
		})
	}

	return nil
}

// RunNews ingests feed and spreadsheet news for today, classifies it and
// writes the general digest plus one digest per interested account.
func (p *Pipeline) RunNews(ctx context.Context) error {
	today := p.now()

	var items []feeds.NewsItem

	sources, err := feeds.LoadSourcesConfig(p.cfg.SourcesPath)
	if err != nil {
		p.log.Warn("feed sources unavailable", "error", err)
	} else {
		for _, result := range p.fetcher.FetchAll(ctx, sources.Sources) {
			if result.Err != nil {
				p.log.Warn("feed fetch failed", "source", result.Source.ID, "error", result.Err)
				continue
			}
			items = append(items, feeds.PublishedOn(result.Items, today)...)
		}
	}

	if p.cfg.SheetNewsPath != "" {
		sheetItems, err := feeds.LoadSheetNews(p.cfg.SheetNewsPath, today)
		if err != nil {
			p.log.Warn("sheet news unavailable", "error", err)
		} else {
			items = append(items, sheetItems...)
		}
	}

	groups := p.groupNewsByTopic(items)
	if len(groups) == 0 {
		p.log.Info("no news matched any topic")
		return nil
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	stamp := today.Format(fileDateLayout)
	p.writeReport("news docx", func() error {
		return report.WriteNewsReport(p.outPath("novedades_"+stamp+".docx"), "Novedades del día", groups)
	})

	for _, account := range p.store.Accounts() {
		accountGroups := filterGroups(groups, account.Topics)
		if len(accountGroups) == 0 {
			continue
		}
		name := fmt.Sprintf("novedades_%s_%s.docx", stamp, sanitizeFileName(account.Name))
		p.writeReport("account news docx", func() error {
			return report.WriteAccountNewsReport(p.outPath(name), account.Name, accountGroups)
		})
	}

	return nil
}

// RunAgenda scrapes both chambers' committee agendas, classifies each
// meeting by its committee name and writes the CSV.
func (p *Pipeline) RunAgenda(ctx context.Context) error {
	meetings, err := p.scraper.ScrapeAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to scrape agendas: %w", err)
	}
	if len(meetings) == 0 {
		p.log.Info("no committee meetings published")
		return nil
	}

	classified := make([]report.ClassifiedMeeting, 0, len(meetings))
	for _, meeting := range meetings {
		cm := report.ClassifiedMeeting{Meeting: meeting}
		for _, m := range p.store.Classify(meeting.Committee) {
			cm.Topics = append(cm.Topics, m.Topic)
		}
		classified = append(classified, cm)
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	stamp := p.now().Format(fileDateLayout)
	return report.WriteAgendaCSV(p.outPath("agenda_"+stamp+".csv"), classified)
}

// issueBytes resolves the issue PDF: a local file when given, otherwise
// locate and download for the run day.
func (p *Pipeline) issueBytes(ctx context.Context, localPDF string, day time.Time) ([]byte, time.Time, error) {
	if localPDF != "" {
		data, err := os.ReadFile(localPDF)
		if err != nil {
			return nil, day, fmt.Errorf("failed to read local PDF: %w", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			return nil, day, gazette.ErrNotPDF
		}
		return data, day, nil
	}

	_, located, err := p.locator.Locate(ctx, day)
	if err != nil {
		return nil, day, err
	}
	data, err := p.locator.Download(ctx, located)
	if err != nil {
		return nil, day, err
	}
	return data, located, nil
}

func (p *Pipeline) runDay(dateOverride string) (time.Time, error) {
	if dateOverride == "" {
		return p.now(), nil
	}
	day, err := time.Parse("2006-01-02", dateOverride)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", dateOverride, err)
	}
	return day, nil
}

func (p *Pipeline) classifyDocuments(docs []gazette.Document) []report.ClassifiedDocument {
	classified := make([]report.ClassifiedDocument, 0, len(docs))
	for _, doc := range docs {
		matches := p.store.Classify(doc.RawText)
		cd := report.ClassifiedDocument{Document: doc}
		for _, m := range matches {
			cd.Topics = append(cd.Topics, m.Topic)
			cd.Keywords = append(cd.Keywords, m.MatchedKeyword)
		}
		cd.Accounts = p.store.InterestedAccounts(matches)
		classified = append(classified, cd)
	}
	return classified
}

// groupNewsByTopic classifies each item on its title and summary and
// buckets it under every topic it matched, in taxonomy order.
func (p *Pipeline) groupNewsByTopic(items []feeds.NewsItem) []report.TopicGroup {
	buckets := make(map[string][]feeds.NewsItem)
	for _, item := range items {
		matches := p.store.Classify(item.Title + " " + item.Summary)
		for _, m := range matches {
			matched := item
			matched.MatchedKeyword = m.MatchedKeyword
			buckets[m.Topic] = append(buckets[m.Topic], matched)
		}
	}

	var groups []report.TopicGroup
	for _, topic := range p.store.Topics() {
		if bucket := buckets[topic.Name]; len(bucket) > 0 {
			groups = append(groups, report.TopicGroup{Topic: topic.Name, Items: bucket})
		}
	}
	return groups
}

func groupByAccount(docs []report.ClassifiedDocument) map[string][]report.ClassifiedDocument {
	grouped := make(map[string][]report.ClassifiedDocument)
	for _, doc := range docs {
		for _, account := range doc.Accounts {
			grouped[account] = append(grouped[account], doc)
		}
	}
	return grouped
}

func filterGroups(groups []report.TopicGroup, topics []string) []report.TopicGroup {
	wanted := make(map[string]bool, len(topics))
	for _, t := range topics {
		wanted[t] = true
	}
	var kept []report.TopicGroup
	for _, g := range groups {
		if wanted[g.Topic] {
			kept = append(kept, g)
		}
	}
	return kept
}

// writeReport runs one sink, logging and swallowing its failure so the
// remaining sinks still run.
func (p *Pipeline) writeReport(kind string, write func() error) {
	if err := write(); err != nil {
		p.log.Error("report write failed", "report", kind, "error", err)
	}
}

func (p *Pipeline) outPath(name string) string {
	return filepath.Join(p.cfg.OutputDir, name)
}

func sanitizeFileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(name)
}
