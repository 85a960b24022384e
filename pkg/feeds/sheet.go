package feeds

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// sheetDateLayout is the date format used in the news spreadsheet.
const sheetDateLayout = "02/01/2006"

// SheetSourceID marks items ingested from the news spreadsheet.
const SheetSourceID = "sheet"

// LoadSheetNews reads manually curated news from an XLSX workbook and keeps
// only the rows dated on the given day. The first sheet holds a header row
// followed by one item per row: date (DD/MM/YYYY), title, link, summary.
// Rows with a missing or malformed date are dropped.
func LoadSheetNews(path string, day time.Time) ([]NewsItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open news sheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("news workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read news sheet: %w", err)
	}

	wanted := day.Format(sheetDateLayout)

	var items []NewsItem
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		date := strings.TrimSpace(row[0])
		if date != wanted {
			continue
		}
		published, err := time.Parse(sheetDateLayout, date)
		if err != nil {
			continue
		}
		item := NewsItem{
			Title:     strings.TrimSpace(row[1]),
			SourceID:  SheetSourceID,
			Published: published,
		}
		if item.Title == "" {
			continue
		}
		if len(row) > 2 {
			item.Link = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			item.Summary = strings.TrimSpace(row[3])
		}
		items = append(items, item)
	}

	return items, nil
}
