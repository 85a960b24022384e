package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// WriteTSV writes the classified documents as a tab-separated table with a
// header row.
func WriteTSV(path string, docs []ClassifiedDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create TSV report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(columnHeaders); err != nil {
		return fmt.Errorf("failed to write TSV header: %w", err)
	}
	for _, doc := range docs {
		if err := w.Write(documentRow(doc)); err != nil {
			return fmt.Errorf("failed to write TSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush TSV report: %w", err)
	}
	return nil
}

// WriteXLSX writes the classified documents as an XLSX workbook with the
// same columns as the TSV report.
func WriteXLSX(path string, docs []ClassifiedDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, doc := range docs {
		for col, value := range documentRow(doc) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX report: %w", err)
	}
	return nil
}
