package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/joacoherrero/AsuntosPublicos/pkg/agenda"
)

// ClassifiedMeeting pairs a scraped meeting with the topics its committee
// name matched.
type ClassifiedMeeting struct {
	agenda.Meeting

	Topics []string `json:"topics,omitempty"`
}

var agendaHeaders = []string{"camara", "comision", "dia", "hora", "sala", "agenda_url", "temas"}

// WriteAgendaCSV writes the classified committee meetings as a CSV table.
func WriteAgendaCSV(path string, meetings []ClassifiedMeeting) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agenda report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(agendaHeaders); err != nil {
		return fmt.Errorf("failed to write agenda header: %w", err)
	}
	for _, m := range meetings {
		row := []string{
			string(m.Chamber), m.Committee, m.Day, m.Time, m.Room, m.AgendaURL,
			strings.Join(m.Topics, "; "),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write agenda row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush agenda report: %w", err)
	}
	return nil
}
