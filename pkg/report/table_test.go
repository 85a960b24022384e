package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joacoherrero/AsuntosPublicos/pkg/gazette"
)

func sampleDocs() []ClassifiedDocument {
	return []ClassifiedDocument{
		{
			Document: gazette.Document{
				Type:            gazette.TypeDecreto,
				Number:          "100/2024",
				Identifier:      "EX-2024-123-APN-DGD",
				IssueDate:       "15 de Agosto de 2026",
				Title:           "PRESUPUESTO - Modificación",
				IssuingBody:     "MINISTERIO DE ECONOMÍA",
				Signatories:     []string{"María García", "Carlos López"},
				PublicationCode: "e. 15/08/2026 N° 1/26 v. 15/08/2026",
				HashCode:        "#I123I#",
				HasWebAnnex:     true,
				RawText:         "DECRETO 100/2024\nlínea dos\r\nlínea tres",
			},
			Topics:   []string{"Economía"},
			Keywords: []string{"presupuesto"},
			Accounts: []string{"Holding SA"},
		},
		{
			Document: gazette.Document{Type: gazette.TypeLey, RawText: "LEY 27.000"},
		},
	}
}

func readTSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boletin.tsv")
	require.NoError(t, WriteTSV(path, sampleDocs()))

	rows := readTSV(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, columnHeaders, rows[0])

	row := rows[1]
	assert.Equal(t, "DECRETO", row[0])
	assert.Equal(t, "100/2024", row[1])
	assert.Equal(t, "15 de Agosto de 2026", row[2])
	assert.Equal(t, "PRESUPUESTO - Modificación", row[3])
	assert.Equal(t, "MINISTERIO DE ECONOMÍA", row[4])
	assert.Equal(t, "EX-2024-123-APN-DGD", row[5])
	assert.Equal(t, "María García; Carlos López", row[8])
	assert.Equal(t, "true", row[9])
	assert.Equal(t, "Economía", row[10])
	assert.Equal(t, "presupuesto", row[11])
	assert.Equal(t, "Holding SA", row[12])
	// Newlines are escaped so the raw text stays one cell.
	assert.Equal(t, `DECRETO 100/2024\nlínea dos \nlínea tres`, row[13])

	assert.Equal(t, "LEY", rows[2][0])
	assert.Equal(t, "", rows[2][1])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boletin.xlsx")
	require.NoError(t, WriteXLSX(path, sampleDocs()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columnHeaders, rows[0])
	assert.Equal(t, "DECRETO", rows[1][0])
	assert.Equal(t, "100/2024", rows[1][1])
	assert.Equal(t, "Holding SA", rows[1][12])
}

func TestWriteTSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacio.tsv")
	require.NoError(t, WriteTSV(path, nil))

	rows := readTSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, columnHeaders, rows[0])
}
