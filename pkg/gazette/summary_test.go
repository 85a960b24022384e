package gazette

import "testing"

func TestExtractSummary(t *testing.T) {
	pages := []string{
		"Boletín Oficial N° 35.000\nSUMARIO\nPrimera Sección Legislación",
		"Decretos\nDECRETO 100/2024 Presupuesto ................ pág. 3\nRESOLUCIÓN 55/2024 Comercio ........ pág. 7",
		"texto posterior",
	}

	entries := ExtractSummary(pages)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Type != TypeDecreto || entries[0].Number != "100/2024" || entries[0].Page != 3 {
		t.Errorf("Entry 0 mismatch: %+v", entries[0])
	}
	if entries[1].Type != TypeResolucion || entries[1].Number != "55/2024" || entries[1].Page != 7 {
		t.Errorf("Entry 1 mismatch: %+v", entries[1])
	}
}

func TestExtractSummaryStopsAtEndMarker(t *testing.T) {
	pages := []string{
		"SUMARIO",
		"DECRETO 1/2024 Tema .... pág. 2\nPrimera Sección\nDECRETO 9/2024 Fuera .... pág. 9",
	}

	entries := ExtractSummary(pages)
	if len(entries) != 1 {
		t.Fatalf("Capture must stop at the end marker: got %d entries", len(entries))
	}
	if entries[0].Number != "1/2024" {
		t.Errorf("Entry mismatch: %+v", entries[0])
	}
}

func TestExtractSummaryEndMarkerLineKeepsItsEntry(t *testing.T) {
	pages := []string{
		"SUMARIO",
		"DECRETO 5/2024 Último .... pág. 12 Primera Sección\nDECRETO 9/2024 Fuera .... pág. 9",
	}

	entries := ExtractSummary(pages)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Number != "5/2024" {
		t.Errorf("The end-marker line must still contribute its entry: %+v", entries[0])
	}
}

func TestExtractSummaryFallsThroughToLaterType(t *testing.T) {
	// "LEYES" contains the LEY keyword but fails its entry pattern; the
	// DECRETO entry on the same line must still be captured.
	pages := []string{
		"SUMARIO",
		"LEYES Y DECRETOS: DECRETO 7/2024 Tema .... pág. 5",
	}

	entries := ExtractSummary(pages)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Type != TypeDecreto || entries[0].Number != "7/2024" {
		t.Errorf("Entry mismatch: %+v", entries[0])
	}
}

func TestExtractSummaryNoMarker(t *testing.T) {
	pages := []string{"página sin índice", "DECRETO 1/2024 Tema .... pág. 2"}

	if entries := ExtractSummary(pages); len(entries) != 0 {
		t.Fatalf("Without the start marker no entries should be captured, got %d", len(entries))
	}
}

func TestExtractSummaryEntriesStartOnNextPage(t *testing.T) {
	pages := []string{
		"SUMARIO\nDECRETO 1/2024 MismaPagina .... pág. 2",
		"DECRETO 2/2024 Siguiente .... pág. 4",
	}

	entries := ExtractSummary(pages)
	if len(entries) != 1 {
		t.Fatalf("Marker-page lines must be skipped: got %d entries", len(entries))
	}
	if entries[0].Number != "2/2024" {
		t.Errorf("Entry mismatch: %+v", entries[0])
	}
}
