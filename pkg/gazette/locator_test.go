package gazette

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("Bad test date %q: %v", value, err)
	}
	return day
}

func TestBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"friday stays", "2026-08-21", "2026-08-21"},
		{"saturday rolls to friday", "2026-08-22", "2026-08-21"},
		{"sunday rolls to friday", "2026-08-23", "2026-08-21"},
		{"monday stays", "2026-08-24", "2026-08-24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessDay(mustDate(t, tt.in))
			if want := mustDate(t, tt.want); !got.Equal(want) {
				t.Errorf("BusinessDay(%s) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestLocateFirstDayFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	locator := NewLocator(LocatorConfig{BaseURL: server.URL})
	today := mustDate(t, "2026-08-21")

	url, day, err := locator.Locate(context.Background(), today)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if !day.Equal(today) {
		t.Errorf("Day mismatch: got %s", day.Format("2006-01-02"))
	}
	if want := server.URL + "/pdf/pdfPorNombre/20260821"; url != want {
		t.Errorf("URL mismatch: got %q, want %q", url, want)
	}
}

func TestLocateRetriesPriorDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pdf/pdfPorNombre/20260821" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	locator := NewLocator(LocatorConfig{BaseURL: server.URL})

	_, day, err := locator.Locate(context.Background(), mustDate(t, "2026-08-21"))
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if want := mustDate(t, "2026-08-20"); !day.Equal(want) {
		t.Errorf("Expected fallback to prior day, got %s", day.Format("2006-01-02"))
	}
}

func TestLocateBothDaysMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	locator := NewLocator(LocatorConfig{BaseURL: server.URL})

	_, _, err := locator.Locate(context.Background(), mustDate(t, "2026-08-21"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestLocateWeekendProbesFriday(t *testing.T) {
	var probed []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probed = append(probed, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	locator := NewLocator(LocatorConfig{BaseURL: server.URL})

	_, _, err := locator.Locate(context.Background(), mustDate(t, "2026-08-23"))
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if len(probed) != 1 || probed[0] != "/pdf/pdfPorNombre/20260821" {
		t.Errorf("Sunday run must probe Friday first, probed %v", probed)
	}
}

func TestDownloadValidatesPDFMagic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>error page</html>"))
	}))
	defer server.Close()

	locator := NewLocator(LocatorConfig{BaseURL: server.URL})

	_, err := locator.Download(context.Background(), mustDate(t, "2026-08-21"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("Expected ErrNotPDF, got %v", err)
	}
}

func TestDownloadUsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("%PDF-1.7 contenido"))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	locator := NewLocator(LocatorConfig{BaseURL: server.URL, CacheDir: cacheDir})
	day := mustDate(t, "2026-08-21")

	first, err := locator.Download(context.Background(), day)
	if err != nil {
		t.Fatalf("First download failed: %v", err)
	}
	second, err := locator.Download(context.Background(), day)
	if err != nil {
		t.Fatalf("Second download failed: %v", err)
	}

	if hits != 1 {
		t.Errorf("Expected 1 network hit, got %d", hits)
	}
	if string(first) != string(second) {
		t.Errorf("Cached bytes differ from downloaded bytes")
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "boletin_20260821.pdf")); err != nil {
		t.Errorf("Cache file missing: %v", err)
	}
}
