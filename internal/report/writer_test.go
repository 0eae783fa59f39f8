package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gossipscan/internal/domain"
)

func testRecords(now time.Time) []domain.ScanRecord {
	return []domain.ScanRecord{
		{
			Timestamp:   now,
			Pubkey:      "node-a",
			GossipIP:    "1.1.1.1",
			Version:     "1.18.22",
			CountryCode: "US",
			CountryName: "United States",
			Sanctioned:  false,
		},
		{
			Timestamp:   now,
			Pubkey:      "node-b",
			GossipIP:    "2.2.2.2",
			Version:     "1.18.15",
			CountryCode: "RU",
			CountryName: "Russia",
			Sanctioned:  true,
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening scan log failed: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parsing scan log failed: %v", err)
	}
	return rows
}

func TestAppendScanLog(t *testing.T) {
	now := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)

	t.Run("writes header and rows on first append", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.csv")
		writer := NewWriter(path, filepath.Join(t.TempDir(), "summary.txt"))

		if err := writer.AppendScanLog(testRecords(now)); err != nil {
			t.Fatalf("AppendScanLog returned error: %v", err)
		}

		rows := readCSV(t, path)
		if len(rows) != 3 {
			t.Fatalf("scan log has %d rows, want 3", len(rows))
		}

		wantHeader := "timestamp,pubkey,gossip_ip,version,country_code,country_name,is_ofac_sanctioned"
		if got := strings.Join(rows[0], ","); got != wantHeader {
			t.Errorf("header = %q, want %q", got, wantHeader)
		}

		first := rows[1]
		if _, err := time.Parse(time.RFC3339, first[0]); err != nil {
			t.Errorf("timestamp %q is not RFC 3339: %v", first[0], err)
		}
		if first[1] != "node-a" || first[2] != "1.1.1.1" || first[3] != "1.18.22" {
			t.Errorf("first row = %v", first)
		}
		if first[6] != "false" {
			t.Errorf("first row sanctioned = %q, want false", first[6])
		}
		if rows[2][6] != "true" {
			t.Errorf("second row sanctioned = %q, want true", rows[2][6])
		}
	})

	t.Run("later appends keep prior rows and skip the header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.csv")
		writer := NewWriter(path, filepath.Join(t.TempDir(), "summary.txt"))

		if err := writer.AppendScanLog(testRecords(now)); err != nil {
			t.Fatalf("first AppendScanLog returned error: %v", err)
		}
		if err := writer.AppendScanLog(testRecords(now.Add(24 * time.Hour))); err != nil {
			t.Fatalf("second AppendScanLog returned error: %v", err)
		}

		rows := readCSV(t, path)
		if len(rows) != 5 {
			t.Fatalf("scan log has %d rows, want 5", len(rows))
		}
		for i, row := range rows[1:] {
			if row[0] == "timestamp" {
				t.Errorf("row %d is a duplicate header", i+1)
			}
		}
	})

	t.Run("empty run still creates the file with its header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.csv")
		writer := NewWriter(path, filepath.Join(t.TempDir(), "summary.txt"))

		if err := writer.AppendScanLog(nil); err != nil {
			t.Fatalf("AppendScanLog returned error: %v", err)
		}

		rows := readCSV(t, path)
		if len(rows) != 1 {
			t.Fatalf("scan log has %d rows, want header only", len(rows))
		}
	})

	t.Run("missing directory propagates the error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent", "scan.csv")
		writer := NewWriter(path, filepath.Join(t.TempDir(), "summary.txt"))

		if err := writer.AppendScanLog(testRecords(now)); err == nil {
			t.Fatal("AppendScanLog returned nil error for an unwritable path")
		}
	})
}
