// Package report persists the two output files of a scan run: the cumulative
// CSV scan log and the per run summary text file.
package report

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"gossipscan/internal/domain"
)

var scanLogHeader = []string{
	"timestamp",
	"pubkey",
	"gossip_ip",
	"version",
	"country_code",
	"country_name",
	"is_ofac_sanctioned",
}

// Writer owns the output file paths. File errors propagate to the caller and
// abort the run.
type Writer struct {
	scanLogPath string
	summaryPath string
}

func NewWriter(scanLogPath, summaryPath string) *Writer {
	return &Writer{scanLogPath: scanLogPath, summaryPath: summaryPath}
}

// AppendScanLog appends one CSV row per record to the cumulative scan log.
// The header is written only when the file does not exist yet; existing
// content is never rewritten.
func (w *Writer) AppendScanLog(records []domain.ScanRecord) error {
	_, statErr := os.Stat(w.scanLogPath)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(w.scanLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	csvWriter := csv.NewWriter(file)
	if writeHeader {
		if err := csvWriter.Write(scanLogHeader); err != nil {
			return err
		}
	}

	for _, record := range records {
		row := []string{
			record.Timestamp.Format(time.RFC3339),
			record.Pubkey,
			record.GossipIP,
			record.Version,
			record.CountryCode,
			record.CountryName,
			strconv.FormatBool(record.Sanctioned),
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
