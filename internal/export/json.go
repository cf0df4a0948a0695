// Package export renders scan reports as JSON or markdown for docs, tooling,
// and AI context windows.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/scan"
)

// ReportExport is the top-level JSON export structure.
type ReportExport struct {
	Root       string                `json:"root"`
	ExportedAt string                `json:"exportedAt"`
	Files      []scan.FileInfo       `json:"files"`
	Counts     map[lang.Language]int `json:"counts"`
}

// NewReportExport wraps a scan report with an export timestamp.
func NewReportExport(report *scan.Report) *ReportExport {
	return &ReportExport{
		Root:       report.Root,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Files:      report.Files,
		Counts:     report.Counts,
	}
}

// WriteJSON writes the indented JSON export of report to w.
func WriteJSON(w io.Writer, report *scan.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReportExport(report)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
