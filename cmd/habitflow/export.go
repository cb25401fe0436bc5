package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

var (
	exportStart  string
	exportEnd    string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a progress report to disk",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportStart, "start", "", "range start (YYYY-MM-DD), defaults to 29 days before end")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "range end (YYYY-MM-DD), defaults to today")
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "report format: pdf or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory, defaults to EXPORT_DIR")
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	end := time.Now()
	if exportEnd != "" {
		end, err = domain.ParseDateKey(exportEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
	}

	start := end.AddDate(0, 0, -29)
	if exportStart != "" {
		start, err = domain.ParseDateKey(exportStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return err
	}

	var filename string
	var data []byte
	switch exportFormat {
	case "pdf":
		filename, data, err = a.reports.Export(cmd.Context(), rng)
	case "csv":
		filename, data, err = a.reports.ExportCSV(cmd.Context(), rng)
	default:
		return fmt.Errorf("unknown format %q, expected pdf or csv", exportFormat)
	}
	if err != nil {
		return err
	}

	dir := exportOut
	if dir == "" {
		dir = a.cfg.Export.Directory
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	log.Printf("Report written to %s", path)
	return nil
}
