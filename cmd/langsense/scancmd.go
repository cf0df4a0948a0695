package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/dusk-indust/langsense/internal/config"
	"github.com/dusk-indust/langsense/internal/export"
	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/scan"
)

// runScan walks the repository at flags.Scan and prints the report in the
// requested format.
func runScan(flags cliFlags, cfg *config.ProjectConfig, classifier *lang.Classifier, log *zap.Logger) error {
	opts := []scan.Option{
		scan.WithLogger(log),
		scan.WithExcludeGlobs(cfg.ExcludeGlobs),
	}
	if len(cfg.Languages) > 0 {
		langs := make([]lang.Language, 0, len(cfg.Languages))
		for _, raw := range cfg.Languages {
			langs = append(langs, classifier.Normalize(raw))
		}
		opts = append(opts, scan.WithLanguages(langs))
	}

	scanner := scan.NewScanner(classifier, opts...)
	report, err := scanner.Scan(context.Background(), flags.Scan)
	if err != nil {
		return err
	}

	switch {
	case flags.JSON:
		return export.WriteJSON(os.Stdout, report)
	case flags.Markdown:
		fmt.Print(export.GenerateMarkdown(report))
		return nil
	default:
		printScanSummary(report)
		return nil
	}
}

func printScanSummary(report *scan.Report) {
	fmt.Printf("Scanned %s: %d files\n\n", report.Root, len(report.Files))

	langs := make([]lang.Language, 0, len(report.Counts))
	for l := range report.Counts {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool {
		if report.Counts[langs[i]] != report.Counts[langs[j]] {
			return report.Counts[langs[i]] > report.Counts[langs[j]]
		}
		return langs[i] < langs[j]
	})

	for _, l := range langs {
		fmt.Printf("  %-12s %d\n", l, report.Counts[l])
	}
}
