package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/scan"
)

// GenerateMarkdown renders a scan report as a markdown summary: a per-language
// count table followed by the file listing. Languages sort by descending file
// count, then name, so the dominant language leads.
func GenerateMarkdown(report *scan.Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Language Scan: %s\n\n", report.Root))

	sb.WriteString("## Files by Language\n\n")
	if len(report.Counts) == 0 {
		sb.WriteString("_No files classified._\n")
	} else {
		type langCount struct {
			lang  lang.Language
			count int
		}
		lcs := make([]langCount, 0, len(report.Counts))
		for l, n := range report.Counts {
			lcs = append(lcs, langCount{l, n})
		}
		sort.Slice(lcs, func(i, j int) bool {
			if lcs[i].count != lcs[j].count {
				return lcs[i].count > lcs[j].count
			}
			return lcs[i].lang < lcs[j].lang
		})

		sb.WriteString("| Language | Files |\n")
		sb.WriteString("|---|---|\n")
		for _, lc := range lcs {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", lc.lang, lc.count))
		}
	}

	sb.WriteString("\n## Files\n\n")
	if len(report.Files) == 0 {
		sb.WriteString("_No files found._\n")
	} else {
		sb.WriteString("| Path | Language | Lines |\n")
		sb.WriteString("|---|---|---|\n")
		for _, f := range report.Files {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %d |\n", f.Path, f.Language, f.Lines))
		}
	}

	return sb.String()
}
