package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/prompt"
)

// runClassify reads the snippet from -file or stdin, resolves the language,
// and prints either the assembled analysis prompt or a human summary.
func runClassify(flags cliFlags, classifier *lang.Classifier, builder *prompt.Builder) error {
	snippet, err := readSnippet(flags.File)
	if err != nil {
		return err
	}

	l := classifier.Classify(flags.Filetype, snippet)

	if flags.Prompt {
		fmt.Print(builder.BuildFor(l, snippet))
		return nil
	}

	printSummary(classifier, l, snippet)
	return nil
}

// readSnippet returns the contents of path, or everything on stdin when path
// is empty.
func readSnippet(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return string(data), nil
}

func printSummary(classifier *lang.Classifier, l lang.Language, snippet string) {
	fmt.Printf("Language: %s\n", l)

	if classifier.Known(l) {
		ctx := classifier.Context(l)
		execution := "interpreted"
		if ctx.Compiled {
			execution = "compiled"
		}
		fmt.Printf("Paradigm: %s (%s)\n", ctx.Paradigm, execution)
		if ctx.Runtime != "" {
			fmt.Printf("Runtime:  %s\n", ctx.Runtime)
		}
		fmt.Printf("Tokens:   %s\n", strings.Join(ctx.Tokens, ", "))
	}

	hints := classifier.Hints(l, snippet)
	printHintList("Focus areas", hints.FocusAreas)
	printHintList("Common issues", hints.CommonIssues)
	printHintList("Best practices", hints.BestPractices)
}

func printHintList(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", heading)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
