// Package prompt assembles analysis prompts for an external AI endpoint from
// classifier output: example template, language context, generated hints, and
// the fenced snippet. It builds strings only; sending them is the caller's
// concern.
package prompt

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/langsense/internal/lang"
)

// systemPrompt frames every analysis request.
const systemPrompt = `You are a code analysis assistant. Analyze the code below and report concrete, actionable findings. Follow the example format exactly. Do not invent issues the code does not contain.`

// Builder assembles analysis prompts. It is stateless apart from the
// classifier and an optional template override, so it is safe for concurrent
// use.
type Builder struct {
	classifier *lang.Classifier
	override   string // replaces the per-language example template when set
}

// Option configures a Builder during construction.
type Option func(*Builder)

// WithTemplateOverride replaces the built-in example templates with tpl for
// every language. Empty tpl is ignored.
func WithTemplateOverride(tpl string) Option {
	return func(b *Builder) {
		b.override = tpl
	}
}

// NewBuilder creates a Builder backed by the given classifier.
func NewBuilder(classifier *lang.Classifier, opts ...Option) *Builder {
	b := &Builder{classifier: classifier}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves the snippet's language from the filetype hint or content and
// assembles the full analysis prompt.
func (b *Builder) Build(filetype, snippet string) string {
	l := b.classifier.Classify(filetype, snippet)
	return b.BuildFor(l, snippet)
}

// BuildFor assembles the analysis prompt for an already-resolved language.
func (b *Builder) BuildFor(l lang.Language, snippet string) string {
	ctx := b.classifier.Context(l)
	hints := b.classifier.Hints(l, snippet)

	tpl := b.override
	if tpl == "" {
		tpl = b.classifier.Template(l)
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n## Language\n\n")
	sb.WriteString(describe(l, ctx))
	sb.WriteString("\n\n## Example Format\n\n")
	sb.WriteString(tpl)

	writeList(&sb, "Focus Areas", hints.FocusAreas)
	writeList(&sb, "Common Issues", hints.CommonIssues)
	writeList(&sb, "Best Practices", hints.BestPractices)

	sb.WriteString("\n\n## Code\n\n")
	sb.WriteString("```")
	if l != lang.LangUnknown {
		sb.WriteString(string(l))
	}
	sb.WriteString("\n")
	sb.WriteString(snippet)
	if !strings.HasSuffix(snippet, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")

	return sb.String()
}

// describe renders a one-line language summary from its context record.
func describe(l lang.Language, ctx lang.LanguageContext) string {
	if l == lang.LangUnknown {
		return "Language could not be determined; analyze on general principles."
	}

	execution := "interpreted"
	if ctx.Compiled {
		execution = "compiled"
	}
	memory := "manual memory management"
	if ctx.MemoryManaged {
		memory = "automatic memory management"
	}

	desc := fmt.Sprintf("**%s** — %s, %s, %s", l, ctx.Paradigm, execution, memory)
	if ctx.Runtime != "" {
		desc += fmt.Sprintf(" (runtime: %s)", ctx.Runtime)
	}
	return desc
}

// writeList appends a markdown section for a non-empty hint list.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n\n## %s\n\n", heading))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
}
