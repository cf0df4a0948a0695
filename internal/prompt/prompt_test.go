package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/langsense/internal/lang"
)

func TestBuild_PythonPrompt(t *testing.T) {
	b := NewBuilder(lang.New())

	snippet := "import os\n\ndef main():\n    print(os.getcwd())\n"
	out := b.Build("", snippet)

	// System prompt leads.
	assert.True(t, strings.HasPrefix(out, "You are a code analysis assistant."))

	// Language summary from the context record.
	assert.Contains(t, out, "**python**")
	assert.Contains(t, out, "interpreted")
	assert.Contains(t, out, "runtime: CPython")

	// Dedicated example template, not the default.
	assert.Contains(t, out, "Mutable default arguments")

	// Hints and the fenced snippet.
	assert.Contains(t, out, "## Focus Areas")
	assert.Contains(t, out, "- collection iteration semantics")
	assert.Contains(t, out, "```python\n"+snippet+"```")
}

func TestBuild_FiletypeHintWins(t *testing.T) {
	b := NewBuilder(lang.New())

	out := b.Build("kt", "#include <stdio.h>")
	assert.Contains(t, out, "**kotlin**")
	assert.NotContains(t, out, "**c**")
}

func TestBuild_UnknownLanguage(t *testing.T) {
	b := NewBuilder(lang.New())

	out := b.Build("", "just some prose")

	assert.Contains(t, out, "Language could not be determined")
	// Default template, unlabeled fence.
	assert.Contains(t, out, "Example analysis format:")
	assert.Contains(t, out, "```\njust some prose\n```")
}

func TestBuildFor_TemplateOverride(t *testing.T) {
	override := "Custom format: answer in haiku."
	b := NewBuilder(lang.New(), WithTemplateOverride(override))

	out := b.BuildFor(lang.LangGo, "package main\n")

	require.Contains(t, out, override)
	assert.NotContains(t, out, "Example analysis format (Go):")
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder(lang.New())

	snippet := "async function f() { await g(); }"
	assert.Equal(t, b.Build("js", snippet), b.Build("js", snippet))
}
