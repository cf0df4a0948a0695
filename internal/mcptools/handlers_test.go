package mcptools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/prompt"
)

// newTestService wires a LangService with the default classifier.
func newTestService() *LangService {
	classifier := lang.New()
	return NewLangService(classifier, prompt.NewBuilder(classifier), zap.NewNop())
}

// ---------------------------------------------------------------------------
// detect_language
// ---------------------------------------------------------------------------

func TestDetectLanguage(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Filetype hint wins.
	_, out, err := svc.DetectLanguage(ctx, nil, DetectLanguageInput{Filetype: "py", Snippet: "#include <stdio.h>"})
	require.NoError(t, err)
	assert.Equal(t, lang.LangPython, out.Language)
	assert.True(t, out.Known)

	// Content fallback.
	_, out, err = svc.DetectLanguage(ctx, nil, DetectLanguageInput{Snippet: "#include <stdio.h>\nint main(void) {}"})
	require.NoError(t, err)
	assert.Equal(t, lang.LangC, out.Language)

	// Empty input degrades to unknown, never errors.
	_, out, err = svc.DetectLanguage(ctx, nil, DetectLanguageInput{})
	require.NoError(t, err)
	assert.Equal(t, lang.LangUnknown, out.Language)
	assert.False(t, out.Known)
}

// ---------------------------------------------------------------------------
// language_context / analysis_hints
// ---------------------------------------------------------------------------

func TestGetLanguageContext(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, out, err := svc.GetLanguageContext(ctx, nil, LanguageContextInput{Language: "CPP"})
	require.NoError(t, err)
	assert.Equal(t, lang.LangCpp, out.Language)
	assert.NotEmpty(t, out.Context.Tokens)
	assert.True(t, out.Context.Compiled)

	// Unrecognized ids get the default record, not an error.
	_, out, err = svc.GetLanguageContext(ctx, nil, LanguageContextInput{Language: "cobol"})
	require.NoError(t, err)
	assert.Equal(t, lang.ParadigmUnknown, out.Context.Paradigm)

	// Missing language is the only rejected input.
	_, _, err = svc.GetLanguageContext(ctx, nil, LanguageContextInput{})
	assert.Error(t, err)
}

func TestGenerateHints(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, out, err := svc.GenerateHints(ctx, nil, AnalysisHintsInput{
		Language: "javascript",
		Snippet:  "async function f() { await g(); }",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Hints.FocusAreas, "async/await pattern usage")

	_, _, err = svc.GenerateHints(ctx, nil, AnalysisHintsInput{Snippet: "x"})
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// build_prompt
// ---------------------------------------------------------------------------

func TestBuildPrompt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, out, err := svc.BuildPrompt(ctx, nil, BuildPromptInput{
		Filetype: "py",
		Snippet:  "def f():\n    pass\n",
	})
	require.NoError(t, err)
	assert.Equal(t, lang.LangPython, out.Language)
	assert.Contains(t, out.Prompt, "```python")
	assert.Contains(t, out.Prompt, "## Focus Areas")

	_, _, err = svc.BuildPrompt(ctx, nil, BuildPromptInput{})
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// scan_repository
// ---------------------------------------------------------------------------

func TestScanRepository(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("def f():\n    pass\n"), 0o644))

	_, out, err := svc.ScanRepository(ctx, nil, ScanRepositoryInput{RepoPath: dir})
	require.NoError(t, err)
	require.NotNil(t, out.Report)
	assert.Len(t, out.Report.Files, 2)
	assert.Equal(t, 1, out.Report.Counts[lang.LangGo])

	// Language filter narrows the report.
	_, out, err = svc.ScanRepository(ctx, nil, ScanRepositoryInput{RepoPath: dir, Languages: []string{"py"}})
	require.NoError(t, err)
	assert.Len(t, out.Report.Files, 1)

	_, _, err = svc.ScanRepository(ctx, nil, ScanRepositoryInput{})
	assert.Error(t, err)

	_, _, err = svc.ScanRepository(ctx, nil, ScanRepositoryInput{RepoPath: filepath.Join(dir, "missing")})
	assert.Error(t, err)
}
