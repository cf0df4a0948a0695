package mcptools

import (
	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/scan"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// DetectLanguageInput is the input for the detect_language MCP tool.
type DetectLanguageInput struct {
	Filetype string `json:"filetype,omitempty" jsonschema:"editor-reported filetype hint (e.g. py, js, cpp); takes precedence over content detection"`
	Snippet  string `json:"snippet,omitempty" jsonschema:"raw code snippet used for content-based detection when no filetype is given"`
}

// DetectLanguageOutput is the result of the detect_language MCP tool.
type DetectLanguageOutput struct {
	Language lang.Language `json:"language"`
	Known    bool          `json:"known"`
}

// LanguageContextInput is the input for the language_context MCP tool.
type LanguageContextInput struct {
	Language string `json:"language" jsonschema:"canonical language id (e.g. python, cpp, go)"`
}

// LanguageContextOutput is the result of the language_context MCP tool.
type LanguageContextOutput struct {
	Language lang.Language        `json:"language"`
	Context  lang.LanguageContext `json:"context"`
}

// AnalysisHintsInput is the input for the analysis_hints MCP tool.
type AnalysisHintsInput struct {
	Language string `json:"language" jsonschema:"canonical language id the hints are generated for"`
	Snippet  string `json:"snippet,omitempty" jsonschema:"code snippet scanned for hint triggers"`
}

// AnalysisHintsOutput is the result of the analysis_hints MCP tool.
type AnalysisHintsOutput struct {
	Language lang.Language      `json:"language"`
	Hints    lang.AnalysisHints `json:"hints"`
}

// BuildPromptInput is the input for the build_prompt MCP tool.
type BuildPromptInput struct {
	Filetype string `json:"filetype,omitempty" jsonschema:"editor-reported filetype hint"`
	Snippet  string `json:"snippet" jsonschema:"code snippet to assemble the analysis prompt for"`
}

// BuildPromptOutput is the result of the build_prompt MCP tool.
type BuildPromptOutput struct {
	Language lang.Language `json:"language"`
	Prompt   string        `json:"prompt"`
}

// ScanRepositoryInput is the input for the scan_repository MCP tool.
type ScanRepositoryInput struct {
	RepoPath     string   `json:"repoPath" jsonschema:"absolute path to the repository to scan"`
	ExcludeGlobs []string `json:"excludeGlobs,omitempty" jsonschema:"doublestar patterns for paths to skip (e.g. vendor/**, **/*.md)"`
	Languages    []string `json:"languages,omitempty" jsonschema:"restrict results to these canonical language ids"`
}

// ScanRepositoryOutput is the result of the scan_repository MCP tool.
type ScanRepositoryOutput struct {
	Report *scan.Report `json:"report"`
}
