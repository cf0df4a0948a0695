package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/prompt"
	"github.com/dusk-indust/langsense/internal/scan"
)

// LangService holds the classifier and prompt builder used by MCP tool
// handlers. All handlers are stateless and safe for concurrent calls.
type LangService struct {
	classifier *lang.Classifier
	builder    *prompt.Builder
	log        *zap.Logger
}

// NewLangService creates a LangService with the given classifier and builder.
func NewLangService(classifier *lang.Classifier, builder *prompt.Builder, log *zap.Logger) *LangService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LangService{
		classifier: classifier,
		builder:    builder,
		log:        log,
	}
}

// DetectLanguage resolves a language from a filetype hint and/or snippet.
// Unresolvable input yields "unknown" rather than an error.
func (s *LangService) DetectLanguage(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DetectLanguageInput,
) (*mcp.CallToolResult, DetectLanguageOutput, error) {
	l := s.classifier.Classify(input.Filetype, input.Snippet)
	s.log.Debug("detect_language", zap.String("filetype", input.Filetype), zap.String("language", string(l)))

	return nil, DetectLanguageOutput{
		Language: l,
		Known:    s.classifier.Known(l),
	}, nil
}

// GetLanguageContext returns the metadata record for a language. Unknown
// languages receive the default record, never an error.
func (s *LangService) GetLanguageContext(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LanguageContextInput,
) (*mcp.CallToolResult, LanguageContextOutput, error) {
	if input.Language == "" {
		return nil, LanguageContextOutput{}, fmt.Errorf("language is required")
	}

	l := s.classifier.Normalize(input.Language)
	return nil, LanguageContextOutput{
		Language: l,
		Context:  s.classifier.Context(l),
	}, nil
}

// GenerateHints builds analysis hints for a language+snippet pair.
func (s *LangService) GenerateHints(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnalysisHintsInput,
) (*mcp.CallToolResult, AnalysisHintsOutput, error) {
	if input.Language == "" {
		return nil, AnalysisHintsOutput{}, fmt.Errorf("language is required")
	}

	l := s.classifier.Normalize(input.Language)
	return nil, AnalysisHintsOutput{
		Language: l,
		Hints:    s.classifier.Hints(l, input.Snippet),
	}, nil
}

// BuildPrompt assembles the full analysis prompt for a snippet.
func (s *LangService) BuildPrompt(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BuildPromptInput,
) (*mcp.CallToolResult, BuildPromptOutput, error) {
	if input.Snippet == "" {
		return nil, BuildPromptOutput{}, fmt.Errorf("snippet is required")
	}

	l := s.classifier.Classify(input.Filetype, input.Snippet)
	return nil, BuildPromptOutput{
		Language: l,
		Prompt:   s.builder.BuildFor(l, input.Snippet),
	}, nil
}

// ScanRepository walks a repository and classifies every file.
func (s *LangService) ScanRepository(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanRepositoryInput,
) (*mcp.CallToolResult, ScanRepositoryOutput, error) {
	if input.RepoPath == "" {
		return nil, ScanRepositoryOutput{}, fmt.Errorf("repoPath is required")
	}

	opts := []scan.Option{
		scan.WithLogger(s.log),
		scan.WithExcludeGlobs(input.ExcludeGlobs),
	}
	if len(input.Languages) > 0 {
		langs := make([]lang.Language, 0, len(input.Languages))
		for _, raw := range input.Languages {
			langs = append(langs, s.classifier.Normalize(raw))
		}
		opts = append(opts, scan.WithLanguages(langs))
	}

	scanner := scan.NewScanner(s.classifier, opts...)
	report, err := scanner.Scan(ctx, input.RepoPath)
	if err != nil {
		return nil, ScanRepositoryOutput{}, fmt.Errorf("scan repository: %w", err)
	}

	return nil, ScanRepositoryOutput{Report: report}, nil
}
