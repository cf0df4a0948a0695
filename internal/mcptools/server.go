package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewLangMCPServer creates an MCP server with all 5 language tools registered.
func NewLangMCPServer(svc *LangService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "langsense",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_language",
		Description: "Resolve a programming language from an editor filetype hint or a raw code snippet. The filetype hint takes precedence; content detection is a first-match-wins heuristic scan.",
	}, svc.DetectLanguage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "language_context",
		Description: "Return static metadata for a language: representative headers and tokens, memory model, compiled/interpreted, runtime, paradigm, and file extensions.",
	}, svc.GetLanguageContext)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_hints",
		Description: "Generate advisory focus areas, common issues, and best practices for a language and snippet. Snippet triggers are additive on top of language-family baselines.",
	}, svc.GenerateHints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_prompt",
		Description: "Assemble a complete AI analysis prompt for a snippet: system prompt, example format template, language context summary, hints, and the fenced code.",
	}, svc.BuildPrompt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_repository",
		Description: "Walk a repository and classify every file by language. Skips noise directories, honors exclude globs, and returns per-file entries plus aggregate counts.",
	}, svc.ScanRepository)

	return server
}

// RunMCPServer starts an HTTP server exposing the language MCP tools.
func RunMCPServer(ctx context.Context, svc *LangService, addr string) error {
	server := NewLangMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, svc *LangService) error {
	return NewLangMCPServer(svc).Run(ctx, &mcp.StdioTransport{})
}
