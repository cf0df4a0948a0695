package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dusk-indust/langsense/internal/config"
	"github.com/dusk-indust/langsense/internal/lang"
	"github.com/dusk-indust/langsense/internal/mcptools"
	"github.com/dusk-indust/langsense/internal/prompt"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Filetype string
	File     string
	Scan     string
	JSON     bool
	Markdown bool
	Prompt   bool
	ServeMCP bool
	Stdio    bool
	Addr     string
	Version  bool
	Verbose  bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("langsense", flag.ContinueOnError)
	fs.StringVar(&flags.Filetype, "filetype", "", "editor filetype hint (e.g. py, js, cpp)")
	fs.StringVar(&flags.File, "file", "", "file to classify; stdin is read when omitted")
	fs.StringVar(&flags.Scan, "scan", "", "scan a repository root instead of classifying a snippet")
	fs.BoolVar(&flags.JSON, "json", false, "emit scan results as JSON")
	fs.BoolVar(&flags.Markdown, "markdown", false, "emit scan results as markdown")
	fs.BoolVar(&flags.Prompt, "prompt", false, "print the assembled analysis prompt instead of the summary")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server exposing the language tools")
	fs.BoolVar(&flags.Stdio, "stdio", false, "use stdio transport for the MCP server instead of HTTP")
	fs.StringVar(&flags.Addr, "addr", "localhost:8335", "listen address for the MCP HTTP server")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(flags.Verbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	classifier := lang.New()
	builder, err := newBuilder(classifier, cfg)
	if err != nil {
		return err
	}

	switch {
	case flags.ServeMCP:
		return serveMCP(flags, classifier, builder, log)
	case flags.Scan != "":
		return runScan(flags, cfg, classifier, log)
	default:
		return runClassify(flags, classifier, builder)
	}
}

// newLogger builds the CLI logger: human-readable output on stderr when
// verbose, silent otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// newBuilder wires the prompt builder, applying the config template override
// when one is set.
func newBuilder(classifier *lang.Classifier, cfg *config.ProjectConfig) (*prompt.Builder, error) {
	if cfg.TemplatePath == "" {
		return prompt.NewBuilder(classifier), nil
	}
	tpl, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("read template %q: %w", cfg.TemplatePath, err)
	}
	return prompt.NewBuilder(classifier, prompt.WithTemplateOverride(string(tpl))), nil
}

// serveMCP runs the MCP server until interrupted.
func serveMCP(flags cliFlags, classifier *lang.Classifier, builder *prompt.Builder, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := mcptools.NewLangService(classifier, builder, log)

	if flags.Stdio {
		return mcptools.RunMCPServerStdio(ctx, svc)
	}

	log.Info("serving MCP over HTTP", zap.String("addr", flags.Addr))
	return mcptools.RunMCPServer(ctx, svc, flags.Addr)
}
