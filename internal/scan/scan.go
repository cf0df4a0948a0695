// Package scan walks a project tree and classifies every source file using
// the heuristic language classifier. Classification itself is pure; all
// concurrency lives here.
package scan

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/langsense/internal/lang"
)

// skipDirs is the set of directory names to skip when walking a project tree.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"target":       true,
}

// sniffLimit bounds how much of a file is read for content-based detection
// and the binary check.
const sniffLimit = 8 * 1024

// FileInfo describes one classified file.
type FileInfo struct {
	// Path is relative to the scan root, slash-separated.
	Path     string        `json:"path"`
	Language lang.Language `json:"language"`
	Size     int64         `json:"size"`
	Lines    int           `json:"lines"`
}

// Report is the immutable result of a scan.
type Report struct {
	Root   string                `json:"root"`
	Files  []FileInfo            `json:"files"`
	Counts map[lang.Language]int `json:"counts"`
}

// Scanner classifies the files of a project tree.
type Scanner struct {
	classifier *lang.Classifier
	extIndex   map[string]lang.Language
	excludes   []string
	allowed    map[lang.Language]bool // nil means every language
	workers    int
	log        *zap.Logger
}

// Option configures a Scanner during construction.
type Option func(*Scanner)

// WithExcludeGlobs adds doublestar patterns for relative paths to skip.
func WithExcludeGlobs(globs []string) Option {
	return func(s *Scanner) {
		s.excludes = append(s.excludes, globs...)
	}
}

// WithLanguages restricts the report to the given languages.
func WithLanguages(langs []lang.Language) Option {
	return func(s *Scanner) {
		s.allowed = make(map[lang.Language]bool, len(langs))
		for _, l := range langs {
			s.allowed[l] = true
		}
	}
}

// WithWorkers bounds the classification fan-out.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger sets the scan logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scanner) {
		if log != nil {
			s.log = log
		}
	}
}

// NewScanner creates a Scanner backed by the given classifier. The extension
// index is derived from the classifier's context table so the two can never
// disagree.
func NewScanner(classifier *lang.Classifier, opts ...Option) *Scanner {
	s := &Scanner{
		classifier: classifier,
		extIndex:   make(map[string]lang.Language),
		workers:    runtime.NumCPU(),
		log:        zap.NewNop(),
	}

	for _, l := range lang.CanonicalLanguages {
		for _, ext := range classifier.Context(l).Extensions {
			s.extIndex[ext] = l
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root and returns a classified Report. Files that cannot be read
// are logged and skipped rather than failing the whole scan; the returned
// error covers only an inaccessible root or a cancelled context.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan: cannot access root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan: root %q is not a directory", root)
	}

	paths, err := s.collect(root)
	if err != nil {
		return nil, fmt.Errorf("scan: walk %q: %w", root, err)
	}

	// Fan out classification; results land in their slot so the report
	// keeps walk order without locking.
	results := make([]*FileInfo, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, rel := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fi, err := s.classifyFile(root, rel)
			if err != nil {
				s.log.Warn("skipping unreadable file", zap.String("path", rel), zap.Error(err))
				return nil
			}
			results[i] = fi
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	report := &Report{
		Root:   root,
		Counts: make(map[lang.Language]int),
	}
	for _, fi := range results {
		if fi == nil {
			continue
		}
		if s.allowed != nil && !s.allowed[fi.Language] {
			continue
		}
		report.Files = append(report.Files, *fi)
		report.Counts[fi.Language]++
	}

	s.log.Info("scan complete",
		zap.String("root", root),
		zap.Int("files", len(report.Files)),
		zap.Int("languages", len(report.Counts)))

	return report, nil
}

// collect walks root and returns the slash-separated relative paths of every
// regular file that survives directory skipping and exclude globs.
func (s *Scanner) collect(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries we cannot read
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if s.excluded(rel) {
			s.log.Debug("excluded by glob", zap.String("path", rel))
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// excluded reports whether rel matches any configured exclude glob. Malformed
// patterns never match.
func (s *Scanner) excluded(rel string) bool {
	for _, glob := range s.excludes {
		if ok, err := doublestar.Match(glob, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// classifyFile classifies one file by extension, falling back to content
// detection for extensionless or unrecognized files. Binary files classify
// as unknown without content sniffing.
func (s *Scanner) classifyFile(root, rel string) (*FileInfo, error) {
	abs := filepath.Join(root, filepath.FromSlash(rel))

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	fi := &FileInfo{
		Path:  rel,
		Size:  int64(len(data)),
		Lines: countLines(data),
	}

	ext := strings.ToLower(filepath.Ext(rel))
	if l, ok := s.extIndex[ext]; ok {
		fi.Language = l
		return fi, nil
	}

	sniff := data
	if len(sniff) > sniffLimit {
		sniff = sniff[:sniffLimit]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		fi.Language = lang.LangUnknown
		return fi, nil
	}

	fi.Language = s.classifier.Detect(string(sniff))
	return fi, nil
}

// countLines counts the number of lines by counting newline bytes and adding
// one for the final line if the data is non-empty.
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	return bytes.Count(data, []byte{'\n'}) + 1
}
