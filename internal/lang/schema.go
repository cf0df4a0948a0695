package lang

// --- Enums ---

// Language identifies a programming language by its canonical lowercase token.
type Language string

const (
	LangC          Language = "c"
	LangCpp        Language = "cpp"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangJava       Language = "java"
	LangKotlin     Language = "kotlin"
	LangPython     Language = "python"
	LangLua        Language = "lua"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"

	// LangUnknown is the fallback when neither the filetype hint nor the
	// snippet content resolves to a canonical language.
	LangUnknown Language = "unknown"
)

// CanonicalLanguages lists every language with a full context record, in
// stable order. LangUnknown is deliberately absent.
var CanonicalLanguages = []Language{
	LangC,
	LangCpp,
	LangGo,
	LangRust,
	LangJava,
	LangKotlin,
	LangPython,
	LangLua,
	LangJavaScript,
	LangTypeScript,
}

// Paradigm labels the dominant programming style of a language.
type Paradigm string

const (
	ParadigmProcedural Paradigm = "procedural"
	ParadigmObject     Paradigm = "object-oriented"
	ParadigmMulti      Paradigm = "multi-paradigm"
	ParadigmUnknown    Paradigm = "unknown"
)

// --- Models ---

// LanguageContext holds static descriptive metadata about a language. Records
// are built once at construction and never mutated.
type LanguageContext struct {
	// Headers are representative import/include names seen in idiomatic code.
	Headers []string `json:"headers,omitempty"`

	// Tokens are representative syntax keywords for the language.
	Tokens []string `json:"tokens,omitempty"`

	// MemoryManaged reports whether the language has automatic memory
	// management (GC or reference counting).
	MemoryManaged bool `json:"memoryManaged"`

	// Compiled reports whether the language is ahead-of-time compiled.
	Compiled bool `json:"compiled"`

	// Runtime names the usual execution environment, when one exists
	// (e.g. "CPython", "JVM", "V8").
	Runtime string `json:"runtime,omitempty"`

	Paradigm Paradigm `json:"paradigm"`

	// Extensions are conventional file extensions, dot included.
	Extensions []string `json:"extensions,omitempty"`
}

// AnalysisHints collects advisory text for a language+snippet pair. A fresh
// record is built per call and never persisted.
type AnalysisHints struct {
	FocusAreas    []string `json:"focusAreas"`
	CommonIssues  []string `json:"commonIssues"`
	BestPractices []string `json:"bestPractices"`
}
