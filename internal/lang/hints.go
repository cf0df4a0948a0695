package lang

import "strings"

// trigger adds hint entries when its substring appears in the lowercased
// snippet. Triggers are independent and additive; several may fire for the
// same snippet.
type trigger struct {
	substr    string
	focus     []string
	issues    []string
	practices []string
}

// defaultBaselines returns the language-family baseline focus areas. A
// language may belong to more than one family (Python sits in both the
// collection-iteration and exception families).
func defaultBaselines() map[Language][]string {
	memory := []string{"memory allocation and ownership", "pointer and buffer safety"}
	async := []string{"asynchronous control flow", "event loop behavior"}
	iteration := []string{"collection iteration semantics"}
	exceptions := []string{"exception handling and error propagation"}

	return map[Language][]string{
		LangC:          memory,
		LangCpp:        memory,
		LangRust:       memory,
		LangJavaScript: append(append([]string{}, async...), exceptions...),
		LangTypeScript: append(append([]string{}, async...), exceptions...),
		LangPython:     append(append([]string{}, iteration...), exceptions...),
		LangLua:        iteration,
		LangJava:       exceptions,
		LangKotlin:     exceptions,
		LangGo:         {"error handling and propagation", "goroutine and channel usage"},
	}
}

// defaultTriggers returns the snippet triggers in evaluation order. Hint
// entries appear in this order in the generated record.
func defaultTriggers() []trigger {
	return []trigger{
		{
			substr:    "malloc",
			focus:     []string{"heap allocation lifetime"},
			issues:    []string{"allocation without a matching free"},
			practices: []string{"check allocation results before use"},
		},
		{
			substr:    "free(",
			issues:    []string{"double free or use-after-free"},
			practices: []string{"null pointers after freeing them"},
		},
		{
			substr: "->",
			focus:  []string{"pointer dereference chains"},
			issues: []string{"null pointer dereference"},
		},
		{
			substr:    "strcpy",
			issues:    []string{"unbounded string copy"},
			practices: []string{"prefer strncpy or snprintf with explicit sizes"},
		},
		{
			substr:    "sprintf",
			issues:    []string{"buffer overflow in formatted output"},
			practices: []string{"use snprintf with the destination size"},
		},
		{
			substr: "async",
			focus:  []string{"async/await pattern usage"},
		},
		{
			substr: "await",
			focus:  []string{"async/await pattern usage"},
			issues: []string{"missing await on promise-returning calls"},
		},
		{
			substr:    ".then(",
			focus:     []string{"promise chaining"},
			practices: []string{"prefer async/await over deep then-chains"},
		},
		{
			substr: "pairs(",
			focus:  []string{"table iteration order"},
			issues: []string{"reliance on pairs traversal order"},
		},
		{
			substr: "ipairs(",
			focus:  []string{"array-part iteration"},
			issues: []string{"ipairs stopping at the first nil"},
		},
		{
			substr: "setmetatable",
			focus:  []string{"metatable behavior"},
			issues: []string{"__index chains shadowing plain fields"},
		},
		{
			substr: "yield",
			focus:  []string{"generator and coroutine flow"},
			issues: []string{"exhausted generators being iterated again"},
		},
		{
			substr:    "with ",
			focus:     []string{"resource scoping"},
			practices: []string{"keep with-blocks narrow so resources release promptly"},
		},
		{
			substr: "go func",
			focus:  []string{"goroutine lifecycle"},
			issues: []string{"goroutine leaks on early return"},
		},
		{
			substr:    "defer ",
			practices: []string{"place defer next to the acquisition it releases"},
		},
	}
}

// Hints builds an AnalysisHints record for a language and snippet. It starts
// from the language-family baseline focus areas, applies every matching
// snippet trigger in order, and finishes with the two generic context-flag
// hints. Entries are de-duplicated; calling Hints twice with the same inputs
// yields an identical record.
func (c *Classifier) Hints(lang Language, snippet string) AnalysisHints {
	hints := AnalysisHints{
		FocusAreas:    []string{},
		CommonIssues:  []string{},
		BestPractices: []string{},
	}

	for _, f := range c.baselines[lang] {
		hints.FocusAreas = appendUnique(hints.FocusAreas, f)
	}

	lowered := strings.ToLower(snippet)
	for _, t := range c.triggers {
		if !strings.Contains(lowered, t.substr) {
			continue
		}
		for _, f := range t.focus {
			hints.FocusAreas = appendUnique(hints.FocusAreas, f)
		}
		for _, i := range t.issues {
			hints.CommonIssues = appendUnique(hints.CommonIssues, i)
		}
		for _, p := range t.practices {
			hints.BestPractices = appendUnique(hints.BestPractices, p)
		}
	}

	// Context-flag hints only apply to languages with a real context record;
	// the default record's unset flags carry no evidence either way.
	if ctx, ok := c.contexts[lang]; ok {
		if !ctx.MemoryManaged {
			hints.FocusAreas = appendUnique(hints.FocusAreas, "manual memory management")
		}
		if ctx.Compiled {
			hints.FocusAreas = appendUnique(hints.FocusAreas, "compile-time checks")
		}
	}

	return hints
}

// appendUnique appends s to list unless it is already present.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
