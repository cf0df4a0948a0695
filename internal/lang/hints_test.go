package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countOf returns how many times s appears in list.
func countOf(list []string, s string) int {
	n := 0
	for _, e := range list {
		if e == s {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Baselines and triggers
// ---------------------------------------------------------------------------

func TestHints_AsyncTriggerAddsToBaseline(t *testing.T) {
	c := New()

	snippet := "async function load() {\n  const data = await fetch(url);\n}"
	hints := c.Hints(LangJavaScript, snippet)

	// Family baseline survives.
	assert.Contains(t, hints.FocusAreas, "asynchronous control flow")

	// Trigger appends on top of it.
	assert.Contains(t, hints.FocusAreas, "async/await pattern usage")
	assert.Contains(t, hints.CommonIssues, "missing await on promise-returning calls")
}

func TestHints_CMemoryTriggers(t *testing.T) {
	c := New()

	snippet := "char *p = malloc(16);\nstrcpy(p, src);\nfree(p);"
	hints := c.Hints(LangC, snippet)

	assert.Contains(t, hints.FocusAreas, "heap allocation lifetime")
	assert.Contains(t, hints.CommonIssues, "allocation without a matching free")
	assert.Contains(t, hints.CommonIssues, "double free or use-after-free")
	assert.Contains(t, hints.CommonIssues, "unbounded string copy")
	assert.Contains(t, hints.BestPractices, "prefer strncpy or snprintf with explicit sizes")

	// Context-flag hints: C is neither memory-managed nor interpreted.
	assert.Contains(t, hints.FocusAreas, "manual memory management")
	assert.Contains(t, hints.FocusAreas, "compile-time checks")
}

func TestHints_LuaTriggers(t *testing.T) {
	c := New()

	snippet := "local mt = setmetatable({}, base)\nfor k in pairs(mt) do end"
	hints := c.Hints(LangLua, snippet)

	assert.Contains(t, hints.FocusAreas, "collection iteration semantics")
	assert.Contains(t, hints.FocusAreas, "table iteration order")
	assert.Contains(t, hints.FocusAreas, "metatable behavior")
	assert.Contains(t, hints.CommonIssues, "__index chains shadowing plain fields")

	// Lua is memory-managed and interpreted: neither generic flag hint fires.
	assert.NotContains(t, hints.FocusAreas, "manual memory management")
	assert.NotContains(t, hints.FocusAreas, "compile-time checks")
}

func TestHints_PythonResourceScope(t *testing.T) {
	c := New()

	snippet := "with open(path) as f:\n    for line in f:\n        yield line"
	hints := c.Hints(LangPython, snippet)

	assert.Contains(t, hints.FocusAreas, "resource scoping")
	assert.Contains(t, hints.FocusAreas, "generator and coroutine flow")
	assert.Contains(t, hints.FocusAreas, "exception handling and error propagation")
}

func TestHints_GoTriggers(t *testing.T) {
	c := New()

	snippet := "go func() {\n\tdefer wg.Done()\n\twork()\n}()"
	hints := c.Hints(LangGo, snippet)

	assert.Contains(t, hints.FocusAreas, "goroutine lifecycle")
	assert.Contains(t, hints.CommonIssues, "goroutine leaks on early return")
	assert.Contains(t, hints.BestPractices, "place defer next to the acquisition it releases")
	assert.Contains(t, hints.FocusAreas, "compile-time checks")
}

// ---------------------------------------------------------------------------
// Contracts
// ---------------------------------------------------------------------------

func TestHints_Deterministic(t *testing.T) {
	c := New()

	snippet := "async function f() { await g(); }"
	first := c.Hints(LangTypeScript, snippet)
	second := c.Hints(LangTypeScript, snippet)

	require.Equal(t, first, second)
}

func TestHints_NoDuplicates(t *testing.T) {
	c := New()

	// "async" and "await" both contribute the same focus area; it must
	// appear exactly once.
	snippet := "async fn run() { task.await }"
	hints := c.Hints(LangRust, snippet)

	assert.Equal(t, 1, countOf(hints.FocusAreas, "async/await pattern usage"))
}

func TestHints_UnknownLanguage(t *testing.T) {
	c := New()

	hints := c.Hints(LangUnknown, "await something")

	// No baseline and no context-flag hints for an unknown language, but
	// snippet triggers still apply.
	assert.Contains(t, hints.FocusAreas, "async/await pattern usage")
	assert.NotContains(t, hints.FocusAreas, "manual memory management")
	assert.NotContains(t, hints.FocusAreas, "compile-time checks")
}

func TestHints_EmptySnippet(t *testing.T) {
	c := New()

	hints := c.Hints(LangJava, "")

	// Baseline and flag hints only.
	assert.Equal(t, []string{
		"exception handling and error propagation",
		"compile-time checks",
	}, hints.FocusAreas)
	assert.Empty(t, hints.CommonIssues)
	assert.Empty(t, hints.BestPractices)
}
