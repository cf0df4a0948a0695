package lang

// Example-format templates used to few-shot the downstream AI. Each template
// shows the expected shape of an analysis response for one language family.

const defaultTemplate = `Example analysis format:

**Summary**: One sentence describing what the code does.

**Issues**:
- Name each concrete problem with the line or construct it affects.

**Suggestions**:
- One actionable improvement per bullet, most important first.`

const pythonTemplate = `Example analysis format (Python):

**Summary**: One sentence describing what the code does.

**Issues**:
- Mutable default arguments shared across calls.
- Bare except clauses swallowing unrelated errors.

**Suggestions**:
- Use a context manager for file and lock handling.
- Add type hints to public function signatures.`

const cppTemplate = `Example analysis format (C++):

**Summary**: One sentence describing what the code does.

**Issues**:
- Raw owning pointers with unclear delete responsibility.
- Missing virtual destructor on a polymorphic base.

**Suggestions**:
- Prefer std::unique_ptr or std::shared_ptr for ownership.
- Mark single-argument constructors explicit.`

const cTemplate = `Example analysis format (C):

**Summary**: One sentence describing what the code does.

**Issues**:
- malloc result used without a NULL check.
- Fixed-size buffer filled by an unbounded copy.

**Suggestions**:
- Pair every allocation with exactly one free on all paths.
- Use bounded string functions with explicit sizes.`

const javascriptTemplate = `Example analysis format (JavaScript):

**Summary**: One sentence describing what the code does.

**Issues**:
- Promise-returning call without await or .catch.
- Loop variable captured by reference in a closure.

**Suggestions**:
- Use const/let instead of var for block scoping.
- Handle rejections at the end of every promise chain.`

const goTemplate = `Example analysis format (Go):

**Summary**: One sentence describing what the code does.

**Issues**:
- Error return ignored with a blank identifier.
- Goroutine started without a way to stop it.

**Suggestions**:
- Wrap errors with %w so callers can inspect them.
- Pass context.Context to every blocking operation.`

const luaTemplate = `Example analysis format (Lua):

**Summary**: One sentence describing what the code does.

**Issues**:
- Global assignment where a local was intended.
- ipairs loop silently stopping at a nil hole.

**Suggestions**:
- Declare variables local unless sharing is deliberate.
- Keep metatable indirection shallow and documented.`

// defaultTemplates maps a handful of languages to distinct example templates.
// Template resolves everything else to defaultTemplate.
func defaultTemplates() map[Language]string {
	return map[Language]string{
		LangPython:     pythonTemplate,
		LangCpp:        cppTemplate,
		LangC:          cTemplate,
		LangJavaScript: javascriptTemplate,
		LangTypeScript: javascriptTemplate,
		LangGo:         goTemplate,
		LangLua:        luaTemplate,
	}
}

// Template returns the example-format template for lang, or the designated
// default template when lang has no dedicated entry. The result is never
// empty.
func (c *Classifier) Template(lang Language) string {
	if tpl, ok := c.templates[lang]; ok {
		return tpl
	}
	return defaultTemplate
}
