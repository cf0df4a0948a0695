// Package lang implements a heuristic source-language classifier. Given an
// editor filetype hint or a raw code snippet it resolves a canonical Language,
// and exposes the static metadata, analysis hints, and example templates used
// to steer downstream AI analysis prompts.
//
// Every operation is a pure function over its inputs and the read-only tables
// built by New, so a single Classifier is safe for concurrent use.
package lang

import "strings"

// Classifier resolves languages from filetype hints and snippet content.
// All tables are built once by New and never mutated afterwards.
type Classifier struct {
	aliases   map[string]Language
	rules     []rule
	contexts  map[Language]LanguageContext
	baselines map[Language][]string
	triggers  []trigger
	templates map[Language]string
}

// New creates a Classifier with the default alias, rule, context, hint, and
// template tables. It takes no external dependencies.
func New() *Classifier {
	return &Classifier{
		aliases:   defaultAliases(),
		rules:     defaultRules(),
		contexts:  defaultContexts(),
		baselines: defaultBaselines(),
		triggers:  defaultTriggers(),
		templates: defaultTemplates(),
	}
}

// Normalize maps an editor-reported filetype string to a canonical Language.
// Lookup is case-insensitive. An unrecognized non-empty filetype passes
// through lowercased, on the assumption that it is already canonical. An
// empty filetype yields LangUnknown so the caller can fall through to
// content-based detection.
func (c *Classifier) Normalize(filetype string) Language {
	ft := strings.ToLower(strings.TrimSpace(filetype))
	if ft == "" {
		return LangUnknown
	}
	if lang, ok := c.aliases[ft]; ok {
		return lang
	}
	return Language(ft)
}

// Detect guesses the language of a code snippet by scanning an ordered rule
// list and returning the first match. The precedence order is the tie-break:
// overlapping predicates across candidates are resolved by rule position, not
// by specificity. An empty snippet, or one matching no rule, yields
// LangUnknown.
func (c *Classifier) Detect(snippet string) Language {
	if strings.TrimSpace(snippet) == "" {
		return LangUnknown
	}
	lowered := strings.ToLower(snippet)
	for _, r := range c.rules {
		if r.matches(lowered) {
			return r.lang
		}
	}
	return LangUnknown
}

// Classify resolves a language from a filetype hint when one is present,
// falling back to content-based detection otherwise.
func (c *Classifier) Classify(filetype, snippet string) Language {
	if lang := c.Normalize(filetype); lang != LangUnknown {
		return lang
	}
	return c.Detect(snippet)
}

// Context returns the metadata record for lang, or an all-empty record with
// an unknown paradigm when lang has no entry. It never fails.
func (c *Classifier) Context(lang Language) LanguageContext {
	if ctx, ok := c.contexts[lang]; ok {
		return ctx
	}
	return LanguageContext{Paradigm: ParadigmUnknown}
}

// Known reports whether lang has a full context record.
func (c *Classifier) Known(lang Language) bool {
	_, ok := c.contexts[lang]
	return ok
}

// rule guards one language candidate in the detection scan. A rule matches a
// lowercased snippet when every allOf substring is present and, if anyOf is
// non-empty, at least one anyOf substring is present too. The same language
// may appear in several rules to express stronger and weaker evidence at
// different positions in the scan order.
type rule struct {
	lang  Language
	allOf []string
	anyOf []string
}

func (r rule) matches(lowered string) bool {
	for _, p := range r.allOf {
		if !strings.Contains(lowered, p) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return true
	}
	for _, p := range r.anyOf {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
