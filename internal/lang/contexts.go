package lang

// defaultAliases maps editor-reported filetype strings (abbreviations and
// framework variants included) to canonical languages. Keys are lowercase;
// Normalize lowercases input before the lookup.
func defaultAliases() map[string]Language {
	return map[string]Language{
		"py":              LangPython,
		"python3":         LangPython,
		"js":              LangJavaScript,
		"jsx":             LangJavaScript,
		"mjs":             LangJavaScript,
		"node":            LangJavaScript,
		"javascriptreact": LangJavaScript,
		"ts":              LangTypeScript,
		"tsx":             LangTypeScript,
		"typescriptreact": LangTypeScript,
		"golang":          LangGo,
		"rs":              LangRust,
		"kt":              LangKotlin,
		"kts":             LangKotlin,
		"c++":             LangCpp,
		"cc":              LangCpp,
		"cxx":             LangCpp,
		"hpp":             LangCpp,
		"h":               LangC,
	}
}

// defaultContexts returns the per-language metadata table. Every canonical
// language has an entry with at least one token and a known paradigm.
func defaultContexts() map[Language]LanguageContext {
	return map[Language]LanguageContext{
		LangC: {
			Headers:    []string{"stdio.h", "stdlib.h", "string.h"},
			Tokens:     []string{"struct", "typedef", "malloc", "free"},
			Compiled:   true,
			Paradigm:   ParadigmProcedural,
			Extensions: []string{".c", ".h"},
		},
		LangCpp: {
			Headers:    []string{"iostream", "vector", "memory", "string"},
			Tokens:     []string{"class", "namespace", "template", "std::"},
			Compiled:   true,
			Paradigm:   ParadigmMulti,
			Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"},
		},
		LangGo: {
			Headers:       []string{"fmt", "context", "errors"},
			Tokens:        []string{"func", "chan", "defer", "interface"},
			MemoryManaged: true,
			Compiled:      true,
			Runtime:       "Go runtime",
			Paradigm:      ParadigmMulti,
			Extensions:    []string{".go"},
		},
		LangRust: {
			Headers:    []string{"std::collections", "std::io", "std::sync"},
			Tokens:     []string{"fn", "impl", "match", "trait"},
			Compiled:   true,
			Paradigm:   ParadigmMulti,
			Extensions: []string{".rs"},
		},
		LangJava: {
			Headers:       []string{"java.util", "java.io", "java.net"},
			Tokens:        []string{"class", "extends", "implements", "new"},
			MemoryManaged: true,
			Compiled:      true,
			Runtime:       "JVM",
			Paradigm:      ParadigmObject,
			Extensions:    []string{".java"},
		},
		LangKotlin: {
			Headers:       []string{"kotlinx.coroutines", "java.util"},
			Tokens:        []string{"fun", "val", "var", "when"},
			MemoryManaged: true,
			Compiled:      true,
			Runtime:       "JVM",
			Paradigm:      ParadigmMulti,
			Extensions:    []string{".kt", ".kts"},
		},
		LangPython: {
			Headers:       []string{"os", "sys", "typing"},
			Tokens:        []string{"def", "class", "self", "yield"},
			MemoryManaged: true,
			Runtime:       "CPython",
			Paradigm:      ParadigmMulti,
			Extensions:    []string{".py", ".pyw"},
		},
		LangLua: {
			Headers:       []string{"string", "table", "coroutine"},
			Tokens:        []string{"local", "function", "end", "then"},
			MemoryManaged: true,
			Runtime:       "LuaJIT",
			Paradigm:      ParadigmMulti,
			Extensions:    []string{".lua"},
		},
		LangJavaScript: {
			Headers:       []string{"fs", "path", "http"},
			Tokens:        []string{"function", "const", "let", "=>"},
			MemoryManaged: true,
			Runtime:       "V8",
			Paradigm:      ParadigmMulti,
			Extensions:    []string{".js", ".jsx", ".mjs", ".cjs"},
		},
		LangTypeScript: {
			Headers:       []string{"fs", "path"},
			Tokens:        []string{"interface", "type", "enum", "=>"},
			MemoryManaged: true,
			// Transpiled to JavaScript, but the type layer is checked ahead
			// of time, so it counts as compiled for hint purposes.
			Compiled:   true,
			Runtime:    "Node.js",
			Paradigm:   ParadigmMulti,
			Extensions: []string{".ts", ".tsx"},
		},
	}
}
