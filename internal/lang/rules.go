package lang

// defaultRules returns the ordered detection rules. First match wins, so
// narrower rules precede broader ones: C++ (includes plus namespace/class
// evidence) before plain C, TypeScript (type annotations) before JavaScript.
// The remaining overlaps between close languages are accepted heuristic
// limitations resolved by position alone.
func defaultRules() []rule {
	return []rule{
		{
			lang:  LangCpp,
			allOf: []string{"#include"},
			anyOf: []string{"std::", "namespace ", "template<", "class "},
		},
		{
			lang:  LangC,
			allOf: []string{"#include"},
		},
		{
			lang:  LangPython,
			allOf: []string{"def "},
		},
		{
			lang:  LangGo,
			anyOf: []string{"package main", "func ", ":= ", "go func"},
		},
		{
			lang:  LangRust,
			anyOf: []string{"fn ", "let mut ", "impl ", "::<"},
		},
		{
			lang:  LangJava,
			allOf: []string{"public "},
			anyOf: []string{"class ", "static ", "void ", "system.out"},
		},
		{
			lang:  LangKotlin,
			anyOf: []string{"fun ", "val "},
		},
		{
			lang:  LangLua,
			anyOf: []string{"local ", "elseif", "~=", "--[["},
		},
		{
			lang:  LangTypeScript,
			anyOf: []string{": string", ": number", ": boolean", ": void", "interface ", "export type "},
		},
		{
			lang:  LangJavaScript,
			anyOf: []string{"function", "const ", "let ", "var ", "=>", "console."},
		},
		{
			// Bare imports with no definitions: weak Python evidence, so it
			// sits after the scripting candidates above.
			lang:  LangPython,
			allOf: []string{"import "},
			anyOf: []string{"print(", "from "},
		},
	}
}
