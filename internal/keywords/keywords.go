// Package keywords holds the built-in per-language keyword tables.
package keywords

import "sort"

// DefaultLanguage is the table key used when a language has no entry.
const DefaultLanguage = "default"

// tables maps a language identifier to the keywords highlighted for it.
// Order matters: it is the scan order of the match finder, which in turn
// fixes the style rotation. Read-only after init.
var tables = map[string][]string{
	DefaultLanguage: {
		"function", "const", "let", "var", "if",
		"else", "for", "while", "return", "class",
	},
	"go": {
		"func", "var", "const", "type", "struct", "interface",
		"map", "chan", "go", "defer", "return", "package", "import",
	},
	"rust": {
		"fn", "struct", "enum", "impl", "trait", "use", "return", "pub",
	},
	"python": {
		"def", "class", "import", "from", "return",
		"if", "else", "for", "while", "lambda",
	},
	"javascript": {
		"function", "const", "let", "var", "class",
		"return", "if", "else", "async", "await",
	},
	"typescript": {
		"function", "const", "let", "var", "class", "return",
		"if", "else", "async", "await", "interface", "type", "enum",
	},
	"c": {
		"int", "char", "void", "struct", "typedef",
		"return", "if", "else", "for", "while",
	},
	"java": {
		"public", "private", "class", "interface", "void",
		"static", "final", "return", "new", "extends",
	},
}

// Lookup returns the keyword list for languageID, falling back to the
// default list for unknown languages. An unknown language is not an
// error. Callers must not mutate the returned slice.
func Lookup(languageID string) []string {
	if kws, ok := tables[languageID]; ok {
		return kws
	}
	return tables[DefaultLanguage]
}

// Default returns the fallback keyword list.
func Default() []string {
	return tables[DefaultLanguage]
}

// Languages returns the known language identifiers in sorted order,
// excluding the default entry.
func Languages() []string {
	langs := make([]string, 0, len(tables)-1)
	for lang := range tables {
		if lang == DefaultLanguage {
			continue
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
