// Package langdetect guesses the language of a code block body.
// It uses go-enry and reports only the language tags the dialect documents,
// so callers can fill in untagged fences.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/haikal/pkg/dialect"
)

// enryNames maps go-enry language names onto dialect tags.
//
//nolint:gochecknoglobals // Read-only lookup table.
var enryNames = map[string]dialect.Language{
	"C":          dialect.LangC,
	"C++":        dialect.LangCPP,
	"C#":         dialect.LangCSharp,
	"Java":       dialect.LangJava,
	"JavaScript": dialect.LangJavaScript,
	"Python":     dialect.LangPython,
	"Ruby":       dialect.LangRuby,
	"Go":         dialect.LangGo,
	"Rust":       dialect.LangRust,
}

// Detect returns the language of content, or "" when it is not one of the
// dialect's languages or confidence is low.
func Detect(content []byte) dialect.Language {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// Shebang first; it is the most reliable signal.
	if name, safe := enry.GetLanguageByShebang(content); safe {
		lang, _ := FromEnry(name)
		return lang
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	candidates := []string{"C", "C++", "C#", "Java", "JavaScript", "Python", "Ruby", "Go", "Rust"}
	if name, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		lang, _ := FromEnry(name)
		return lang
	}

	return ""
}

// FromEnry maps a go-enry language name to a dialect language tag.
func FromEnry(name string) (dialect.Language, bool) {
	lang, ok := enryNames[name]
	return lang, ok
}

// detectByPattern checks for patterns that are highly indicative, most
// specific first.
func detectByPattern(content []byte) dialect.Language {
	src := string(content)
	trimmed := strings.TrimSpace(src)

	detectors := []func(src, trimmed string) dialect.Language{
		detectGo,
		detectRust,
		detectCSharp,
		detectJava,
		detectCPP,
		detectC,
		detectPython,
		detectRuby,
		detectJavaScript,
	}
	for _, detect := range detectors {
		if lang := detect(src, trimmed); lang != "" {
			return lang
		}
	}
	return ""
}

func detectGo(src, trimmed string) dialect.Language {
	if strings.HasPrefix(trimmed, "package ") || strings.Contains(src, "func main()") || strings.Contains(src, ":= ") {
		return dialect.LangGo
	}
	return ""
}

func detectRust(src, _ string) dialect.Language {
	if strings.Contains(src, "fn main()") ||
		strings.Contains(src, "println!") ||
		strings.Contains(src, "let mut ") {
		return dialect.LangRust
	}
	return ""
}

func detectCSharp(src, _ string) dialect.Language {
	if strings.Contains(src, "using System") || strings.Contains(src, "Console.Write") {
		return dialect.LangCSharp
	}
	return ""
}

func detectJava(src, _ string) dialect.Language {
	if strings.Contains(src, "System.out.print") || strings.Contains(src, "public static void main") {
		return dialect.LangJava
	}
	return ""
}

func detectCPP(src, _ string) dialect.Language {
	if strings.Contains(src, "#include <iostream>") || strings.Contains(src, "std::") {
		return dialect.LangCPP
	}
	return ""
}

func detectC(src, _ string) dialect.Language {
	if strings.Contains(src, "#include <") || strings.Contains(src, "printf(") {
		return dialect.LangC
	}
	return ""
}

func detectPython(src, trimmed string) dialect.Language {
	// def/class definitions with colon.
	if strings.Contains(src, "def ") && strings.Contains(src, "):") {
		return dialect.LangPython
	}
	if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ") {
		return dialect.LangPython
	}
	if strings.Contains(src, "__name__") || strings.Contains(src, "print(") {
		return dialect.LangPython
	}
	return ""
}

func detectRuby(src, _ string) dialect.Language {
	if strings.Contains(src, "puts ") || (strings.Contains(src, "def ") && strings.Contains(src, "\nend")) {
		return dialect.LangRuby
	}
	return ""
}

func detectJavaScript(src, _ string) dialect.Language {
	if strings.Contains(src, "=>") ||
		strings.Contains(src, "const ") ||
		strings.Contains(src, "let ") ||
		strings.Contains(src, "console.log") {
		return dialect.LangJavaScript
	}
	return ""
}
