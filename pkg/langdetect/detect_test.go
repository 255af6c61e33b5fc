package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected dialect.Language
	}{
		{
			name:     "shebang python",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: dialect.LangPython,
		},
		{
			name:     "shebang ruby",
			content:  "#!/usr/bin/env ruby\nputs 'hi'",
			expected: dialect.LangRuby,
		},
		{
			name:     "shebang outside the dialect",
			content:  "#!/bin/bash\necho hello",
			expected: "",
		},
		{
			name:     "go code",
			content:  "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			expected: dialect.LangGo,
		},
		{
			name:     "python code",
			content:  "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			expected: dialect.LangPython,
		},
		{
			name:     "javascript code",
			content:  "const x = () => { return 42; };\nconsole.log(x());",
			expected: dialect.LangJavaScript,
		},
		{
			name:     "rust code",
			content:  "fn main() {\n    println!(\"Hello, world!\");\n}",
			expected: dialect.LangRust,
		},
		{
			name:     "java code",
			content:  "class A {\n  void f() { System.out.println(1); }\n}",
			expected: dialect.LangJava,
		},
		{
			name:     "csharp code",
			content:  "using System;\nConsole.WriteLine(\"x\");",
			expected: dialect.LangCSharp,
		},
		{
			name:     "cpp code",
			content:  "#include <iostream>\nint main() { std::cout << 1; }",
			expected: dialect.LangCPP,
		},
		{
			name:     "c code",
			content:  "#include <stdio.h>\nint main(void) { printf(\"x\"); }",
			expected: dialect.LangC,
		},
		{
			name:     "ruby code",
			content:  "def greet\n  puts 'hi'\nend",
			expected: dialect.LangRuby,
		},
		{
			name:     "empty",
			content:  "",
			expected: "",
		},
		{
			name:     "whitespace only",
			content:  "  \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestFromEnry(t *testing.T) {
	t.Parallel()

	for _, lang := range dialect.Languages() {
		assert.True(t, lang.Known())
	}

	got, ok := langdetect.FromEnry("C#")
	assert.True(t, ok)
	assert.Equal(t, dialect.LangCSharp, got)

	_, ok = langdetect.FromEnry("Haskell")
	assert.False(t, ok)
}

func TestDetectResultIsKnownOrEmpty(t *testing.T) {
	t.Parallel()

	inputs := []string{"SELECT * FROM t;", "key: value\nother: 1", "<html></html>", "just words"}
	for _, in := range inputs {
		got := langdetect.Detect([]byte(in))
		assert.True(t, got == "" || got.Known(), "%q -> %q", in, got)
	}
}
