package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdbuild/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang sh", "#!/bin/sh\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"go", "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}", "go"},
		{"python", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", "python"},
		{"python import", "import os\nprint(os.getcwd())", "python"},
		{"javascript", "const x = () => { return 42; };\nconsole.log(x());", "javascript"},
		{"json", `{"key": "value", "number": 123}`, "json"},
		{"yaml", "key: value\nother: 123\nlist:\n  - item1\n  - item2", "yaml"},
		{"rust", "fn main() {\n    println!(\"Hello, world!\");\n}", "rust"},
		{"sql", "select * from users where id = 1;", "sql"},
		{"html", "<!DOCTYPE html>\n<html>\n<body></body>\n</html>", "html"},
		{"dockerfile", "FROM golang:1.21\nWORKDIR /app\nCOPY . .\nRUN go build", "dockerfile"},
		{"plain text", "just some text without any code patterns", langdetect.Text},
		{"empty", "", langdetect.Text},
		{"whitespace only", "  \n\t\n", langdetect.Text},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, langdetect.Detect([]byte(tc.content)))
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	got := langdetect.Detect([]byte("#!/bin/bash\ndef foo():\n    pass"))
	assert.Equal(t, "bash", got)
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"go extension", "main.go", "anything at all", "go"},
		{"no extension uses content", "Containerfile", "FROM alpine\nRUN true", "dockerfile"},
		{"unknown extension uses content", "snippet.zzzz", "package x", "go"},
		{"empty name uses content", "", "SELECT 1", "sql"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, langdetect.DetectFile(tc.filename, []byte(tc.content)))
		})
	}
}
