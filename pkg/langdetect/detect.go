// Package langdetect guesses the fence tag for a code block.
// It combines go-enry's shebang, extension and classifier strategies with a
// few cheap patterns that are reliable for short snippets.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// classifierCandidates limits the classifier to languages commonly found in
// documentation.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// matcher reports whether a snippet is written in lang.
type matcher struct {
	lang  string
	match func(content []byte, trimmed []byte) bool
}

// matchers are tried in order; more specific languages come first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var matchers = []matcher{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", isPython},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(content, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
			(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := bytes.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
	{"rust", func(content, _ []byte) bool {
		return containsAny(content, "fn main()", "println!", "let mut ")
	}},
	{"javascript", func(content, _ []byte) bool {
		return containsAny(content, "=>", "const ", "let ", "console.log")
	}},
	{"yaml", isYAML},
}

// Detect returns the fence tag for content, or Text when unsure.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, m := range matchers {
		if m.match(content, trimmed) {
			return m.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// DetectFile prefers an unambiguous file extension and falls back to Detect.
func DetectFile(filename string, content []byte) string {
	if filepath.Ext(filename) != "" {
		if lang, safe := enry.GetLanguageByExtension(filename); safe && lang != "" {
			return normalize(lang)
		}
	}
	return Detect(content)
}

func isPython(content, _ []byte) bool {
	s := string(content)
	if strings.Contains(s, "def ") && strings.Contains(s, "):") {
		return true
	}
	if strings.Contains(s, "import ") && !strings.Contains(s, "import (") &&
		(strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import ")) {
		return true
	}
	return strings.Contains(s, "__name__") || strings.Contains(s, "__main__")
}

// isYAML counts "key: value" pairs and list items; two or more is YAML.
func isYAML(content, _ []byte) bool {
	hits := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			line[0] != '"' {
			hits++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			hits++
		}
	}
	return hits >= 2
}

func containsAny(content []byte, needles ...string) bool {
	for _, n := range needles {
		if bytes.Contains(content, []byte(n)) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
