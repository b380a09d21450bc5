package mdbuild_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gomdbuild/pkg/mdbuild"
)

func FuzzSingleLine(f *testing.F) {
	seeds := []string{"", "title", "  two\nlines  ", "tab\tseparated", "\n\n\n", "mixed \r\n endings"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		got := mdbuild.SingleLine(input)

		if strings.Contains(got, "\n") {
			t.Errorf("SingleLine(%q) = %q contains a newline", input, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("SingleLine(%q) = %q contains a double space", input, got)
		}
		if strings.TrimSpace(got) != got {
			t.Errorf("SingleLine(%q) = %q is not trimmed", input, got)
		}
	})
}

func FuzzBulletedList(f *testing.F) {
	f.Add("one", "two\nthree")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, first, second string) {
		raw := mdbuild.New().BulletedList([]string{first, second})

		wantLines := strings.Count(first, "\n") + strings.Count(second, "\n") + 2
		md := mdbuild.New().Write("x\n").BulletedList([]string{first, second}).Write("x")
		lines := strings.Split(md.Markdown(), "\n")

		// Leading and trailing sentinels keep trimming from eating list lines.
		if got := len(lines) - 3; got != wantLines {
			t.Errorf("list of %q, %q has %d lines, want %d", first, second, got, wantLines)
		}
		if raw.Len() == 0 {
			t.Error("list wrote nothing")
		}
	})
}
