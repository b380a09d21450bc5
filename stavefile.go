//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"s":   Sample,
	"fmt": Lint.Fmt,
	"fz":  Test.Fuzz,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

const (
	name    = "gomdbuild"
	mainPkg = "./cmd/" + name
	binary  = "bin/" + name
)

// packages are the trees linted and tested; the stavefile itself is built
// separately under the stave tag.
//
//nolint:gochecknoglobals // Read-only list.
var packages = []string{"./cmd/...", "./internal/...", "./pkg/..."}

// fuzzTargets are run by Test.Fuzz.
//
//nolint:gochecknoglobals // Read-only list.
var fuzzTargets = []struct{ pkg, fn string }{
	{"./pkg/mdbuild", "FuzzSingleLine"},
	{"./pkg/mdbuild", "FuzzBulletedList"},
	{"./pkg/fsutil", "FuzzWriteAtomic"},
}

// Build compiles bin/gomdbuild when sources changed since the last build.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary + " is up to date")
		return nil
	}
	fmt.Println("Building " + name + "...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Sample renders the built-in sample document and verifies it under both
// flavors, then inspects the output.
func Sample() error {
	st.Deps(Build)
	dir, err := os.MkdirTemp("", name+"-sample-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	doc := filepath.Join(dir, "document.yml")
	out := filepath.Join(dir, "README.md")
	if err := sh.RunV(binary, "init", "document", "-o", doc); err != nil {
		return err
	}
	for _, flavor := range []string{"gfm", "commonmark"} {
		if err := sh.RunV(binary, "render", doc, "-o", out, "--verify", "--flavor", flavor); err != nil {
			return fmt.Errorf("render %s: %w", flavor, err)
		}
	}
	return sh.RunV(binary, "inspect", out)
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install runs go install for the CLI.
func Install() error {
	fmt.Println("Installing " + name + "...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Uninstall removes the binary go install placed.
func Uninstall() error {
	path := filepath.Join(installDir(), name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println(name + " is not installed")
			return nil
		}
		return fmt.Errorf("remove binary: %w", err)
	}
	fmt.Println("Removed " + path)
	return nil
}

// Deps downloads and tidies modules.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage writes coverage.html from a full test run.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs the tests with race detection and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", "-race", "-coverprofile=coverage.out", "-covermode=atomic")
}

// Verbose runs the tests printing every test name.
func (Test) Verbose() error {
	return gotestsum("standard-verbose", "-race")
}

// Fuzz runs each fuzz target for FUZZTIME (default 10s).
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZTIME"), "10s")
	for _, ft := range fuzzTargets {
		fmt.Printf("Fuzzing %s %s for %s...\n", ft.pkg, ft.fn, fuzzTime)
		if err := sh.RunV("go", "test", "-run", "^$", "-fuzz", "^"+ft.fn+"$", "-fuzztime", fuzzTime, ft.pkg); err != nil {
			return fmt.Errorf("fuzz %s: %w", ft.fn, err)
		}
	}
	return nil
}

// Default runs golangci-lint with --fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", append([]string{"run", "--fix"}, packages...)...)
}

// CI runs golangci-lint without modifying files.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", append([]string{"run"}, packages...)...)
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when gofmt would change a file.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg", "stavefile.go")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nrun 'stave lint:fmt'", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", append([]string{"vet"}, packages...)...)
}

// Gate runs every check a pull request must pass.
func (CI) Gate() error {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Test.Default,
		Sample,
		CI.ModTidy,
		CI.Cross,
	)
	fmt.Println("✓ CI gate passed")
	return nil
}

// ModTidy fails when go mod tidy changes go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readAll("go.mod", "go.sum")
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readAll("go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("go mod tidy changed go.mod or go.sum; commit the result")
	}
	return nil
}

// Cross builds the CLI for every release platform without cgo.
func (CI) Cross() error {
	platforms := map[string][]string{
		"linux":   {"amd64", "arm64"},
		"darwin":  {"amd64", "arm64"},
		"windows": {"amd64", "arm64"},
		"freebsd": {"amd64"},
	}
	for goos, arches := range platforms {
		for _, goarch := range arches {
			fmt.Printf("  %s/%s\n", goos, goarch)
			env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
			if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
				return fmt.Errorf("build %s/%s: %w", goos, goarch, err)
			}
		}
	}
	return nil
}

// Default runs all benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", append([]string{"test", "-run", "^$", "-bench", ".", "-benchmem"}, packages...)...)
}

// gotestsum runs the test packages through gotestsum in the given format.
func gotestsum(format string, goTestFlags ...string) error {
	cores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	args := []string{"tool", "gotestsum", "-f", format, "--", "-p", cores, "-parallel", cores}
	args = append(args, goTestFlags...)
	return sh.RunV("go", append(args, packages...)...)
}

func readAll(paths ...string) ([]byte, error) {
	var buf bytes.Buffer
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// ldflags injects the version, commit and build date into package main.
func ldflags() string {
	vars := []struct{ name, value string }{
		{"version", cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev")},
		{"commit", cmp.Or(git("rev-parse", "--short", "HEAD"), "none")},
		{"date", time.Now().UTC().Format(time.RFC3339)},
	}
	flags := make([]string, 0, len(vars))
	for _, v := range vars {
		flags = append(flags, "-X main."+v.name+"="+v.value)
	}
	return strings.Join(flags, " ")
}

func git(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func installDir() string {
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		return gobin
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		return filepath.Join(gopath, "bin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "go", "bin")
}
