// Package runner inspects many Markdown files concurrently.
package runner

import "github.com/yaklabco/gomdbuild/pkg/inspect"

// Options controls which files are inspected and how.
type Options struct {
	// Paths are files or directories to inspect. Empty means the working
	// directory.
	Paths []string

	// WorkingDir resolves relative Paths and glob patterns. Empty means the
	// process working directory.
	WorkingDir string

	// Extensions are the lowercase file extensions, with leading dot, that
	// are treated as Markdown. Empty means DefaultExtensions.
	Extensions []string

	// IncludeGlobs, when set, restrict discovery to matching paths.
	IncludeGlobs []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool

	// Jobs is the number of concurrent workers. 0 or negative means
	// runtime.NumCPU().
	Jobs int

	// Flavor selects the Markdown flavor used for parsing.
	Flavor string
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveFlavor() string {
	if o.Flavor == "" {
		return inspect.FlavorGFM
	}
	return o.Flavor
}
