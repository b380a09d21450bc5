package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned when an include or exclude glob does not
// compile.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// matcher holds compiled include and exclude globs.
type matcher struct {
	workDir    string
	extensions []string
	include    []pattern
	exclude    []pattern
}

// pattern is a compiled glob. Patterns without a slash match the base name
// as well as the relative path.
type pattern struct {
	glob     glob.Glob
	baseName bool
}

// Discover returns the absolute, sorted and deduplicated paths of the
// Markdown files selected by opts. Hidden files and directories found while
// walking are skipped; files named explicitly are not.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m := &matcher{workDir: workDir}
	for _, ext := range opts.effectiveExtensions() {
		m.extensions = append(m.extensions, strings.ToLower(ext))
	}
	if m.include, err = compilePatterns(opts.IncludeGlobs); err != nil {
		return nil, err
	}
	if m.exclude, err = compilePatterns(opts.ExcludeGlobs); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if m.matchFile(absPath) {
				add(absPath)
			}
			continue
		}

		found, err := m.walk(ctx, absPath, opts.FollowSymlinks)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

func compilePatterns(globs []string) ([]pattern, error) {
	patterns := make([]pattern, 0, len(globs))
	for _, g := range globs {
		g = filepath.ToSlash(g)
		compiled, err := glob.Compile(g, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, g, err)
		}
		patterns = append(patterns, pattern{glob: compiled, baseName: !strings.Contains(g, "/")})
	}
	return patterns, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walk collects matching files under root.
func (m *matcher) walk(ctx context.Context, root string, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || m.excludedDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			if info.IsDir() {
				if !followSymlinks {
					return nil
				}
				// WalkDir does not follow links, so walk the resolved target.
				target, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil //nolint:nilerr // Unresolvable symlinks are skipped.
				}
				sub, err := m.walk(ctx, target, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if m.matchFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func (m *matcher) rel(path string) string {
	rel, err := filepath.Rel(m.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// matchFile checks the extension and the include and exclude patterns.
func (m *matcher) matchFile(path string) bool {
	if !slices.Contains(m.extensions, strings.ToLower(filepath.Ext(path))) {
		return false
	}

	rel := m.rel(path)
	if matchAny(m.exclude, rel) {
		return false
	}
	return len(m.include) == 0 || matchAny(m.include, rel)
}

// excludedDir reports whether a directory is excluded. "vendor/**" excludes
// the vendor directory itself.
func (m *matcher) excludedDir(path string) bool {
	rel := m.rel(path)
	return matchAny(m.exclude, rel) || matchAny(m.exclude, rel+"/")
}

func matchAny(patterns []pattern, rel string) bool {
	for _, p := range patterns {
		if p.glob.Match(rel) {
			return true
		}
		if p.baseName && p.glob.Match(filepath.Base(rel)) {
			return true
		}
	}
	return false
}
