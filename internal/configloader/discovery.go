package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// appName names the per-user and system configuration directories.
const appName = "gomdbuild"

// ConfigPaths holds the configuration files found for one invocation.
// An empty field means no file was found at that level.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// projectConfigFiles are searched in each directory, first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".gomdbuild.yml",
	".gomdbuild.yaml",
	"gomdbuild.yml",
	"gomdbuild.yaml",
	".gomdbuild.json",
}

// dirConfigFiles are the names accepted inside the user and system directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var dirConfigFiles = []string{"config.yaml", "config.yml"}

//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths locates the system, user and project configuration files.
// Missing files are not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	paths := &ConfigPaths{
		System:  firstFile(systemConfigDir(), dirConfigFiles),
		Project: project,
	}
	if dir := UserConfigDir(); dir != "" {
		paths.User = firstFile(dir, dirConfigFiles)
	}
	return paths, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	base := os.Getenv("ProgramData")
	if base == "" {
		base = `C:\ProgramData`
	}
	return filepath.Join(base, appName)
}

// UserConfigDir returns $XDG_CONFIG_HOME/gomdbuild, falling back to
// ~/.config/gomdbuild. It returns "" when no home directory is known.
func UserConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName)
}

// FindProjectConfig walks from startDir towards the root looking for a
// project config file. The walk ends at a VCS root, the home directory or
// the filesystem root. An empty startDir means the working directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		if path := firstFile(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || isVCSRoot(dir) {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that exists as a file in dir.
func firstFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	return slices.ContainsFunc(vcsRootMarkers, func(marker string) bool {
		info, err := os.Stat(filepath.Join(dir, marker))
		return err == nil && info.IsDir()
	})
}
