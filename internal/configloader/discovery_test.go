package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectConfig_SearchesParents(t *testing.T) {
	t.Parallel()

	root := projectDir(t)
	nested := filepath.Join(root, "docs", "guide")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(root, ".gomdbuild.yml")
	writeFile(t, want, "flavor: gfm\n")

	got, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindProjectConfig_PrefersFirstName(t *testing.T) {
	t.Parallel()

	root := projectDir(t)
	writeFile(t, filepath.Join(root, ".gomdbuild.json"), `{"flavor":"gfm"}`)
	writeFile(t, filepath.Join(root, "gomdbuild.yaml"), "flavor: gfm\n")

	got, err := FindProjectConfig(context.Background(), root)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if filepath.Base(got) != "gomdbuild.yaml" {
		t.Errorf("got %q, want gomdbuild.yaml", got)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".gomdbuild.yml"), "flavor: gfm\n")
	inner := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(inner, ".git"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectConfig(context.Background(), inner)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if got != "" {
		t.Errorf("expected no config beyond the VCS root, got %q", got)
	}
}

func TestFindProjectConfig_IgnoresDirectories(t *testing.T) {
	t.Parallel()

	root := projectDir(t)
	if err := os.Mkdir(filepath.Join(root, ".gomdbuild.yml"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := FindProjectConfig(context.Background(), root)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if got != "" {
		t.Errorf("expected directory to be skipped, got %q", got)
	}
}

func TestFindProjectConfig_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := FindProjectConfig(ctx, t.TempDir()); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestUserConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got, want := UserConfigDir(), filepath.Join("/tmp/xdg", appName); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
