package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/haikal/pkg/runner"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
}

func relNames(t *testing.T, dir string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tree := map[string]string{
		"readme.md":              "# A",
		"notes.markdown":         "b",
		"script.go":              "package x",
		"docs/guide.md":          "c",
		"docs/drafts/wip.md":     "d",
		"vendor/lib/readme.md":   "e",
		".hidden/secret.md":      "f",
		"docs/.dotfile.md":       "g",
		"docs/deep/nested/x.MD":  "h",
		"docs/deep/nested/y.txt": "i",
	}

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "walks with default extensions",
			want: []string{
				"docs/deep/nested/x.MD",
				"docs/drafts/wip.md",
				"docs/guide.md",
				"notes.markdown",
				"readme.md",
				"vendor/lib/readme.md",
			},
		},
		{
			name: "doublestar excludes",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**", "**/drafts"}},
			want: []string{"docs/deep/nested/x.MD", "docs/guide.md", "notes.markdown", "readme.md"},
		},
		{
			name: "base name pattern",
			opts: runner.Options{ExcludeGlobs: []string{"readme.md"}},
			want: []string{"docs/deep/nested/x.MD", "docs/drafts/wip.md", "docs/guide.md", "notes.markdown"},
		},
		{
			name: "custom extensions",
			opts: runner.Options{Extensions: []string{".txt"}},
			want: []string{"docs/deep/nested/y.txt"},
		},
		{
			name: "explicit paths deduplicated",
			opts: runner.Options{
				Paths:        []string{"docs/guide.md", "docs", "script.go"},
				ExcludeGlobs: []string{"docs/deep/**", "docs/drafts"},
			},
			want: []string{"docs/guide.md", "script.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeTree(t, dir, tree)

			opts := tt.opts
			opts.WorkingDir = dir

			files, err := runner.Discover(context.Background(), opts)
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}

			got := relNames(t, dir, files)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Discover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope.md"},
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscoverCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
