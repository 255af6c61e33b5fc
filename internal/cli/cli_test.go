package cli_test

import (
	"testing"

	"github.com/yaklabco/haikal/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "haikal" {
		t.Errorf("expected Use to be 'haikal', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	expected := [][]string{
		{"parse"},
		{"fmt"},
		{"check"},
		{"rule"},
		{"stats"},
		{"render"},
		{"view"},
		{"init"},
		{"version"},
		{"edit", "section", "insert"},
		{"edit", "section", "replace"},
		{"edit", "section", "remove"},
		{"edit", "paragraph", "insert"},
		{"edit", "paragraph", "replace"},
		{"edit", "paragraph", "remove"},
	}

	for _, path := range expected {
		subCmd, _, err := cmd.Find(path)
		if err != nil {
			t.Errorf("expected subcommand %v to exist, got error: %v", path, err)
			continue
		}

		if name := path[len(path)-1]; subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	tests := []struct {
		path  []string
		flags []string
	}{
		{[]string{"fmt"}, []string{"write", "diff", "check", "tab-size", "infer-lang", "jobs", "ignore"}},
		{[]string{"check"}, []string{"output", "strict-inline", "jobs", "ignore"}},
		{[]string{"edit", "section", "insert"}, []string{"index", "first", "last", "content", "content-file", "write"}},
		{[]string{"edit", "paragraph", "remove"}, []string{"index", "first", "last", "section", "write"}},
		{[]string{"stats"}, []string{"kind", "output"}},
		{[]string{"view"}, []string{"width", "style"}},
		{[]string{"init"}, []string{"force", "format", "output"}},
	}

	for _, tt := range tests {
		sub, _, err := cmd.Find(tt.path)
		if err != nil {
			t.Fatalf("command %v not found: %v", tt.path, err)
		}
		for _, name := range tt.flags {
			if sub.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q on %v", name, tt.path)
			}
		}
	}

	remove, _, _ := cmd.Find([]string{"edit", "section", "remove"})
	if remove.Flags().Lookup("content") != nil {
		t.Error("remove should not take --content")
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}
