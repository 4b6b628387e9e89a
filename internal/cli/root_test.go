package cli

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

// TestCommandTree verifies the CLI command hierarchy is correct.
func TestCommandTree(t *testing.T) {
	root := Root()

	expectedTopLevel := []string{
		"configure",
		"list",
		"purge",
		"version",
	}

	gotTopLevel := childNames(root)
	slices.Sort(expectedTopLevel)
	slices.Sort(gotTopLevel)

	if !slices.Equal(expectedTopLevel, gotTopLevel) {
		t.Fatalf("top-level commands:\n  got:  %v\n  want: %v", gotTopLevel, expectedTopLevel)
	}
}

func TestPurgeFlags(t *testing.T) {
	purge, _, err := Root().Find([]string{"purge"})
	if err != nil {
		t.Fatalf("purge command not found: %v", err)
	}

	for _, name := range []string{
		"team", "project", "type", "name", "exclude", "match",
		"include-dev", "include-prod", "apply", "yes",
	} {
		if purge.Flags().Lookup(name) == nil {
			t.Errorf("purge is missing flag --%s", name)
		}
	}

	// destructive flags must default off
	for _, name := range []string{"include-dev", "include-prod", "apply", "yes"} {
		flag := purge.Flags().Lookup(name)
		if flag != nil && flag.DefValue != "false" {
			t.Errorf("flag --%s should default to false, got %s", name, flag.DefValue)
		}
	}
}

func childNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		if c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		names = append(names, c.Name())
	}
	return names
}
