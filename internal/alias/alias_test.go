package alias

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agentflare-ai/refdoc/internal/model"
)

func command(description string, args ...model.ArgumentDoc) *model.CommandDoc {
	return &model.CommandDoc{Description: description, Arguments: args}
}

func TestResolveGroupsAliases(t *testing.T) {
	build := func() *model.CommandDoc {
		return command("Build the index", model.ArgumentDoc{DisplayName: "--fast", Help: "skip checks"})
	}
	subs := map[string]*model.CommandDoc{
		"build": build(),
		"b":     build(),
		"bld":   build(),
		"clean": command("Remove build output"),
	}
	groups := Resolve(subs)

	got := make(map[string][]string)
	for _, g := range groups {
		got[g.Canonical] = g.Aliases
		if g.Command != subs[g.Canonical] {
			t.Errorf("group %q does not carry its canonical command", g.Canonical)
		}
	}
	want := map[string][]string{
		"build": {"b", "bld"},
		"clean": {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if groups[0].Canonical != "build" || groups[1].Canonical != "clean" {
		t.Fatalf("groups not sorted: %q, %q", groups[0].Canonical, groups[1].Canonical)
	}
}

func TestResolveKeepsDistinctHelpApart(t *testing.T) {
	subs := map[string]*model.CommandDoc{
		"add": command("Add", model.ArgumentDoc{DisplayName: "name", Help: "item name"}),
		"rm":  command("Add", model.ArgumentDoc{DisplayName: "name", Help: "item to remove"}),
	}
	if groups := Resolve(subs); len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}

func TestResolveIgnoresSubcommandsInSignature(t *testing.T) {
	a := command("Manage remotes")
	a.Subcommands = map[string]*model.CommandDoc{"add": command("Add a remote")}
	b := command("Manage remotes")
	groups := Resolve(map[string]*model.CommandDoc{"remote": a, "r": b})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Canonical != "remote" {
		t.Fatalf("canonical = %q, want remote", groups[0].Canonical)
	}
}

func TestResolvePartitionsNames(t *testing.T) {
	subs := map[string]*model.CommandDoc{
		"ls":     command("List"),
		"list":   command("List"),
		"rm":     command("Remove"),
		"remove": command("Remove"),
		"show":   command("Show"),
		"nil":    nil,
	}
	want := []string{"list", "ls", "remove", "rm", "show"}
	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(want, Names(Resolve(subs))); diff != "" {
			t.Fatalf("names mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if groups := Resolve(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %v", groups)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"b"}, "b"},
		{[]string{"b", "build", "bld"}, "build"},
		{[]string{"view", "show"}, "show"},
		{[]string{"rm", "del"}, "del"},
	}
	for _, tt := range tests {
		if got := Canonical(tt.names); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.names, got, tt.want)
		}
	}
}
