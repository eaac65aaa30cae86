package docgen

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/agentflare-ai/refdoc/internal/extract"
	"github.com/agentflare-ai/refdoc/internal/grammar"
	"github.com/agentflare-ai/refdoc/internal/registry"
)

const outDir = "/repo/docs"

func testLibrary() *registry.Library {
	return &registry.Library{
		Version: "0.3.0",
		Doc:     "Unicode helpers.",
		Modules: []*registry.Module{{
			Name:    "collate",
			Path:    "icukit/collate",
			Visible: true,
			Symbols: []*registry.Symbol{{
				Name:    "Collator",
				Origin:  "icukit/collate",
				Kind:    registry.KindClass,
				Visible: true,
				Doc:     "Compares strings.",
				Members: []*registry.Member{{
					Name:      "Compare",
					Visible:   true,
					Bound:     true,
					Signature: registry.Fixed("(c *Collator, a, b string) int"),
				}},
			}},
		}},
	}
}

func testGrammar() *grammar.Command {
	root := &grammar.Command{
		Prog:        "icukit",
		Description: "Unicode tools",
		Args: []grammar.Arg{
			{Flags: []string{"--version"}, Name: "version", Action: grammar.ActionVersion},
		},
	}
	root.Add(&grammar.Command{
		Prog:        "icukit collate",
		Description: "Sort lines",
		Args:        []grammar.Arg{{Flags: []string{"--locale"}, Name: "locale", Help: "collation locale"}},
	}, "collate", "sort")
	return root
}

func newGenerator(fs afero.Fs, g *grammar.Command) *Generator {
	return New(Options{
		FS:      fs,
		Library: registry.Static{Lib: testLibrary()},
		Grammar: g,
		Extract: extract.DefaultOptions,
	})
}

func TestGenerateThenCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := newGenerator(fs, testGrammar())
	paths, err := gen.Generate(context.Background(), outDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []string{filepath.Join(outDir, "api.md"), filepath.Join(outDir, "cli.md")}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	cli, err := afero.ReadFile(fs, filepath.Join(outDir, "cli.md"))
	if err != nil {
		t.Fatalf("read cli.md: %v", err)
	}
	if !strings.Contains(string(cli), "## `icukit collate` (aliases: sort)\n") {
		t.Fatalf("cli.md missing collate section:\n%s", cli)
	}

	report, err := gen.Check(context.Background(), outDir)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.OK() {
		t.Fatalf("expected an up-to-date report, got %v", report.Divergences)
	}
	if report.Summary() != "Documentation is up to date." {
		t.Fatalf("Summary = %q", report.Summary())
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	gen := newGenerator(afero.NewMemMapFs(), testGrammar())
	first, err := gen.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := gen.Render(context.Background())
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("render changed (-first +again):\n%s", diff)
		}
	}
	if first[0].Name != ArtifactAPI || first[1].Name != ArtifactCLI {
		t.Fatalf("unexpected artifact order %q, %q", first[0].Name, first[1].Name)
	}
}

func TestCheckReportsMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	report, err := newGenerator(fs, testGrammar()).Check(context.Background(), outDir)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := []Divergence{
		{Artifact: ArtifactAPI, Path: filepath.Join(outDir, "api.md"), Kind: Missing},
		{Artifact: ArtifactCLI, Path: filepath.Join(outDir, "cli.md"), Kind: Missing},
	}
	if diff := cmp.Diff(want, report.Divergences); diff != "" {
		t.Fatalf("divergences mismatch (-want +got):\n%s", diff)
	}
	if got := report.Summary(); got != "Documentation is out of date: 2 problem(s)." {
		t.Fatalf("Summary = %q", got)
	}
	if exists, _ := afero.DirExists(fs, outDir); exists {
		t.Fatalf("check must not create %s", outDir)
	}
}

func TestCheckReportsDrift(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := newGenerator(fs, testGrammar()).Generate(context.Background(), outDir); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	changed := testGrammar()
	changed.Subcommands["collate"].Args[0].Help = "locale used for sorting"
	report, err := newGenerator(fs, changed).Check(context.Background(), outDir)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := []Divergence{{
		Artifact: ArtifactCLI,
		Path:     filepath.Join(outDir, "cli.md"),
		Kind:     OutOfDate,
		Section:  "icukit collate (aliases: sort)",
	}}
	if diff := cmp.Diff(want, report.Divergences); diff != "" {
		t.Fatalf("divergences mismatch (-want +got):\n%s", diff)
	}
	if got := report.Divergences[0].String(); got != "Out of date: "+filepath.Join(outDir, "cli.md")+" (section: icukit collate (aliases: sort))" {
		t.Fatalf("String = %q", got)
	}
}

func TestCheckContinuesPastUnreadable(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	if err := fs.Mkdir(filepath.Join(dir, "api.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	report, err := newGenerator(fs, testGrammar()).Check(context.Background(), dir)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(report.Divergences) != 2 {
		t.Fatalf("expected two divergences, got %v", report.Divergences)
	}
	api, cli := report.Divergences[0], report.Divergences[1]
	if api.Kind != Unreadable || api.Path != filepath.Join(dir, "api.md") || api.Reason == "" {
		t.Errorf("unexpected api.md divergence %+v", api)
	}
	want := Divergence{Artifact: ArtifactCLI, Path: filepath.Join(dir, "cli.md"), Kind: Missing}
	if diff := cmp.Diff(want, cli); diff != "" {
		t.Errorf("cli.md divergence mismatch (-want +got):\n%s", diff)
	}
	if report.OK() {
		t.Fatalf("report with an unreadable document must not be OK")
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := newGenerator(fs, testGrammar()).Generate(context.Background(), outDir)
	if err == nil {
		t.Fatalf("expected a write error")
	}
}

func TestRenderLibraryError(t *testing.T) {
	gen := New(Options{
		FS:      afero.NewMemMapFs(),
		Library: failingSource{},
		Grammar: testGrammar(),
	})
	if _, err := gen.Render(context.Background()); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected load error, got %v", err)
	}
	if _, err := New(Options{Library: failingSource{}}).Render(context.Background()); err == nil {
		t.Fatalf("expected an error without a grammar")
	}
}

type failingSource struct{}

func (failingSource) Library(context.Context) (*registry.Library, error) {
	return nil, errors.New("boom")
}

func TestDivergenceString(t *testing.T) {
	tests := []struct {
		d    Divergence
		want string
	}{
		{Divergence{Path: "docs/api.md", Kind: Missing}, "Missing: docs/api.md"},
		{Divergence{Path: "docs/api.md", Kind: OutOfDate}, "Out of date: docs/api.md"},
		{Divergence{Path: "docs/cli.md", Kind: OutOfDate, Section: "Commands"}, "Out of date: docs/cli.md (section: Commands)"},
		{Divergence{Path: "docs/api.md", Kind: Unreadable, Reason: "is a directory"}, "Unreadable: docs/api.md (is a directory)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
