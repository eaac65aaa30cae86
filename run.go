package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentflare-ai/refdoc/internal/config"
	"github.com/agentflare-ai/refdoc/internal/docgen"
	"github.com/agentflare-ai/refdoc/internal/extract"
	"github.com/agentflare-ai/refdoc/internal/grammar"
	"github.com/agentflare-ai/refdoc/internal/registry"
	"github.com/agentflare-ai/refdoc/internal/render"
)

type options struct {
	check           bool
	output          string
	project         string
	version         string
	configPath      string
	includeInternal bool
	verbose         bool
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	opts   options
}

func newCLIApp(stdout, stderr io.Writer) *cliApp {
	return &cliApp{stdout: stdout, stderr: stderr, fs: afero.NewOsFs()}
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, io.Discard)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(cmd *cobra.Command, root string) error {
	gen, cfg, err := app.generator(cmd, root)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	if app.opts.check {
		return app.check(ctx, gen, cfg.Output)
	}
	paths, err := gen.Generate(ctx, cfg.Output)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(app.stdout, "Generated %s\n", path)
	}
	return nil
}

func (app *cliApp) check(ctx context.Context, gen *docgen.Generator, dir string) error {
	report, err := gen.Check(ctx, dir)
	if err != nil {
		return err
	}
	for _, d := range report.Divergences {
		fmt.Fprintln(app.stdout, d)
	}
	fmt.Fprintln(app.stdout, report.Summary())
	if !report.OK() {
		return docgen.ErrOutOfDate
	}
	return nil
}

func (app *cliApp) preview(cmd *cobra.Command, which string, width int) error {
	switch which {
	case "", docgen.ArtifactAPI, docgen.ArtifactCLI:
	default:
		return fmt.Errorf("unknown reference %q (want %s or %s)", which, docgen.ArtifactAPI, docgen.ArtifactCLI)
	}
	gen, _, err := app.generator(cmd, "")
	if err != nil {
		return err
	}
	docs, err := gen.Render(commandContext(cmd))
	if err != nil {
		return err
	}
	termOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		termOpts = append(termOpts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(termOpts...)
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}
	for _, doc := range docs {
		if which != "" && doc.Name != which {
			continue
		}
		out, err := renderer.Render(string(doc.Content))
		if err != nil {
			return fmt.Errorf("render %s: %w", doc.File, err)
		}
		fmt.Fprint(app.stdout, out)
	}
	return nil
}

// generator loads the config, applies flag overrides and wires a Generator
// documenting root (or the configured root when empty) and this program's
// own command tree.
func (app *cliApp) generator(cmd *cobra.Command, root string) (*docgen.Generator, *config.Config, error) {
	cfg, err := config.Load(app.fs, app.opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	app.applyFlags(cfg, root)
	project := cfg.Project
	if project == "" {
		project = cmd.Root().Name()
	}

	logger := log.NewWithOptions(app.stderr, log.Options{Prefix: "refdoc"})
	logger.SetLevel(log.WarnLevel)
	if app.opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("configuration loaded", "root", cfg.Root, "output", cfg.Output, "project", project)

	gen := docgen.New(docgen.Options{
		FS: app.fs,
		Library: &registry.Loader{
			Root:            cfg.Root,
			Version:         cfg.Version,
			IncludeInternal: cfg.IncludeInternal,
		},
		Grammar: grammar.FromCobra(cmd.Root()),
		Extract: extract.Options{Exclude: cfg.Exclude, Trailing: cfg.Trailing},
		Render:  render.Options{Project: project},
		Logger:  logger,
	})
	return gen, cfg, nil
}

func (app *cliApp) applyFlags(cfg *config.Config, root string) {
	if app.opts.output != "" {
		cfg.Output = app.opts.output
	}
	if app.opts.project != "" {
		cfg.Project = app.opts.project
	}
	if app.opts.version != "" {
		cfg.Version = app.opts.version
	}
	if app.opts.includeInternal {
		cfg.IncludeInternal = true
	}
	if root != "" {
		cfg.Root = root
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
