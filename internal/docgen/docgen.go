// Package docgen renders the API and CLI references and either writes them
// to a directory or checks that the copies already there are current.
package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/agentflare-ai/refdoc/internal/extract"
	"github.com/agentflare-ai/refdoc/internal/grammar"
	"github.com/agentflare-ai/refdoc/internal/mddiff"
	"github.com/agentflare-ai/refdoc/internal/registry"
	"github.com/agentflare-ai/refdoc/internal/render"
)

// ErrOutOfDate reports a failed check.
var ErrOutOfDate = errors.New("documentation is out of date")

// Artifact names.
const (
	ArtifactAPI = "api"
	ArtifactCLI = "cli"
)

// Options configures a Generator.
type Options struct {
	// FS defaults to the OS filesystem.
	FS      afero.Fs
	Library registry.Source
	Grammar *grammar.Command
	Extract extract.Options
	Render  render.Options
	// Logger defaults to a logger that discards everything.
	Logger *log.Logger
}

// Generator produces the reference documents.
type Generator struct {
	fs      afero.Fs
	library registry.Source
	grammar *grammar.Command
	extract extract.Options
	render  render.Options
	logger  *log.Logger
}

// New returns a Generator for opts.
func New(opts Options) *Generator {
	g := &Generator{
		fs:      opts.FS,
		library: opts.Library,
		grammar: opts.Grammar,
		extract: opts.Extract,
		render:  opts.Render,
		logger:  opts.Logger,
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// Rendered is a document rendered in memory.
type Rendered struct {
	Name    string
	File    string
	Content []byte
}

// Render extracts both models and renders them. The API reference always
// comes first.
func (g *Generator) Render(ctx context.Context) ([]Rendered, error) {
	if g.library == nil {
		return nil, errors.New("no library source configured")
	}
	if g.grammar == nil {
		return nil, errors.New("no command grammar configured")
	}
	lib, err := g.library.Library(ctx)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	api := extract.Library(lib, g.extract)
	g.logger.Debug("extracted library", "version", api.Version, "modules", len(api.Modules))
	cli := extract.Command(g.grammar, "")
	g.logger.Debug("extracted commands", "prog", cli.Prog, "subcommands", len(cli.Subcommands))
	return []Rendered{
		{Name: ArtifactAPI, File: ArtifactAPI + ".md", Content: render.API(api, g.render)},
		{Name: ArtifactCLI, File: ArtifactCLI + ".md", Content: render.CLI(cli, g.render)},
	}, nil
}

// Generate writes every document into dir, replacing existing files, and
// returns the written paths. A failed write aborts the run; documents
// written before it are left in place.
func (g *Generator) Generate(ctx context.Context, dir string) ([]string, error) {
	docs, err := g.Render(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	written := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(dir, doc.File)
		if err := afero.WriteFile(g.fs, path, doc.Content, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		g.logger.Info("generated", "artifact", doc.Name, "path", path, "bytes", len(doc.Content))
		written = append(written, path)
	}
	return written, nil
}

// Check compares freshly rendered documents with the files in dir without
// writing anything. Every document is checked even after a divergence.
func (g *Generator) Check(ctx context.Context, dir string) (*Report, error) {
	docs, err := g.Render(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.File)
		current, err := afero.ReadFile(g.fs, path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.add(Divergence{Artifact: doc.Name, Path: path, Kind: Missing})
		case err != nil:
			g.logger.Warn("cannot read document", "path", path, "err", err)
			report.add(Divergence{Artifact: doc.Name, Path: path, Kind: Unreadable, Reason: err.Error()})
		case !bytes.Equal(current, doc.Content):
			section, _ := mddiff.FirstDivergence(doc.Content, current)
			report.add(Divergence{Artifact: doc.Name, Path: path, Kind: OutOfDate, Section: section})
		default:
			g.logger.Debug("up to date", "artifact", doc.Name, "path", path)
		}
	}
	return report, nil
}
