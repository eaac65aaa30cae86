package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/refdoc/internal/grammar"
)

const rootLongDesc = `
refdoc renders two Markdown references from the code itself: an API reference
for a Go package tree and a CLI reference for refdoc's own command tree.

Run it without --check to (re)write api.md and cli.md into the output directory.
Run it with --check in CI to fail when the committed references no longer match
what the code would generate.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := newCLIApp(stdout, stderr)
	cmd := &cobra.Command{
		Use:           "refdoc [flags] [package-root]",
		Short:         "Generate API and CLI reference docs as Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			grammar.ArgHelpAnnotation + "package-root": "Go package tree documented as the library",
		},
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVar(&app.opts.check, "check", false, "check that docs are up to date instead of generating them")
	flags.StringVarP(&app.opts.output, "output", "o", "", "output directory for generated docs")

	persistent := cmd.PersistentFlags()
	persistent.SortFlags = false
	persistent.StringVar(&app.opts.project, "project", "", "project name used in headings")
	persistent.StringVar(&app.opts.version, "lib-version", "", "library version printed in the API reference")
	persistent.StringVar(&app.opts.configPath, "config", "", "config file (default is ./refdoc.toml)")
	persistent.BoolVar(&app.opts.includeInternal, "include-internal", false, "document internal and main packages too")
	persistent.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		root := ""
		if len(args) == 1 {
			root = args[0]
		}
		return app.execute(cmd, root)
	}

	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newPreviewCmd(app *cliApp) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:     "preview [api|cli]",
		Aliases: []string{"show", "view"},
		Short:   "Render the references in the terminal",
		Long: strings.TrimSpace(`
Render freshly generated references as styled terminal output. Nothing is
written to disk. Without an argument both references are shown.
`),
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{"api", "cli"},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "word wrap width (0 disables wrapping)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		return app.preview(cmd, which, width)
	}
	return cmd
}

// completionScripts maps each supported shell to its cobra generator.
var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	shells := make([]string, 0, len(completionScripts))
	for shell := range completionScripts {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script",
		Long: fmt.Sprintf(`Print a completion script for one of: %s.

Load it in the current shell, for example:

  source <(refdoc completion bash)
  refdoc completion fish | source
`, strings.Join(shells, ", ")),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             shells,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		gen, ok := completionScripts[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		if err := gen(root, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("%s completion: %w", args[0], err)
		}
		return nil
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs <directory>",
		Short: "Generate one Markdown page per command",
		Long: strings.TrimSpace(`
Write a Markdown file per command using cobra's generator. The single-page
reference written by refdoc itself is usually preferable; this is kept for
sites that publish one page per command.

Example:

  refdoc gen-docs ./docs/commands
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
