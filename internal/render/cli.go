package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/refdoc/internal/alias"
	"github.com/agentflare-ai/refdoc/internal/model"
)

// CLI renders the command reference rooted at cmd.
func CLI(cmd *model.CommandDoc, opts Options) []byte {
	var buf bytes.Buffer
	newRenderer(opts).renderCommand(&buf, cmd, 1, "")
	return finish(&buf)
}

// renderCommand writes cmd at the given depth. parent is the command path
// below the program name, empty for the root.
func (r *markdownRenderer) renderCommand(w io.Writer, cmd *model.CommandDoc, depth int, parent string) {
	if depth == 1 {
		fmt.Fprintf(w, "# %s CLI Reference\n\n", r.project)
	}
	writeText(w, cmd.Description)
	if len(cmd.Arguments) > 0 {
		fmt.Fprint(w, "**Options:**\n\n")
		for _, arg := range cmd.Arguments {
			fmt.Fprintln(w, optionLine(arg))
		}
		fmt.Fprintln(w)
	}
	if len(cmd.Subcommands) == 0 {
		return
	}
	if depth == 1 {
		fmt.Fprint(w, "## Commands\n\n")
	}
	for _, group := range alias.Resolve(cmd.Subcommands) {
		full := strings.TrimSpace(parent + " " + group.Canonical)
		fmt.Fprintf(w, "%s `%s %s`", strings.Repeat("#", depth+1), r.project, full)
		if len(group.Aliases) > 0 {
			fmt.Fprintf(w, " (aliases: %s)", strings.Join(group.Aliases, ", "))
		}
		fmt.Fprint(w, "\n\n")
		r.renderCommand(w, group.Command, depth+1, full)
	}
}

func optionLine(arg model.ArgumentDoc) string {
	line := fmt.Sprintf("- `%s`: %s", arg.DisplayName, arg.Help)
	if arg.Default != nil && !model.IsSuppressed(arg.Default) {
		line += fmt.Sprintf(" (default: `%v`)", arg.Default)
	}
	return strings.TrimRight(line, " ")
}
