package extract

import (
	"strings"

	"github.com/agentflare-ai/refdoc/internal/grammar"
	"github.com/agentflare-ai/refdoc/internal/model"
)

// VersionHelp is the help text of every version argument.
const VersionHelp = "Show version and exit"

// Command extracts cmd and, recursively, every subcommand. prefix is the
// command path leading to cmd, ending in a space when non-empty.
//
// Arguments keep declaration order. Help arguments are dropped and version
// arguments are normalized. Every registered subcommand name gets its own
// CommandDoc, so aliases show up as duplicate entries.
func Command(cmd *grammar.Command, prefix string) *model.CommandDoc {
	doc := &model.CommandDoc{
		Prog:        cmd.Prog,
		Description: cmd.Description,
		Epilog:      cmd.Epilog,
	}
	if doc.Prog == "" {
		doc.Prog = strings.TrimSpace(prefix)
	}
	for _, arg := range cmd.Args {
		switch arg.Action {
		case grammar.ActionHelp:
			continue
		case grammar.ActionVersion:
			doc.Arguments = append(doc.Arguments, model.ArgumentDoc{
				DisplayName: displayName(arg),
				Help:        VersionHelp,
				Arity:       model.ArityNone,
			})
		default:
			doc.Arguments = append(doc.Arguments, argument(arg))
		}
	}
	if len(cmd.Subcommands) > 0 {
		doc.Subcommands = make(map[string]*model.CommandDoc, len(cmd.Subcommands))
	}
	for name, sub := range cmd.Subcommands {
		if sub == nil {
			continue
		}
		doc.Subcommands[name] = Command(sub, prefix+name+" ")
	}
	return doc
}

func argument(arg grammar.Arg) model.ArgumentDoc {
	doc := model.ArgumentDoc{
		DisplayName: displayName(arg),
		Help:        arg.Help,
		Required:    arg.Required,
		Arity:       arg.Arity,
	}
	if !model.IsSuppressed(arg.Default) {
		doc.Default = arg.Default
	}
	if len(arg.Choices) > 0 {
		doc.Choices = append([]string(nil), arg.Choices...)
	}
	return doc
}

func displayName(arg grammar.Arg) string {
	if len(arg.Flags) > 0 {
		return strings.Join(arg.Flags, ", ")
	}
	return arg.Name
}
