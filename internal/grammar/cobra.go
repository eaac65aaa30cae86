package grammar

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentflare-ai/refdoc/internal/model"
)

const (
	// ChoicesAnnotation is the flag annotation listing accepted values.
	ChoicesAnnotation = "refdoc_choices"
	// ArgHelpAnnotation prefixes command annotations holding help text for
	// positional arguments, e.g. "refdoc_arg:directory".
	ArgHelpAnnotation = "refdoc_arg:"
)

// FromCobra converts a cobra command tree. Hidden, deprecated and help
// commands are skipped. A child with aliases is registered under its name
// and every alias, all sharing one node.
func FromCobra(cmd *cobra.Command) *Command {
	node := &Command{
		Prog:        cmd.CommandPath(),
		Description: description(cmd),
		Epilog:      strings.TrimSpace(cmd.Example),
		Args:        append(useArgs(cmd), flagArgs(cmd)...),
	}
	for _, child := range cmd.Commands() {
		if !child.IsAvailableCommand() {
			continue
		}
		node.Add(FromCobra(child), child.Name(), child.Aliases...)
	}
	return node
}

func description(cmd *cobra.Command) string {
	if long := strings.TrimSpace(cmd.Long); long != "" {
		return long
	}
	return strings.TrimSpace(cmd.Short)
}

func flagArgs(cmd *cobra.Command) []Arg {
	var (
		args       []Arg
		hasVersion bool
	)
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Deprecated != "" {
			return
		}
		arg := flagArg(f)
		switch {
		case f.Name == "help":
			arg.Action = ActionHelp
		case f.Name == "version" && cmd.Version != "":
			arg.Action = ActionVersion
			hasVersion = true
		}
		args = append(args, arg)
	})
	// cobra adds the version flag only when the command executes.
	if cmd.Version != "" && !hasVersion && cmd.Flags().Lookup("version") == nil {
		flags := []string{"--version"}
		if cmd.Flags().ShorthandLookup("v") == nil {
			flags = []string{"-v", "--version"}
		}
		args = append(args, Arg{
			Flags:  flags,
			Name:   "version",
			Arity:  model.ArityNone,
			Action: ActionVersion,
		})
	}
	return args
}

func flagArg(f *pflag.Flag) Arg {
	var flags []string
	if f.Shorthand != "" && f.ShorthandDeprecated == "" {
		flags = append(flags, "-"+f.Shorthand)
	}
	flags = append(flags, "--"+f.Name)
	arg := Arg{
		Flags:   flags,
		Name:    f.Name,
		Help:    f.Usage,
		Default: flagDefault(f),
		Arity:   flagArity(f),
		Choices: f.Annotations[ChoicesAnnotation],
	}
	if v := f.Annotations[cobra.BashCompOneRequiredFlag]; len(v) > 0 && v[0] == "true" {
		arg.Required = true
	}
	return arg
}

// flagDefault mirrors pflag's usage output: zero values are not shown.
func flagDefault(f *pflag.Flag) any {
	switch f.DefValue {
	case "", "false", "0", "0s", "[]", "map[]", "<nil>":
		return model.Suppress
	}
	return f.DefValue
}

func flagArity(f *pflag.Flag) model.Arity {
	if f.NoOptDefVal != "" {
		return model.ArityNone
	}
	typ := f.Value.Type()
	if strings.HasSuffix(typ, "Slice") || strings.HasSuffix(typ, "Array") || strings.HasPrefix(typ, "stringTo") {
		return model.ArityZeroOrMore
	}
	return model.ArityOne
}

// useArgs reads positional arguments from the usage line: <x> is
// required, [x] optional, a trailing ... makes it variadic and a|b lists
// the accepted values.
func useArgs(cmd *cobra.Command) []Arg {
	fields := strings.Fields(cmd.Use)
	if len(fields) < 2 {
		return nil
	}
	var args []Arg
	for _, field := range fields[1:] {
		if strings.Trim(field, "[]") == "flags" {
			continue
		}
		arg := positional(field)
		arg.Help = cmd.Annotations[ArgHelpAnnotation+arg.Name]
		args = append(args, arg)
	}
	return args
}

func positional(field string) Arg {
	arg := Arg{Required: true, Arity: model.ArityOne}
	name := field
	variadic := strings.HasSuffix(name, "...")
	name = strings.TrimSuffix(name, "...")
	switch {
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		name = name[1 : len(name)-1]
		arg.Required = false
		arg.Arity = model.ArityOptional
	case strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">"):
		name = name[1 : len(name)-1]
	}
	if strings.HasSuffix(name, "...") {
		name = strings.TrimSpace(strings.TrimSuffix(name, "..."))
		variadic = true
	}
	if variadic {
		if arg.Required {
			arg.Arity = model.ArityOneOrMore
		} else {
			arg.Arity = model.ArityZeroOrMore
		}
	}
	if strings.Contains(name, "|") {
		arg.Choices = strings.Split(name, "|")
	}
	arg.Name = name
	return arg
}
