// Package grammar declares command-line grammars as plain, read-only trees.
package grammar

import "github.com/agentflare-ai/refdoc/internal/model"

// Action tells what an argument does when given.
type Action int

const (
	// ActionStore is an ordinary argument that stores a value.
	ActionStore Action = iota
	// ActionHelp shows help and exits.
	ActionHelp
	// ActionVersion shows the version and exits.
	ActionVersion
)

// Arg is an option or positional argument.
type Arg struct {
	// Flags lists the option spellings, e.g. "-o", "--output". Positional
	// arguments have no flags.
	Flags    []string
	Name     string
	Help     string
	Required bool
	// Default is nil or model.Suppress when no default should be shown.
	Default any
	Choices []string
	Arity   model.Arity
	Action  Action
}

// Command is a node of a command tree. A subcommand registered under
// several names appears once per name in Subcommands.
type Command struct {
	Prog        string
	Description string
	Epilog      string
	Args        []Arg
	Subcommands map[string]*Command
}

// Add registers sub under name and each alias, and returns sub.
func (c *Command) Add(sub *Command, name string, aliases ...string) *Command {
	if c.Subcommands == nil {
		c.Subcommands = make(map[string]*Command)
	}
	c.Subcommands[name] = sub
	for _, alias := range aliases {
		c.Subcommands[alias] = sub
	}
	return sub
}
