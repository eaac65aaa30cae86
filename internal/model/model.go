// Package model holds the normalized representation of documentable
// entities shared by the extractors and the Markdown renderers.
//
// Values in this package are snapshots: they are built once per run and
// never mutated afterwards.
package model

// Library is a documentation snapshot of a whole library.
type Library struct {
	Version string
	Text    string
	Modules []ModuleDoc
}

// ModuleDoc documents a single module. Classes and Functions are sorted by
// name and contain only entities defined by the module itself.
type ModuleDoc struct {
	Name      string
	Text      string
	Classes   []ClassDoc
	Functions []FunctionDoc
}

// ClassDoc documents a class-like type. Methods keep discovery order.
type ClassDoc struct {
	Name    string
	Text    string
	Methods []MethodDoc
}

// MethodDoc documents a member function of a class.
type MethodDoc struct {
	Name      string
	Signature string
	Text      string
	// Constructor marks the designated constructor of the class.
	Constructor bool
	// Bound reports that Signature lists an implicit receiver as its first
	// parameter.
	Bound bool
}

// FunctionDoc documents a module-level function.
type FunctionDoc struct {
	Name      string
	Signature string
	Text      string
}

// Arity describes how many values an argument consumes.
type Arity string

const (
	ArityOne        Arity = ""
	ArityNone       Arity = "0"
	ArityOptional   Arity = "?"
	ArityZeroOrMore Arity = "*"
	ArityOneOrMore  Arity = "+"
)

// ArgumentDoc documents a single option or positional argument.
type ArgumentDoc struct {
	DisplayName string
	Help        string
	Required    bool
	// Default is nil when the argument has no default worth showing.
	Default any
	Choices []string
	Arity   Arity
}

// CommandDoc documents a command and, recursively, its subcommands.
//
// Subcommands is keyed by registered name; several keys may map to
// structurally identical commands when a command is registered under
// aliases. Use package alias to collapse them before rendering.
type CommandDoc struct {
	Prog        string
	Description string
	Epilog      string
	Arguments   []ArgumentDoc
	Subcommands map[string]*CommandDoc
}

// AliasGroup is a set of sibling command names sharing one grammar.
type AliasGroup struct {
	Canonical string
	Aliases   []string
	Command   *CommandDoc
}

type suppressed struct{}

func (suppressed) String() string { return "==SUPPRESS==" }

// Suppress is the default value meaning "no default should be displayed".
var Suppress any = suppressed{}

// IsSuppressed reports whether v is the Suppress sentinel.
func IsSuppressed(v any) bool {
	_, ok := v.(suppressed)
	return ok
}
