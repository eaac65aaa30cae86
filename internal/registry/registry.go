// Package registry describes the public surface of a library as plain
// descriptors: modules, the symbols they hold, and class members.
//
// Descriptors carry explicit visibility and origin information so the
// extractor never has to infer them from naming conventions.
package registry

import "context"

// Kind classifies a module member.
type Kind int

const (
	// KindOther covers members that are not documented, such as constants.
	KindOther Kind = iota
	KindClass
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	default:
		return "other"
	}
}

// SignatureFunc derives the textual parameter list of a function lazily.
type SignatureFunc func() (string, error)

// Library describes a library and its modules.
type Library struct {
	Version string
	Doc     string
	Modules []*Module
}

// Module is a named container of symbols. Path is the identity symbols are
// compared against to decide whether they are defined here.
type Module struct {
	Name    string
	Path    string
	Doc     string
	Visible bool
	Symbols []*Symbol
}

// Symbol is a member of a module.
type Symbol struct {
	Name string
	// Origin is the path of the module that defines the symbol.
	Origin    string
	Kind      Kind
	Doc       string
	Visible   bool
	Signature SignatureFunc
	// Members lists the functions bound to a class, in discovery order.
	Members []*Member
}

// Member is a function bound to a class.
type Member struct {
	Name        string
	Doc         string
	Visible     bool
	Constructor bool
	// Bound reports that the signature includes the receiver as its first
	// parameter.
	Bound     bool
	Signature SignatureFunc
}

// Source produces a library descriptor.
type Source interface {
	Library(ctx context.Context) (*Library, error)
}

// Static is a Source over a declared descriptor.
type Static struct {
	Lib *Library
}

// Library returns the declared descriptor.
func (s Static) Library(context.Context) (*Library, error) {
	return s.Lib, nil
}

// Fixed returns a SignatureFunc that always yields sig.
func Fixed(sig string) SignatureFunc {
	return func() (string, error) { return sig, nil }
}
