// Package extract turns library descriptors and command grammars into the
// documentation model.
package extract

import (
	"sort"

	"github.com/agentflare-ai/refdoc/internal/model"
	"github.com/agentflare-ai/refdoc/internal/registry"
)

// Options controls which modules are documented and in what order.
type Options struct {
	// Exclude names modules that are never documented.
	Exclude []string
	// Trailing names modules moved after all others, in this order.
	Trailing []string
}

// DefaultOptions leaves out the output formatting module and lists the
// error reference last.
var DefaultOptions = Options{
	Exclude:  []string{"formatters"},
	Trailing: []string{"errors"},
}

// Library extracts every visible, non-excluded module of lib. Modules are
// sorted by name, then the trailing modules are moved to the end.
func Library(lib *registry.Library, opts Options) model.Library {
	out := model.Library{
		Version: lib.Version,
		Text:    lib.Doc,
	}
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}
	var modules []*registry.Module
	for _, m := range lib.Modules {
		if m == nil || !m.Visible || excluded[m.Name] {
			continue
		}
		modules = append(modules, m)
	}
	sort.SliceStable(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})
	for _, m := range moveTrailing(modules, opts.Trailing) {
		out.Modules = append(out.Modules, Module(m))
	}
	return out
}

func moveTrailing(modules []*registry.Module, trailing []string) []*registry.Module {
	for _, name := range trailing {
		for i, m := range modules {
			if m.Name != name {
				continue
			}
			modules = append(append(modules[:i:i], modules[i+1:]...), m)
			break
		}
	}
	return modules
}

// Module extracts the visible classes and functions defined by m.
// Symbols whose origin is another module are re-exports and are skipped,
// as are symbols of any other kind.
func Module(m *registry.Module) model.ModuleDoc {
	doc := model.ModuleDoc{
		Name: m.Name,
		Text: m.Doc,
	}
	for _, sym := range m.Symbols {
		if sym == nil || !sym.Visible || sym.Origin != m.Path {
			continue
		}
		switch sym.Kind {
		case registry.KindClass:
			doc.Classes = append(doc.Classes, class(sym))
		case registry.KindFunction:
			doc.Functions = append(doc.Functions, model.FunctionDoc{
				Name:      sym.Name,
				Signature: signature(sym.Signature),
				Text:      sym.Doc,
			})
		}
	}
	sort.SliceStable(doc.Classes, func(i, j int) bool {
		return doc.Classes[i].Name < doc.Classes[j].Name
	})
	sort.SliceStable(doc.Functions, func(i, j int) bool {
		return doc.Functions[i].Name < doc.Functions[j].Name
	})
	return doc
}

func class(sym *registry.Symbol) model.ClassDoc {
	doc := model.ClassDoc{
		Name: sym.Name,
		Text: sym.Doc,
	}
	for _, m := range sym.Members {
		if m == nil || (!m.Visible && !m.Constructor) {
			continue
		}
		doc.Methods = append(doc.Methods, model.MethodDoc{
			Name:        m.Name,
			Signature:   signature(m.Signature),
			Text:        m.Doc,
			Constructor: m.Constructor,
			Bound:       m.Bound,
		})
	}
	return doc
}

// signature derives a signature, degrading to "" when that fails.
func signature(fn registry.SignatureFunc) string {
	if fn == nil {
		return ""
	}
	sig, err := fn()
	if err != nil {
		return ""
	}
	return sig
}
