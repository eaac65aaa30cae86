package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/refdoc/internal/model"
)

// API renders the library reference.
func API(lib model.Library, opts Options) []byte {
	var buf bytes.Buffer
	newRenderer(opts).renderLibrary(&buf, lib)
	return finish(&buf)
}

func (r *markdownRenderer) renderLibrary(w io.Writer, lib model.Library) {
	fmt.Fprintf(w, "# %s API Reference\n\n", r.project)
	fmt.Fprintf(w, "Version: %s\n\n", lib.Version)
	writeText(w, lib.Text)
	for _, m := range lib.Modules {
		r.renderModule(w, m)
	}
}

func (r *markdownRenderer) renderModule(w io.Writer, m model.ModuleDoc) {
	fmt.Fprintf(w, "## %s.%s\n\n", r.project, m.Name)
	writeText(w, m.Text)
	for _, c := range m.Classes {
		fmt.Fprintf(w, "### class `%s`\n\n", c.Name)
		writeText(w, c.Text)
		for _, method := range c.Methods {
			fmt.Fprintf(w, "#### `%s`\n\n", methodTitle(c.Name, method))
			writeText(w, method.Text)
		}
	}
	for _, f := range m.Functions {
		fmt.Fprintf(w, "### `%s%s`\n\n", f.Name, f.Signature)
		writeText(w, f.Text)
	}
}

// methodTitle names the constructor after its class. Bound signatures lose
// their receiver.
func methodTitle(class string, m model.MethodDoc) string {
	sig := m.Signature
	if m.Bound {
		sig = stripReceiver(sig)
	}
	if m.Constructor {
		return class + sig
	}
	return m.Name + sig
}

// stripReceiver drops the first parameter of a parenthesized parameter
// list: "(self, a, b) int" becomes "(a, b) int" and "(self)" becomes "()".
// Signatures not starting with a parameter list are returned unchanged.
func stripReceiver(sig string) string {
	if !strings.HasPrefix(sig, "(") {
		return sig
	}
	depth := 0
	for i, r := range sig {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return "()" + sig[i+1:]
			}
		case ',':
			if depth == 1 {
				return "(" + strings.TrimLeft(sig[i+1:], " ")
			}
		}
	}
	return sig
}
