// Package mddiff locates where two Markdown documents start to differ.
package mddiff

import (
	"bytes"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	gmparser "github.com/gomarkdown/markdown/parser"
)

type block struct {
	heading string
	html    string
}

// FirstDivergence compares want and got block by block and returns the
// text of the heading under which they first differ. The section is ""
// when the difference precedes every heading. differs is false only when
// the documents are byte-identical.
func FirstDivergence(want, got []byte) (section string, differs bool) {
	if bytes.Equal(want, got) {
		return "", false
	}
	wantBlocks, gotBlocks := blocks(want), blocks(got)
	for i := 0; i < len(wantBlocks) && i < len(gotBlocks); i++ {
		w := wantBlocks[i]
		if w.html != gotBlocks[i].html {
			if w.heading != "" {
				return w.heading, true
			}
			return section, true
		}
		if w.heading != "" {
			section = w.heading
		}
	}
	return section, true
}

func blocks(src []byte) []block {
	doc := gm.Parse(src, gmparser.NewWithExtensions(gmparser.CommonExtensions))
	var out []block
	for _, child := range doc.GetChildren() {
		renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
		b := block{html: string(gm.Render(child, renderer))}
		if h, ok := child.(*ast.Heading); ok {
			b.heading = headingText(h)
		}
		out = append(out, b)
	}
	return out
}

func headingText(h *ast.Heading) string {
	var b strings.Builder
	ast.WalkFunc(h, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Text:
			b.Write(n.Literal)
		case *ast.Code:
			b.Write(n.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
