// Package render writes the documentation model as Markdown.
//
// Output is a pure function of the input: the same model always renders to
// the same bytes.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DefaultProject is the project name used when Options leaves it empty.
const DefaultProject = "icukit"

// Options configures rendering.
type Options struct {
	// Project prefixes titles, module headings and command paths.
	Project string
}

func (o Options) project() string {
	if o.Project == "" {
		return DefaultProject
	}
	return o.Project
}

type markdownRenderer struct {
	project string
}

func newRenderer(opts Options) *markdownRenderer {
	return &markdownRenderer{project: opts.project()}
}

// writeText writes text as a paragraph block, or nothing when it is blank.
func writeText(w io.Writer, text string) {
	if doc := docMarkdown(text); doc != "" {
		fmt.Fprintln(w, doc)
		fmt.Fprintln(w)
	}
}

// finish leaves exactly one trailing newline.
func finish(buf *bytes.Buffer) []byte {
	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, '\n')
}

func docMarkdown(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	return dedentMarkdown(trimmed)
}

// dedentMarkdown removes the indentation shared by all non-blank lines.
func dedentMarkdown(src string) string {
	lines := strings.Split(src, "\n")
	minIndent := -1
	for i, line := range lines {
		// The first line was already trimmed.
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		indent := leadingWhitespace(line)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return src
	}
	for i, line := range lines {
		if i > 0 && len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) int {
	count := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			count++
			continue
		}
		break
	}
	return count
}
