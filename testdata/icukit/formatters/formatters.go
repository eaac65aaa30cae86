// Package formatters renders tabular output.
package formatters

// Table renders rows as aligned text.
func Table(rows [][]string) string {
	return ""
}
