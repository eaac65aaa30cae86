// Package collate compares strings using locale rules.
package collate

// Collator compares strings.
type Collator struct {
	locale string
}

// NewCollator returns a Collator for locale.
func NewCollator(locale string) *Collator {
	return &Collator{locale: locale}
}

// Compare orders a and b.
func (c *Collator) Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
