// Package locale parses and describes locales.
package locale

import "github.com/agentflare-ai/refdoc/testdata/icukit/collate"

// Collator is re-exported for convenience.
type Collator = collate.Collator

// Locale identifies a language and region.
type Locale struct {
	Tag string
}

// String returns the locale tag.
func (l Locale) String() string {
	return l.Tag
}

// Parse parses a BCP 47 tag.
func Parse(tag string) (Locale, error) {
	return Locale{Tag: tag}, nil
}

// NewCollator is re-exported for convenience.
var NewCollator = collate.NewCollator
