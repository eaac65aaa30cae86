// Package transliterate converts text between scripts.
package transliterate

// DefaultID is used when no transliterator ID is given.
const DefaultID = "Any-Latin"

// Transliterator converts text using a fixed rule set.
type Transliterator struct {
	id string
}

// NewTransliterator creates a Transliterator for id.
func NewTransliterator(id string, reverse bool) (*Transliterator, error) {
	return &Transliterator{id: id}, nil
}

// Transliterate converts text.
func (t *Transliterator) Transliterate(text string) string {
	return text
}

// ID reports the transliterator ID.
func (t *Transliterator) ID() string {
	return t.id
}

func (t *Transliterator) rules() []string {
	return nil
}

// ListIDs returns the available transliterator IDs.
func ListIDs() []string {
	return []string{DefaultID}
}

func registry() map[string]string {
	return nil
}
