package multilingual

import "strings"

// Delimiter separates the language variants of a multilingual field.
const Delimiter = "|"

// Field is a parsed multilingual value indexed by storage position.
type Field [5]string

// ParseField splits value on the delimiter and assigns segments positionally.
// Missing segments are empty and segments past the fifth are ignored.
func ParseField(value string) Field {
	var field Field
	if value == "" {
		return field
	}

	parts := strings.SplitN(value, Delimiter, len(field)+1)
	for i := 0; i < len(field) && i < len(parts); i++ {
		field[i] = parts[i]
	}
	return field
}

// NewField builds a field from per-language texts.
func NewField(texts map[Language]string) Field {
	var field Field
	for lang, text := range texts {
		if lang.Valid() {
			field[lang.position()] = text
		}
	}
	return field
}

// Get returns the variant for lang, or "" for an unsupported language.
func (f Field) Get(lang Language) string {
	if !lang.Valid() {
		return ""
	}
	return f[lang.position()]
}

// Map returns every supported language mapped to its (possibly empty) text.
func (f Field) Map() map[Language]string {
	texts := make(map[Language]string, len(Languages))
	for _, lang := range Languages {
		texts[lang] = f.Get(lang)
	}
	return texts
}

// IsEmpty reports whether every variant is empty.
func (f Field) IsEmpty() bool {
	for _, text := range f {
		if text != "" {
			return false
		}
	}
	return true
}

// Format encodes the field back into its delimited form, dropping trailing
// empty segments.
func (f Field) Format() string {
	last := -1
	for i, text := range f {
		if text != "" {
			last = i
		}
	}
	return strings.Join(f[:last+1], Delimiter)
}
