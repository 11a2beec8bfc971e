package multilingual

// ResolvedText holds the two display slots of a multilingual value.
type ResolvedText struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// ResolveBilingual picks the prominent and auxiliary text for value.
//
// For English readers the primary slot still shows a localized name (the
// first non-empty non-English variant) and English moves to the secondary
// slot. For everyone else the preferred variant is primary, falling back
// through the non-English variants, and English is secondary. An empty
// secondary slot takes the primary text.
func ResolveBilingual(value string, preferred Language) ResolvedText {
	field := ParseField(value)
	english := field.Get(English)

	var primary string
	if preferred == English {
		primary = firstNonEmpty(field, English)
	} else {
		primary = field.Get(preferred)
		if primary == "" {
			primary = firstNonEmpty(field, preferred, English)
		}
	}

	secondary := english
	if secondary == "" {
		secondary = primary
	}

	return ResolvedText{Primary: primary, Secondary: secondary}
}

// ResolveSingle returns the preferred variant, or the first non-empty one in
// FallbackOrder.
func ResolveSingle(value string, preferred Language) string {
	field := ParseField(value)
	if text := field.Get(preferred); text != "" {
		return text
	}
	return firstNonEmpty(field)
}

func firstNonEmpty(field Field, skip ...Language) string {
	for _, lang := range FallbackOrder {
		if containsLanguage(skip, lang) {
			continue
		}
		if text := field.Get(lang); text != "" {
			return text
		}
	}
	return ""
}

func containsLanguage(langs []Language, lang Language) bool {
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}
