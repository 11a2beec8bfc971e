package multilingual

import "context"

type languageKey struct{}

// WithLanguage stores the reader's preferred language in ctx.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// FromContext returns the preferred language stored in ctx, or DefaultLanguage.
func FromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(languageKey{}).(Language); ok && lang.Valid() {
		return lang
	}
	return DefaultLanguage
}
