// Package i18n provides message catalogs with named placeholders and
// request language negotiation.
//
// Catalogs are nested maps keyed by language, loaded through a
// TranslationAdapter (MapAdapter, FileAdapter, FSAdapter) and a Parser
// (YAMLParser, JSONParser). Keys use dot notation:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.YAMLParser{}, locales, "locales"),
//		i18n.WithDefaultLanguage("pt-BR"),
//	)
//	tr.T("en", "validation.min_length", "min", "6")
//
// ParseAcceptLanguage and DefaultLangExtractor negotiate a language with
// golang.org/x/text/language; Middleware stores it in the request context.
package i18n
