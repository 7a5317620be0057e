package i18n

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns file content into catalogs keyed by language.
type Parser interface {
	Parse(content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by extension, or returns nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return JSONParser{}
	case "yaml", "yml":
		return YAMLParser{}
	default:
		return nil
	}
}

func catalogs(data map[string]any) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		m, ok := asMap(v)
		if !ok {
			return nil, &structureError{lang: lang, got: v}
		}
		out[lang] = m
	}
	return out, nil
}

type structureError struct {
	lang string
	got  any
}

func (e *structureError) Error() string {
	return fmt.Sprintf("%s: language %q: expected map, got %T", ErrInvalidStructure, e.lang, e.got)
}

func (e *structureError) Unwrap() error { return ErrInvalidStructure }
