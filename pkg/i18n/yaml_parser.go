package i18n

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads catalogs whose top-level keys are languages.
//
//	pt-BR:
//	  validation:
//	    required: Campo obrigatório
type YAMLParser struct{}

func (YAMLParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return catalogs(data)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
