package i18n

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// JSONParser reads the same layout as YAMLParser from JSON.
type JSONParser struct{}

func (JSONParser) Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return catalogs(data)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
