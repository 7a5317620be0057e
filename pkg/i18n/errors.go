package i18n

import "errors"

var (
	ErrNilAdapter    = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage = errors.New("i18n: empty language code")
	ErrNilCatalog    = errors.New("i18n: nil catalog")

	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrLoadingCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrNoTranslations   = errors.New("no translation files found")
)
