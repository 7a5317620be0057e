package schema

import "errors"

var (
	ErrEmptyFieldName     = errors.New("schema: field name is empty")
	ErrDuplicateField     = errors.New("schema: duplicate field name")
	ErrUnknownFieldType   = errors.New("schema: unknown field type")
	ErrUnknownConstraint  = errors.New("schema: unknown constraint kind")
	ErrInvalidConstraint  = errors.New("schema: invalid constraint")
	ErrUnsupportedFormat  = errors.New("schema: unsupported declaration format")
	ErrFailedToDecode     = errors.New("schema: failed to decode declaration")
	ErrFailedToReadSchema = errors.New("schema: failed to read declaration file")
)
