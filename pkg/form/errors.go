package form

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField   = errors.New("form: unknown field")
	ErrNilSchema      = errors.New("form: schema is nil")
	ErrSchemaMismatch = errors.New("form: snapshot does not match schema")
)

// ErrNoTransition reports an event that is not accepted in the field's current status.
type ErrNoTransition struct {
	Status FieldStatus
	Event  FieldEvent
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("form: no transition from status '%s' for event '%s'", e.Status, e.Event)
}

func IsNoTransitionError(err error) bool {
	var e *ErrNoTransition
	return errors.As(err, &e)
}
