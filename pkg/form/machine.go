package form

// FieldStatus is the state of a field's validation state machine.
type FieldStatus string

const (
	StatusUntouched      FieldStatus = "untouched"
	StatusTouchedInvalid FieldStatus = "touched_invalid"
	StatusTouchedValid   FieldStatus = "touched_valid"
)

// Touched reports whether the field has been blurred or submitted at least once.
func (s FieldStatus) Touched() bool {
	return s == StatusTouchedInvalid || s == StatusTouchedValid
}

func (s FieldStatus) valid() bool {
	switch s {
	case StatusUntouched, StatusTouchedInvalid, StatusTouchedValid:
		return true
	}
	return false
}

// FieldEvent is an input event that can move a field between statuses.
type FieldEvent string

const (
	EventBlur   FieldEvent = "blur"
	EventChange FieldEvent = "change"
	EventSubmit FieldEvent = "submit"
	EventReset  FieldEvent = "reset"
)

// guard inspects the validation outcome that accompanies an event.
type guard func(passed bool) bool

func passes(passed bool) bool { return passed }
func fails(passed bool) bool  { return !passed }

type transition struct {
	to    FieldStatus
	guard guard
}

// onValidation branches to valid or invalid depending on the outcome.
var onValidation = []transition{
	{to: StatusTouchedValid, guard: passes},
	{to: StatusTouchedInvalid, guard: fails},
}

var toUntouched = []transition{{to: StatusUntouched}}

// fieldTransitions is [from][event][]transition. The first transition whose
// guard accepts the outcome wins. Untouched has no change transition, which is
// what keeps typing into a fresh field from showing errors.
var fieldTransitions = map[FieldStatus]map[FieldEvent][]transition{
	StatusUntouched: {
		EventBlur:   onValidation,
		EventSubmit: onValidation,
		EventReset:  toUntouched,
	},
	StatusTouchedInvalid: {
		EventBlur:   onValidation,
		EventChange: onValidation,
		EventSubmit: onValidation,
		EventReset:  toUntouched,
	},
	StatusTouchedValid: {
		EventBlur:   onValidation,
		EventChange: onValidation,
		EventSubmit: onValidation,
		EventReset:  toUntouched,
	},
}

type fieldMachine struct {
	current FieldStatus
}

func newFieldMachine() fieldMachine {
	return fieldMachine{current: StatusUntouched}
}

// canFire reports whether evt has any transition from the current status.
func (m *fieldMachine) canFire(evt FieldEvent) bool {
	return len(fieldTransitions[m.current][evt]) > 0
}

// fire moves the machine according to evt and the validation outcome.
func (m *fieldMachine) fire(evt FieldEvent, passed bool) error {
	transitions := fieldTransitions[m.current][evt]
	if len(transitions) == 0 {
		return &ErrNoTransition{Status: m.current, Event: evt}
	}

	for _, t := range transitions {
		if t.guard == nil || t.guard(passed) {
			m.current = t.to
			return nil
		}
	}

	return &ErrNoTransition{Status: m.current, Event: evt}
}
