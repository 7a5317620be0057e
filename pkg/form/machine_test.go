package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMachine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		from   FieldStatus
		event  FieldEvent
		passed bool
		want   FieldStatus
	}{
		{"blur fails from untouched", StatusUntouched, EventBlur, false, StatusTouchedInvalid},
		{"blur passes from untouched", StatusUntouched, EventBlur, true, StatusTouchedValid},
		{"submit fails from untouched", StatusUntouched, EventSubmit, false, StatusTouchedInvalid},
		{"change fails from invalid", StatusTouchedInvalid, EventChange, false, StatusTouchedInvalid},
		{"change passes from invalid", StatusTouchedInvalid, EventChange, true, StatusTouchedValid},
		{"change fails from valid", StatusTouchedValid, EventChange, false, StatusTouchedInvalid},
		{"change passes from valid", StatusTouchedValid, EventChange, true, StatusTouchedValid},
		{"blur fails from valid", StatusTouchedValid, EventBlur, false, StatusTouchedInvalid},
		{"reset from invalid", StatusTouchedInvalid, EventReset, false, StatusUntouched},
		{"reset from valid", StatusTouchedValid, EventReset, true, StatusUntouched},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := fieldMachine{current: tc.from}
			require.True(t, m.canFire(tc.event))
			require.NoError(t, m.fire(tc.event, tc.passed))
			assert.Equal(t, tc.want, m.current)
		})
	}

	t.Run("change from untouched has no transition", func(t *testing.T) {
		t.Parallel()
		m := newFieldMachine()
		assert.False(t, m.canFire(EventChange))

		err := m.fire(EventChange, true)
		require.Error(t, err)
		assert.True(t, IsNoTransitionError(err))
		assert.Equal(t, StatusUntouched, m.current)
		assert.Equal(t, "form: no transition from status 'untouched' for event 'change'", err.Error())
	})

	t.Run("touched statuses", func(t *testing.T) {
		t.Parallel()
		assert.False(t, StatusUntouched.Touched())
		assert.True(t, StatusTouchedInvalid.Touched())
		assert.True(t, StatusTouchedValid.Touched())
	})
}
