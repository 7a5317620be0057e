// Package form binds user input events to schema validation.
//
// A Controller owns the live state of one form: the value of each field, its
// error, its touched flag and the derived IsValid flag. Rendering layers feed
// it events (SetValue on input, Blur when focus leaves a field, Submit) and
// draw the snapshots it returns or publishes to subscribers.
//
// # Trigger policy
//
// Validation always runs on blur. It runs on value change only for fields
// that have been blurred at least once, so a user typing into a field for
// the first time is not shown errors mid-word. WithRevalidateMode(RevalidateOnBlur)
// turns change-time validation off entirely.
//
// # Field state machine
//
// Each field moves between three statuses:
//
//	untouched --blur/submit--> touched_valid | touched_invalid
//	touched_* --change/blur/submit--> touched_valid | touched_invalid
//	any --reset--> untouched
//
// A change event has no transition from untouched.
//
// # Validity
//
// IsValid is true when no field shows an error and every field is settled.
// A field is settled once it is touched and has not changed since it was last
// validated. An optional field that holds "" is also settled. Under
// AcceptValidDefaults, so is an unchanged required field whose non-empty
// default passed validation.
//
// # Usage
//
//	c, err := form.New(loginSchema, map[string]string{"email": "", "password": ""})
//	if err != nil {
//		return err
//	}
//	cancel := c.Subscribe(func(s form.FormState) { render(s) })
//	defer cancel()
//
//	c.SetValue(ctx, "email", "user@example.com")
//	c.Blur(ctx, "email")
//
// Controllers are not safe for concurrent use.
package form
