// Package web serves the login form as a server-rendered page driven by
// Datastar.
//
// The page binds each input to a signal named after its field. Input and blur
// events post every signal to /login/input and /login/blur; the handler
// restores the draft's form.Controller, applies the event and answers with a
// datastar-patch-signals event carrying errors, touched and isValid. Submit
// also patches #result with the outcome.
//
// Drafts are keyed by the loginform_draft cookie and kept in a Store,
// either MemoryStore or RedisStore.
package web
