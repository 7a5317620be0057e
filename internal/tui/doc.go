// Package tui renders a form.Controller with bubbletea.
//
// Tab and shift+tab move focus across the fields and the submit button.
// Leaving a field blurs it. Enter on a field moves on; enter on the button
// submits, but only while the form is valid. Esc quits.
package tui
