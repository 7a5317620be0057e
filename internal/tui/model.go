package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/form"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

// Model renders a form.Controller in the terminal. Focus moves over every
// field and then the submit button; leaving a field blurs it.
type Model struct {
	ctx   context.Context
	ctrl  *form.Controller
	texts login.Texts

	names  []string
	inputs []textinput.Model
	focus  int

	state    form.FormState
	result   string
	accepted bool
	values   map[string]string

	keys   keyMap
	help   help.Model
	styles styles
}

var _ tea.Model = Model{}

// New builds the model over ctrl. Field labels, placeholders and initial
// values come from the controller's views.
func New(ctx context.Context, ctrl *form.Controller, texts login.Texts) Model {
	m := Model{
		ctx:    ctx,
		ctrl:   ctrl,
		texts:  texts,
		state:  ctrl.State(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
	}
	for _, v := range ctrl.Views() {
		m.names = append(m.names, v.Name)
		m.inputs = append(m.inputs, newInput(v))
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func newInput(v form.FieldView) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = v.Placeholder
	ti.SetValue(v.Value)
	ti.Width = 32
	if v.Type == schema.TypePassword {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(kmsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Next):
		cmd := m.moveFocus(1)
		return m, cmd
	case key.Matches(kmsg, m.keys.Prev):
		cmd := m.moveFocus(-1)
		return m, cmd
	case key.Matches(kmsg, m.keys.Submit):
		if m.onButton() {
			return m.submit()
		}
		cmd := m.moveFocus(1)
		return m, cmd
	}
	return m.updateInput(msg)
}

// updateInput forwards msg to the focused input and reports a value change
// to the controller.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.onButton() {
		return m, nil
	}
	i := m.focus
	before := m.inputs[i].Value()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	if v := m.inputs[i].Value(); v != before {
		if state, err := m.ctrl.SetValue(m.ctx, m.names[i], v); err == nil {
			m.state = state
			m.result = ""
		}
	}
	return m, cmd
}

// moveFocus blurs the field being left, then focuses the next stop,
// wrapping around the button.
func (m *Model) moveFocus(delta int) tea.Cmd {
	stops := len(m.inputs) + 1
	if !m.onButton() {
		m.inputs[m.focus].Blur()
		if state, err := m.ctrl.Blur(m.ctx, m.names[m.focus]); err == nil {
			m.state = state
		}
	}

	m.focus = ((m.focus+delta)%stops + stops) % stops
	if m.onButton() {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

// submit runs only while the form is valid. An accepted record ends the
// program; Values returns it afterwards.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.ctrl.IsValid() {
		return m, nil
	}
	values, err := m.ctrl.Submit(m.ctx)
	m.state = m.ctrl.State()
	if err != nil {
		m.accepted = false
		m.result = m.texts.Rejected
		return m, nil
	}
	m.accepted = true
	m.values = values
	m.result = m.texts.Accepted
	return m, tea.Quit
}

func (m Model) onButton() bool { return m.focus == len(m.inputs) }

// Values returns the submitted record and whether a submit was accepted.
func (m Model) Values() (map[string]string, bool) {
	return m.values, m.accepted
}

// State returns the last snapshot the model rendered.
func (m Model) State() form.FormState { return m.state }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.texts.Title))
	b.WriteString("\n")

	for i, name := range m.names {
		v, _ := m.ctrl.Field(name)
		label := v.Label
		if label == "" {
			label = v.Placeholder
		}
		if i == m.focus {
			b.WriteString(m.styles.FocusedLabel.Render(label))
		} else {
			b.WriteString(m.styles.Label.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(v.Error))
		b.WriteString("\n")
	}

	button := m.styles.Button
	switch {
	case !m.state.IsValid:
		button = m.styles.ButtonOff
	case m.onButton():
		button = m.styles.ButtonActive
	}
	b.WriteString(button.Render(m.texts.Submit))
	b.WriteString("\n")

	if m.result != "" {
		style := m.styles.Rejected
		if m.accepted {
			style = m.styles.Accepted
		}
		b.WriteString(style.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, b.String()))
}
