package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line free-form input.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a new styled multi-line input.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Focus()

	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// IsBlank reports whether the input is empty or whitespace-only.
func (t TextArea) IsBlank() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}

// SetValue replaces the current input value.
func (t *TextArea) SetValue(v string) {
	t.Model.SetValue(v)
}

// Reset clears the input.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

// Focus gives the input keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// SetSize adjusts the visible dimensions.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}
