package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	nameCharLimit        = 50
	descriptionCharLimit = 1000
)

// createFormModel holds the inputs of a new todo.
type createFormModel struct {
	name        textinput.Model
	description textarea.Model
	submitting  bool
}

func newCreateFormModel() createFormModel {
	name := textinput.New()
	name.Placeholder = "What needs to be done?"
	name.CharLimit = nameCharLimit
	name.Prompt = "Name: "

	description := textarea.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = descriptionCharLimit
	description.ShowLineNumbers = false
	description.SetHeight(3)

	return createFormModel{name: name, description: description}
}

func (m *createFormModel) setWidth(width int) {
	if width > 8 {
		m.name.Width = width - 8 - len(m.name.Prompt)
		m.description.SetWidth(width - 8)
	}
}

// focus moves the cursor to the given field and blurs the other.
func (m *createFormModel) focus(f focus) tea.Cmd {
	switch f {
	case focusName:
		m.description.Blur()
		return m.name.Focus()
	case focusDescription:
		m.name.Blur()
		return m.description.Focus()
	default:
		m.name.Blur()
		m.description.Blur()
		return nil
	}
}

func (m *createFormModel) update(f focus, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return cmd
}

func (m createFormModel) values() (name, description string) {
	return m.name.Value(), m.description.Value()
}

func (m *createFormModel) reset() {
	m.name.Reset()
	m.description.Reset()
}

func (m createFormModel) View(f focus) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New todo"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")

	button := "[ Add ]"
	if m.submitting {
		button = "[ Adding... ]"
	} else if f == focusName || f == focusDescription {
		button = selectedStyle.Render(button)
	}
	b.WriteString(button)

	return b.String()
}
