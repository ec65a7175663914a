package tui

import (
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type listModel struct {
	idx int
}

// clamp keeps the cursor inside a list of n todos.
func (m *listModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) down(n int) {
	if m.idx < n-1 {
		m.idx++
	}
}

func (m listModel) selected(view todolist.View) (models.Todo, bool) {
	if m.idx < 0 || m.idx >= len(view.Todos) {
		return models.Todo{}, false
	}
	return view.Todos[m.idx], true
}

// View renders the todos, or the empty-state marker. A todo's description
// paragraph is rendered only when the description is not empty.
func (m listModel) View(view todolist.View, focused bool, width int) string {
	if marker := view.EmptyMarker(); marker != "" {
		return markerStyle.Render(marker)
	}

	var b strings.Builder
	for i, todo := range view.Todos {
		if i > 0 {
			b.WriteString("\n")
		}

		cursor := "  "
		name := todoNameStyle.Render(todo.Name)
		if focused && i == m.idx {
			cursor = "> "
			name = selectedStyle.Render(todo.Name)
		}
		b.WriteString(cursor)
		b.WriteString(name)

		if todo.HasDescription() {
			b.WriteString("\n")
			style := descriptionStyle
			if width > 8 {
				style = style.Width(width - 8)
			}
			b.WriteString(style.Render(todo.Description))
		}
	}

	return b.String()
}
