package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// actionContext returns the context for one user action: every request the
// action makes carries the same request id.
func (m appModel) actionContext(op todolist.Op) context.Context {
	requestID := utils.NewRequestID()
	m.logger.Debug().Str("op", string(op)).Str("request_id", requestID).Msg("action started")
	return utils.WithRequestID(m.ctx, requestID)
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx := m.actionContext(todolist.OpLoad)
	todos := m.todos
	return func() tea.Msg {
		return loadedMsg{err: todos.Load(ctx)}
	}
}

func (m appModel) cmdCreate(name, description string) tea.Cmd {
	ctx := m.actionContext(todolist.OpCreate)
	todos := m.todos
	return func() tea.Msg {
		todo, err := todos.Create(ctx, name, description)
		return createdMsg{todo: todo, err: err}
	}
}

// cmdDelete runs a deletion the user has already confirmed.
func (m appModel) cmdDelete(todo models.Todo) tea.Cmd {
	ctx := m.actionContext(todolist.OpDelete)
	todos := m.todos
	return func() tea.Msg {
		err := todos.Delete(ctx, todo.ID, todolist.Confirmed)
		return deletedMsg{todo: todo, err: err}
	}
}

func cmdCopyToClipboard(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// copyValue is the clipboard text of a todo: its name, then the description.
func copyValue(todo models.Todo) string {
	if !todo.HasDescription() {
		return todo.Name
	}
	return todo.Name + "\n" + todo.Description
}
