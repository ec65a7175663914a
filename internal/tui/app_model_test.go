// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestModel(t *testing.T) (appModel, *mock.MockTodoAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockTodoAdapter(ctrl)
	todos := todolist.NewSynchronizer(mockAdapter, logger.Nop())

	m := newAppModel(context.Background(), todos, models.NewAppBuildInfo("1.0.0", "", "abc123"), logger.Nop())
	return m, mockAdapter
}

// loadedModel returns a model whose initial load returned todos.
func loadedModel(t *testing.T, todos ...models.Todo) (appModel, *mock.MockTodoAdapter) {
	t.Helper()
	m, mockAdapter := newTestModel(t)
	mockAdapter.EXPECT().List(gomock.Any()).Return(todos, nil)
	return run(t, m, m.Init()), mockAdapter
}

// run executes cmd synchronously and feeds the resulting messages back into
// m. Spinner ticks are dropped so no timer is ever started.
func run(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	for _, msg := range collect(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		next, _ := m.Update(msg)
		m = next.(appModel)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(t *testing.T, m appModel, k tea.KeyMsg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(appModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func todo(id int64, name, description string) models.Todo {
	return models.Todo{ID: models.NumericTodoID(id), Name: name, Description: description}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestAppModel_LoadingBeforeFirstLoad(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), "Loading todos...")
	assert.NotContains(t, m.View(), todolist.EmptyMarker)
	assert.True(t, m.busy())
}

func TestAppModel_LoadEmptyShowsMarker(t *testing.T) {
	m, _ := loadedModel(t)

	view := m.View()
	assert.Contains(t, view, todolist.EmptyMarker)
	assert.NotContains(t, view, "Loading todos...")
	assert.False(t, m.busy())
	assert.False(t, m.showError)
}

func TestAppModel_LoadRendersTodos(t *testing.T) {
	m, _ := loadedModel(t, todo(1, "Buy milk", ""), todo(2, "Wash car", "before sunday"))

	view := m.View()
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "Wash car")
	assert.Contains(t, view, "before sunday")
	assert.NotContains(t, view, todolist.EmptyMarker)
}

func TestAppModel_LoadFailureShowsOverlay(t *testing.T) {
	m, mockAdapter := newTestModel(t)
	mockAdapter.EXPECT().List(gomock.Any()).
		Return(nil, &adapter.ServerError{StatusCode: 200, Body: `{"success":false,"error":"db down"}`})

	m = run(t, m, m.Init())

	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "Fail to fetch todos!")
	assert.Contains(t, m.errorOverlay.message, "db down")
	assert.NotContains(t, m.View(), todolist.EmptyMarker)

	// the overlay blocks other keys until it is closed
	m, cmd := press(t, m, runes("q"))
	assert.Nil(t, cmd)
	assert.True(t, m.showError)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

func TestAppModel_LoadTransportFailureHint(t *testing.T) {
	m, mockAdapter := newTestModel(t)
	mockAdapter.EXPECT().List(gomock.Any()).
		Return(nil, fmt.Errorf("list request: %w: %w", adapter.ErrTransport, errors.New("dial tcp: connection refused")))

	m = run(t, m, m.Init())

	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, serverUnavailableHint)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestAppModel_CreateAppendsAndClearsInputs(t *testing.T) {
	m, mockAdapter := loadedModel(t, todo(1, "Buy milk", ""))
	mockAdapter.EXPECT().
		Create(gomock.Any(), models.TodoData{Name: "Wash car", Description: "soap"}).
		Return(models.NumericTodoID(42), nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusName, m.focus)

	m, _ = press(t, m, runes("Wash car"))
	m.form.description.SetValue("soap")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m = run(t, m, cmd)

	assert.False(t, m.form.submitting)
	assert.False(t, m.showError)
	assert.Empty(t, m.form.name.Value())
	assert.Empty(t, m.form.description.Value())
	require.Len(t, m.view.Todos, 2)
	assert.Equal(t, models.NumericTodoID(42), m.view.Todos[1].ID)
	assert.Contains(t, m.View(), "Wash car")
}

func TestAppModel_CreateWithEnterOnName(t *testing.T) {
	m, mockAdapter := loadedModel(t)
	mockAdapter.EXPECT().Create(gomock.Any(), models.TodoData{Name: "Plan"}).Return(models.NewTodoID("p"), nil)

	m, _ = press(t, m, runes("a"))
	m.form.name.SetValue("Plan")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	require.Len(t, m.view.Todos, 1)
	assert.NotContains(t, m.View(), todolist.EmptyMarker)
}

func TestAppModel_CreateEmptyNameShowsNotification(t *testing.T) {
	// no Create expectation: the adapter must not be called
	m, _ := loadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.form.name.SetValue("   ")
	m.form.description.SetValue("kept")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = run(t, m, cmd)

	require.True(t, m.showError)
	assert.Equal(t, todolist.MsgNameRequired, m.errorOverlay.message)
	assert.Equal(t, "kept", m.form.description.Value())
	assert.Empty(t, m.view.Todos)
}

func TestAppModel_CreateFailureKeepsInputs(t *testing.T) {
	m, mockAdapter := loadedModel(t)
	mockAdapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.TodoID{}, &adapter.ServerError{Body: `{"success":false,"errors":["Name is too short"]}`})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.form.name.SetValue("x")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = run(t, m, cmd)

	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "Fail to create todo!")
	assert.Equal(t, "x", m.form.name.Value())
	assert.Contains(t, m.View(), todolist.EmptyMarker)
}

func TestAppModel_SubmitIgnoredWhileSubmitting(t *testing.T) {
	m, _ := loadedModel(t)
	m.focus = focusName
	m.form.submitting = true

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
}

func TestAppModel_TypingQInFormDoesNotQuit(t *testing.T) {
	m, _ := loadedModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := press(t, m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q", m.form.name.Value())
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestAppModel_DeleteConfirmed(t *testing.T) {
	m, mockAdapter := loadedModel(t, todo(1, "Buy milk", ""))
	mockAdapter.EXPECT().Delete(gomock.Any(), models.NumericTodoID(1)).Return(nil)

	m, cmd := press(t, m, runes("x"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), todolist.ConfirmPrompt)

	m, cmd = press(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	m = run(t, m, cmd)

	assert.Empty(t, m.view.Todos)
	assert.Contains(t, m.View(), todolist.EmptyMarker)
	assert.Equal(t, "Done: Buy milk", m.status)
}

func TestAppModel_DeleteDeclined(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "n", key: runes("n")},
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no Delete expectation: the adapter must not be called
			m, _ := loadedModel(t, todo(1, "Buy milk", ""))

			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
			require.True(t, m.showConfirm)

			m, cmd := press(t, m, tt.key)
			assert.Nil(t, cmd)
			assert.False(t, m.showConfirm)
			assert.False(t, m.showError)
			assert.Len(t, m.view.Todos, 1)
		})
	}
}

func TestAppModel_DeleteFailureKeepsTodo(t *testing.T) {
	m, mockAdapter := loadedModel(t, todo(1, "a", ""), todo(2, "b", ""))
	mockAdapter.EXPECT().Delete(gomock.Any(), models.NumericTodoID(2)).
		Return(fmt.Errorf("delete: %w: ", adapter.ErrNotFound))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runes("x"))
	m, cmd := press(t, m, runes("y"))
	m = run(t, m, cmd)

	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "Fail to delete todo!")
	assert.Len(t, m.view.Todos, 2)
}

func TestAppModel_DeleteWithNothingSelected(t *testing.T) {
	m, _ := loadedModel(t)

	m, cmd := press(t, m, runes("x"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Equal(t, "Nothing to delete", m.status)
}

func TestAppModel_DeleteWhileCreateInFlight(t *testing.T) {
	m, mockAdapter := loadedModel(t, todo(1, "a", ""))
	mockAdapter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.NumericTodoID(2), nil)
	mockAdapter.EXPECT().Delete(gomock.Any(), models.NumericTodoID(1)).Return(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.form.name.SetValue("b")
	m, createCmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = press(t, m, runes("x"))
	m, deleteCmd := press(t, m, runes("y"))
	assert.Equal(t, 2, m.pending)

	m = run(t, m, deleteCmd)
	m = run(t, m, createCmd)

	assert.False(t, m.busy())
	require.Len(t, m.view.Todos, 1)
	assert.Equal(t, "b", m.view.Todos[0].Name)
}

// ── Navigation and misc ──────────────────────────────────────────────────────

func TestAppModel_EachActionHasOwnRequestID(t *testing.T) {
	m, mockAdapter := newTestModel(t)

	var ids []string
	record := func(ctx context.Context) {
		id, ok := utils.GetRequestIDFromContext(ctx)
		require.True(t, ok)
		ids = append(ids, id)
	}

	mockAdapter.EXPECT().List(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.Todo, error) {
			record(ctx)
			return []models.Todo{todo(1, "Buy milk", "")}, nil
		})
	mockAdapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.TodoData) (models.TodoID, error) {
			record(ctx)
			return models.NumericTodoID(2), nil
		})

	m = run(t, m, m.Init())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("Wash car"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	run(t, m, cmd)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestAppModel_CursorMovement(t *testing.T) {
	m, _ := loadedModel(t, todo(1, "a", ""), todo(2, "b", ""), todo(3, "c", ""))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.list.idx)

	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.list.idx)

	m, _ = press(t, m, runes("k"))
	assert.Equal(t, 1, m.list.idx)
}

func TestAppModel_FocusCycle(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusName, m.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusDescription, m.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusName, m.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusList, m.focus)
}

func TestAppModel_Copy(t *testing.T) {
	m, _ := loadedModel(t, todo(1, "Buy milk", "2 bottles"))

	var copied string
	m.copyText = func(text string) error {
		copied = text
		return nil
	}

	m, cmd := press(t, m, runes("c"))
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(appModel)

	assert.Equal(t, "Buy milk\n2 bottles", copied)
	assert.Equal(t, "Copied!", m.status)
}

func TestAppModel_CopyFailure(t *testing.T) {
	m, _ := loadedModel(t, todo(1, "Buy milk", ""))
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m, cmd := press(t, m, runes("c"))
	next, _ := m.Update(cmd())
	m = next.(appModel)

	require.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "no clipboard")
}

func TestAppModel_BuildInfoScreen(t *testing.T) {
	m, _ := loadedModel(t)

	m, _ = press(t, m, runes("v"))
	require.Equal(t, screenBuildInfo, m.currentScreen)
	view := m.View()
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "N/A")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMain, m.currentScreen)
}

func TestAppModel_Quit(t *testing.T) {
	m, _ := loadedModel(t)

	_, cmd := press(t, m, runes("q"))
	assert.True(t, isQuit(cmd))

	m.showError = true
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestAppModel_ClearStatus(t *testing.T) {
	m, _ := loadedModel(t)
	m.status = "Copied!"

	next, _ := m.Update(clearStatusMsg{})
	assert.Empty(t, next.(appModel).status)
}
