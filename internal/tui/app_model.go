package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type screen int

const (
	screenMain screen = iota
	screenBuildInfo
)

type focus int

const (
	focusList focus = iota
	focusName
	focusDescription
)

type appModel struct {
	ctx       context.Context
	todos     todolist.TodoList
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	copyText  func(string) error

	currentScreen screen
	focus         focus
	width         int

	view    todolist.View
	list    listModel
	form    createFormModel
	spinner spinner.Model
	// pending counts operations whose result has not arrived yet.
	pending int
	status  string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.Todo
}

func newAppModel(ctx context.Context, todos todolist.TodoList, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return appModel{
		ctx:       ctx,
		todos:     todos,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
		copyText:  clipboard.WriteAll,
		view:      todos.View(),
		form:      newCreateFormModel(),
		spinner:   s,
		pending:   1,
	}
}

// Init starts the initial load of the list.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				todo := m.pendingDelete
				m.pendingDelete = models.Todo{}
				if todo.ID.IsZero() {
					return m, nil
				}
				return m, m.startOperation(m.cmdDelete(todo))
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = models.Todo{}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.form.setWidth(msg.Width)
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.finishOperation()
		if msg.err != nil {
			m.showFailure(msg.err)
		}
		return m, nil
	case createdMsg:
		m.finishOperation()
		m.form.submitting = false
		if msg.err != nil {
			m.showFailure(msg.err)
			return m, nil
		}
		m.form.reset()
		m.status = "Added: " + msg.todo.Name
		return m, nil
	case deletedMsg:
		m.finishOperation()
		if msg.err != nil {
			m.showFailure(msg.err)
			return m, nil
		}
		m.status = "Done: " + msg.todo.Name
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("copy to clipboard failed")
			m.showErrorf("Fail to copy todo!: " + msg.err.Error())
			return m, nil
		}
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.currentScreen == screenBuildInfo {
		return m.updateBuildInfo(msg)
	}
	if m.focus == focusList {
		return m.updateList(msg)
	}
	return m.updateForm(msg)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.up()
	case key.Matches(keyMsg, keys.down):
		m.list.down(len(m.view.Todos))
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.newItem):
		return m, m.setFocus(focusName)
	case key.Matches(keyMsg, keys.backtab):
		return m, m.setFocus(focusDescription)
	case key.Matches(keyMsg, keys.delete):
		todo, ok := m.list.selected(m.view)
		if !ok {
			m.status = "Nothing to delete"
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{prompt: todolist.ConfirmPrompt, name: fitText(todo.Name, 60)}
		m.pendingDelete = todo
	case key.Matches(keyMsg, keys.copy):
		todo, ok := m.list.selected(m.view)
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.copyText, copyValue(todo))
	case key.Matches(keyMsg, keys.info):
		m.currentScreen = screenBuildInfo
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.setFocus(focusList)
		case key.Matches(keyMsg, keys.tab):
			if m.focus == focusName {
				return m, m.setFocus(focusDescription)
			}
			return m, m.setFocus(focusList)
		case key.Matches(keyMsg, keys.backtab):
			if m.focus == focusDescription {
				return m, m.setFocus(focusName)
			}
			return m, m.setFocus(focusList)
		case key.Matches(keyMsg, keys.submit):
			return m.submit()
		case m.focus == focusName && key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	return m, m.form.update(m.focus, msg)
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.info):
		m.currentScreen = screenMain
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// submit starts the creation of a todo from the form values. The inputs are
// cleared only once the backend confirms it.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	name, description := m.form.values()
	m.form.submitting = true
	return m, m.startOperation(m.cmdCreate(name, description))
}

func (m *appModel) setFocus(f focus) tea.Cmd {
	m.focus = f
	return m.form.focus(f)
}

func (m *appModel) startOperation(cmd tea.Cmd) tea.Cmd {
	m.pending++
	m.status = ""
	return tea.Batch(cmd, m.spinner.Tick)
}

// finishOperation re-reads the list once an operation has been applied.
func (m *appModel) finishOperation() {
	if m.pending > 0 {
		m.pending--
	}
	m.view = m.todos.View()
	m.list.clamp(len(m.view.Todos))
}

func (m appModel) busy() bool {
	return m.pending > 0
}

func (m *appModel) showFailure(err error) {
	if text := failureText(err); text != "" {
		m.showErrorf(text)
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	default:
		body = m.mainView()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) mainView() string {
	var b strings.Builder

	if !m.view.Loaded {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading todos...")
	} else {
		b.WriteString(m.list.View(m.view, m.focus == focusList, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(m.form.View(m.focus))

	if m.busy() && m.view.Loaded {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Saving...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("TODO LIST", b.String(), m.hotKeys())
}

func (m appModel) hotKeys() string {
	if m.focus == focusList {
		return "↑/↓: move  tab/a: new todo  x: done  c: copy  v: about  q: quit"
	}
	return "tab: next field  enter/ctrl+s: add  esc: back to list"
}
