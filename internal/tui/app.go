// Package tui implements the interactive dashboard. It is a pure
// presentation layer: every screen renders from state-owner snapshots, every
// action dispatches through the state owners, and nothing here holds
// authoritative state.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/app"
	"taskman/internal/domain"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	container *app.Container

	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	usernameInput textinput.Model
	passwordInput textinput.Model
	titleInput    textinput.Model
	descInput     textinput.Model

	page       Page
	mode       Mode
	filter     Filter
	formStatus domain.Status
	editingID  string
	confirmID  string
	loginFocus int
	formFocus  int
	width      int
	height     int
}

// New creates a new TUI Model with the given container. The starting page
// depends on the restored session: a present credential goes straight to the
// dashboard.
func New(c *app.Container) *Model {
	ui := textinput.New()
	ui.Placeholder = "test"
	ui.CharLimit = 100
	ui.Focus()

	pi := textinput.New()
	pi.Placeholder = "test123"
	pi.CharLimit = 100
	pi.EchoMode = textinput.EchoPassword

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Task description"
	di.CharLimit = 1000

	styles := NewStyles(c.Prefs.DarkMode())
	taskList := list.New([]list.Item{}, newTaskDelegate(styles), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	page := PageLogin
	if c.Session.Session().IsAuthenticated() {
		page = PageDashboard
	}

	return &Model{
		container:     c,
		keys:          DefaultKeyMap(),
		styles:        styles,
		help:          help.New(),
		taskList:      taskList,
		usernameInput: ui,
		passwordInput: pi,
		titleInput:    ti,
		descInput:     di,
		page:          page,
		mode:          ModeList,
		filter:        FilterAll,
		formStatus:    domain.StatusTodo,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	if m.page == PageDashboard {
		return tea.Batch(textinput.Blink, m.dispatchFetch())
	}
	return textinput.Blink
}

// dispatchLogin runs the login operation and reports its settlement.
func (m *Model) dispatchLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		_ = m.container.Session.Login(context.Background(), username, password)
		return MsgLoginSettled{}
	}
}

// dispatchFetch runs the fetch operation and reports its settlement.
func (m *Model) dispatchFetch() tea.Cmd {
	return func() tea.Msg {
		_ = m.container.Tasks.FetchAll(context.Background())
		return MsgFetchSettled{}
	}
}

// dispatchCreate runs the create operation and reports its settlement.
func (m *Model) dispatchCreate(draft domain.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		_ = m.container.Tasks.Create(context.Background(), draft)
		return MsgCreateSettled{}
	}
}

// dispatchUpdate runs the update operation and reports its settlement.
func (m *Model) dispatchUpdate(id string, patch domain.TaskPatch) tea.Cmd {
	return func() tea.Msg {
		_ = m.container.Tasks.Update(context.Background(), id, patch)
		return MsgUpdateSettled{}
	}
}

// dispatchDelete runs the delete operation and reports its settlement.
func (m *Model) dispatchDelete(id string) tea.Cmd {
	return func() tea.Msg {
		_ = m.container.Tasks.Delete(context.Background(), id)
		return MsgDeleteSettled{}
	}
}

// taskItem adapts a task for the bubbles list.
type taskItem struct {
	task domain.Task
}

// Title implements list.DefaultItem.
func (i taskItem) Title() string {
	return fmt.Sprintf("[%s] %s", i.task.Status, i.task.Title)
}

// Description implements list.DefaultItem.
func (i taskItem) Description() string {
	return i.task.Description
}

// FilterValue implements list.Item.
func (i taskItem) FilterValue() string {
	return i.task.Title
}

// newTaskDelegate builds the list delegate for the current theme.
func newTaskDelegate(s Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(s.Palette.Accent).
		BorderLeftForeground(s.Palette.Accent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(s.Palette.Subtle).
		BorderLeftForeground(s.Palette.Accent)
	return d
}

// SelectedTask returns the currently selected task, or false if none.
func (m *Model) SelectedTask() (domain.Task, bool) {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.Task{}, false
	}
	return item.task, true
}

// syncTaskList rebuilds the visible list from the collection snapshot and
// the active filter.
func (m *Model) syncTaskList() {
	tasks := m.container.Tasks.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		if m.filter.Match(task) {
			items = append(items, taskItem{task: task})
		}
	}
	m.taskList.SetItems(items)
}

// updateLayout resizes layout-dependent components.
func (m *Model) updateLayout() {
	m.help.Width = m.width
	listHeight := m.height - 8
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(m.width-4, listHeight)
}
