package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case MsgLoginSettled:
		if m.container.Session.LoginStatus().Phase == domain.PhaseFulfilled {
			m.page = PageDashboard
			m.passwordInput.Reset()
			return m, m.dispatchFetch()
		}
		// Rejected: the login page renders the status error.
		return m, nil

	case MsgFetchSettled:
		m.syncTaskList()
		return m, nil

	case MsgCreateSettled:
		if m.container.Tasks.CreateStatus().Phase == domain.PhaseFulfilled {
			m.closeForm()
		}
		m.syncTaskList()
		return m, nil

	case MsgUpdateSettled:
		if m.container.Tasks.UpdateStatus().Phase == domain.PhaseFulfilled {
			m.closeForm()
		}
		m.syncTaskList()
		return m, nil

	case MsgDeleteSettled:
		m.mode = ModeList
		m.confirmID = ""
		m.syncTaskList()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits from anywhere, including text inputs.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.page == PageLogin {
		return m.handleLoginKey(msg)
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		m.setLoginFocus(1 - m.loginFocus)
		return m, nil

	case tea.KeyEnter:
		if m.loginFocus == 0 {
			m.setLoginFocus(1)
			return m, nil
		}
		if m.container.Session.LoginStatus().IsPending() {
			return m, nil
		}
		return m, m.dispatchLogin(m.usernameInput.Value(), m.passwordInput.Value())
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) setLoginFocus(focus int) {
	m.loginFocus = focus
	if focus == 0 {
		m.usernameInput.Focus()
		m.passwordInput.Blur()
	} else {
		m.usernameInput.Blur()
		m.passwordInput.Focus()
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.openForm(nil)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.SelectedTask(); ok {
			m.openForm(&task)
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.SelectedTask(); ok {
			m.mode = ModeConfirmDelete
			m.confirmID = task.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.syncTaskList()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.dispatchFetch()

	case key.Matches(msg, m.keys.Theme):
		dark := m.container.Prefs.Toggle()
		m.styles = NewStyles(dark)
		m.taskList.SetDelegate(newTaskDelegate(m.styles))
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		m.container.Session.Logout()
		m.page = PageLogin
		m.usernameInput.Reset()
		m.passwordInput.Reset()
		m.setLoginFocus(0)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return m, nil

	case tea.KeyTab:
		m.setFormFocus((m.formFocus + 1) % 3)
		return m, nil

	case tea.KeyShiftTab:
		m.setFormFocus((m.formFocus + 2) % 3)
		return m, nil

	case tea.KeyEnter:
		return m, m.submitForm()
	}

	if m.formFocus == 2 {
		switch msg.String() {
		case "left", "right", " ":
			m.formStatus = m.formStatus.Next()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.container.Tasks.DeleteStatus().IsPending() {
			return m, nil
		}
		return m, m.dispatchDelete(m.confirmID)
	case "n", "esc", "q":
		m.mode = ModeList
		m.confirmID = ""
	}
	return m, nil
}

// openForm enters form mode, prefilled when editing an existing task.
func (m *Model) openForm(task *domain.Task) {
	m.mode = ModeForm
	if task != nil {
		m.editingID = task.ID
		m.titleInput.SetValue(task.Title)
		m.descInput.SetValue(task.Description)
		m.formStatus = task.Status
	} else {
		m.editingID = ""
		m.titleInput.Reset()
		m.descInput.Reset()
		m.formStatus = domain.StatusTodo
	}
	m.setFormFocus(0)
}

func (m *Model) closeForm() {
	m.mode = ModeList
	m.editingID = ""
	m.titleInput.Reset()
	m.descInput.Reset()
	m.formStatus = domain.StatusTodo
	m.titleInput.Blur()
	m.descInput.Blur()
}

func (m *Model) setFormFocus(focus int) {
	m.formFocus = focus
	m.titleInput.Blur()
	m.descInput.Blur()
	switch focus {
	case 0:
		m.titleInput.Focus()
	case 1:
		m.descInput.Focus()
	}
}

// submitForm dispatches a create or update from the form contents. The form
// submits all three fields, matching what it displays.
func (m *Model) submitForm() tea.Cmd {
	if m.editingID == "" {
		if m.container.Tasks.CreateStatus().IsPending() {
			return nil
		}
		draft := domain.TaskDraft{
			Title:       m.titleInput.Value(),
			Description: m.descInput.Value(),
			Status:      m.formStatus,
		}
		return m.dispatchCreate(draft)
	}

	if m.container.Tasks.UpdateStatus().IsPending() {
		return nil
	}
	title := m.titleInput.Value()
	description := m.descInput.Value()
	status := m.formStatus
	patch := domain.TaskPatch{Title: &title, Description: &description, Status: &status}
	return m.dispatchUpdate(m.editingID, patch)
}
