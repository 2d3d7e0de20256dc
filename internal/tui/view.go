package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskman/internal/domain"
)

// View renders the current screen.
func (m *Model) View() string {
	var body string
	if m.page == PageLogin {
		body = m.loginView()
	} else {
		body = m.dashboardView()
	}
	return m.styles.App.Render(body)
}

func (m *Model) loginView() string {
	var b strings.Builder

	b.WriteString(m.styles.CardTitle.Render("Task Manager"))
	b.WriteString("\n")
	b.WriteString(m.styles.CardSubtitle.Render("Sign in to continue"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.FormLabel.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.usernameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.FormLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n")

	status := m.container.Session.LoginStatus()
	if status.IsPending() {
		b.WriteString("\n")
		b.WriteString(m.styles.Pending.Render("Signing in..."))
	} else if status.Err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(status.Err))
	}

	card := m.styles.Card.Render(b.String())
	hint := m.styles.Help.Render("tab: switch field • enter: sign in • ctrl+c: quit")
	return lipgloss.JoinVertical(lipgloss.Left, card, "", hint)
}

func (m *Model) dashboardView() string {
	switch m.mode {
	case ModeForm:
		return m.formView()
	case ModeConfirmDelete:
		return m.confirmView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	header := m.headerView()
	filters := m.filterView()
	body := m.taskList.View()
	footer := m.footerView()
	helpView := m.styles.Help.Render(m.help.View(m.keys))

	sections := []string{header, filters, body}
	if footer != "" {
		sections = append(sections, footer)
	}
	sections = append(sections, helpView)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) headerView() string {
	title := m.styles.HeaderTitle.Render("Tasks")
	hint := ""
	if session := m.container.Session.Session(); session.IsAuthenticated() {
		hint = m.styles.HeaderHint.Render(fmt.Sprintf("signed in as %s", session.Username))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", hint)
}

func (m *Model) filterView() string {
	parts := make([]string, 0, len(AllFilters()))
	for _, f := range AllFilters() {
		label := string(f)
		if f == m.filter {
			parts = append(parts, m.styles.FilterActive.Render(label))
		} else {
			parts = append(parts, m.styles.FilterInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// footerView renders the most relevant in-flight or failed operation, if any.
func (m *Model) footerView() string {
	if m.container.Tasks.FetchStatus().IsPending() {
		return m.styles.Pending.Render("Loading tasks...")
	}
	if m.container.Tasks.DeleteStatus().IsPending() {
		return m.styles.Pending.Render("Deleting...")
	}
	for _, status := range []domain.RequestStatus{
		m.container.Tasks.FetchStatus(),
		m.container.Tasks.CreateStatus(),
		m.container.Tasks.UpdateStatus(),
		m.container.Tasks.DeleteStatus(),
	} {
		if status.Phase == domain.PhaseRejected && status.Err != "" {
			return m.styles.Error.Render(status.Err)
		}
	}
	return ""
}

func (m *Model) formView() string {
	var b strings.Builder

	title := "New Task"
	if m.editingID != "" {
		title = "Edit Task"
	}
	b.WriteString(m.styles.CardTitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.styles.FormLabel.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.FormLabel.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.FormLabel.Render("Status"))
	b.WriteString("\n")
	b.WriteString(m.statusPickerView())
	b.WriteString("\n")

	var status domain.RequestStatus
	if m.editingID == "" {
		status = m.container.Tasks.CreateStatus()
	} else {
		status = m.container.Tasks.UpdateStatus()
	}
	if status.IsPending() {
		b.WriteString("\n")
		b.WriteString(m.styles.Pending.Render("Saving..."))
	} else if status.Phase == domain.PhaseRejected && status.Err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(status.Err))
	}

	card := m.styles.Card.Render(b.String())
	hint := m.styles.Help.Render("tab: next field • enter: save • esc: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, card, "", hint)
}

// statusPickerView renders the cycling status field of the form.
func (m *Model) statusPickerView() string {
	parts := make([]string, 0, len(domain.AllStatuses()))
	for _, status := range domain.AllStatuses() {
		label := string(status)
		if status == m.formStatus {
			if m.formFocus == 2 {
				parts = append(parts, m.styles.FilterActive.Render(label))
			} else {
				parts = append(parts, m.styles.StatusBadge[status].Render(label))
			}
		} else {
			parts = append(parts, m.styles.FilterInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) confirmView() string {
	var b strings.Builder

	b.WriteString(m.styles.CardTitle.Render("Delete task?"))
	b.WriteString("\n\n")
	if task, ok := m.container.Tasks.Task(m.confirmID); ok {
		b.WriteString(m.styles.CardSubtitle.Render(task.Title))
		b.WriteString("\n\n")
	}
	if m.container.Tasks.DeleteStatus().IsPending() {
		b.WriteString(m.styles.Pending.Render("Deleting..."))
	} else {
		b.WriteString(m.styles.Help.Render("y: delete • n: cancel"))
	}

	return m.styles.Confirm.Render(b.String())
}
