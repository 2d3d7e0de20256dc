package tui

import "taskman/internal/domain"

// Page identifies the top-level screen.
type Page int

// Pages. The login page is the only screen reachable without a credential.
const (
	PageLogin Page = iota
	PageDashboard
)

// Mode identifies the interaction mode within the dashboard.
type Mode int

// Dashboard modes.
const (
	ModeList Mode = iota
	ModeForm
	ModeConfirmDelete
)

// Filter selects which tasks the dashboard shows.
type Filter string

// Filters, in cycle order.
const (
	FilterAll        Filter = "all"
	FilterTodo       Filter = Filter(domain.StatusTodo)
	FilterInProgress Filter = Filter(domain.StatusInProgress)
	FilterDone       Filter = Filter(domain.StatusDone)
)

// AllFilters lists the filters in cycle order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterTodo, FilterInProgress, FilterDone}
}

// Next returns the filter that follows f, wrapping around.
func (f Filter) Next() Filter {
	filters := AllFilters()
	for i, cur := range filters {
		if cur == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Match returns true if the task passes the filter.
func (f Filter) Match(task domain.Task) bool {
	return f == FilterAll || Filter(task.Status) == f
}
