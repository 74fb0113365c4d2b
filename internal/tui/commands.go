package tui

import (
	"time"

	"github.com/Veraticus/markbucks/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// checkGate decides the first screen.
func (m Model) checkGate() tea.Cmd {
	return func() tea.Msg {
		route, state, err := m.gate.Start(m.ctx)
		return gateCheckedMsg{route: route, state: state, err: err}
	}
}

// completeOnboarding persists the picked folder and grants access to it.
func (m Model) completeOnboarding(path string) tea.Cmd {
	return func() tea.Msg {
		loc, err := model.LocationFromPath(path)
		if err != nil {
			return folderConfiguredMsg{state: m.onboarding, err: err}
		}
		state, effects, err := m.gate.Complete(m.ctx, loc)
		return folderConfiguredMsg{state: state, effects: effects, err: err}
	}
}

// expireNotice schedules the notice with id to disappear.
func expireNotice(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
