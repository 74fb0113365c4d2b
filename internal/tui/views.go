package tui

import (
	"strings"

	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/recorder"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var keys help.KeyMap
	switch m.screen {
	case ScreenLoading:
		body = m.renderLoading()
	case ScreenWelcome:
		body = m.renderWelcome()
		keys = welcomeKeys{m.keymap}
	case ScreenPicker:
		body = m.renderPicker()
		keys = pickerKeys{m.keymap}
	case ScreenRecorder:
		body = m.renderRecorder()
		keys = m.keymap
	}

	sections := []string{body}
	if n := m.renderNotice(); n != "" {
		sections = append(sections, n)
	}
	if m.config.ShowHelp && keys != nil {
		sections = append(sections, m.help.View(keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderLoading() string {
	return m.theme.Subtitle.Render("Loading markbucks...")
}

func (m Model) renderWelcome() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Welcome to markbucks"),
		m.theme.Normal.Render("Each transaction you record becomes a Markdown file."),
		m.theme.Normal.Render("Choose the folder they should be written to."),
		"",
		m.theme.Selected.Render("Choose folder"),
	)
	return m.theme.RoundedBox.Render(content)
}

func (m Model) renderPicker() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Choose a folder"),
		m.theme.Subtitle.Render(m.picker.CurrentDirectory),
		m.picker.View(),
	)
}

func (m Model) renderRecorder() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("New transaction"))
	b.WriteString("\n")

	b.WriteString(m.theme.Label.Render("Type"))
	b.WriteString(m.renderTypeToggle())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Category"))
	for i, option := range m.form.Options {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(m.theme.Label.Render(""))
		}
		if i == m.form.Selected {
			b.WriteString(m.theme.Selected.Render(option))
		} else {
			b.WriteString(m.theme.Unselected.Render(option))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Amount"))
	b.WriteString(m.amount.View())

	if m.lastSaved != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("last saved: " + m.lastSaved))
	}

	return m.theme.RoundedBox.Render(b.String())
}

func (m Model) renderTypeToggle() string {
	parts := make([]string, 0, 2)
	for _, t := range []model.TransactionType{model.TypeIncome, model.TypeExpense} {
		label := string(t)
		if t == m.form.Type {
			style := m.theme.Expense
			if t == model.TypeIncome {
				style = m.theme.Income
			}
			parts = append(parts, m.theme.ToggleActive.Render(style.Render(label)))
			continue
		}
		parts = append(parts, m.theme.Toggle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (m Model) renderNotice() string {
	if m.notice.text == "" {
		return ""
	}
	if m.notice.level == recorder.NoticeSuccess {
		return m.theme.StatusSuccess.Render("✓ " + m.notice.text)
	}
	return m.theme.StatusError.Render("✗ " + m.notice.text)
}
