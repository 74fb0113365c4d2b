package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/markbucks/internal/onboarding"
	"github.com/Veraticus/markbucks/internal/recorder"
	"github.com/Veraticus/markbucks/internal/tui/themes"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is the screen currently shown.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenWelcome
	ScreenPicker
	ScreenRecorder
)

// Lines used around the picker by the title, notice and help.
const pickerChrome = 6

type notice struct {
	text  string
	level recorder.NoticeLevel
	id    int
}

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	theme      themes.Theme
	gate       *onboarding.Gate
	recorder   *recorder.Recorder
	notice     notice
	lastSaved  string
	config     Config
	keymap     KeyMap
	help       help.Model
	picker     filepicker.Model
	amount     textinput.Model
	form       recorder.Form
	onboarding onboarding.State
	screen     Screen
	noticeSeq  int
	width      int
	height     int
	completing bool
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.Prompt = ""
	amount.CharLimit = 32

	h := help.New()
	h.Width = cfg.Width

	return Model{
		ctx:      ctx,
		config:   cfg,
		theme:    cfg.Theme,
		gate:     cfg.Gate,
		recorder: cfg.Recorder,
		keymap:   DefaultKeyMap(),
		help:     h,
		amount:   amount,
		screen:   ScreenLoading,
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// Init runs the onboarding gate.
func (m Model) Init() tea.Cmd {
	return m.checkGate()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.ClearScreen):
			return m, tea.ClearScreen
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.screen == ScreenPicker {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(m.pickerSize())
			return m, cmd
		}
		return m, nil

	case gateCheckedMsg:
		return m.handleGateChecked(msg)

	case folderConfiguredMsg:
		return m.handleFolderConfigured(msg)

	case noticeExpiredMsg:
		if msg.id == m.notice.id {
			m.notice = notice{}
		}
		return m, nil
	}

	switch m.screen {
	case ScreenWelcome:
		return m.updateWelcome(msg)
	case ScreenPicker:
		return m.updatePicker(msg)
	case ScreenRecorder:
		return m.updateRecorder(msg)
	}

	return m, nil
}

func (m Model) handleGateChecked(msg gateCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("Failed to read folder preference", "error", msg.err)
		m.screen = ScreenWelcome
		m.onboarding = onboarding.StateUnconfigured
		return m, m.showNotice(msg.err.Error(), recorder.NoticeError)
	}

	m.onboarding = msg.state
	if m.config.ChooseFolder {
		m.onboarding = onboarding.StateUnconfigured
		return m.dispatchOnboarding(onboarding.SelectRequested{})
	}

	if msg.route == onboarding.RouteRecorder {
		return m, m.openRecorder()
	}

	m.screen = ScreenWelcome
	return m, nil
}

func (m Model) handleFolderConfigured(msg folderConfiguredMsg) (tea.Model, tea.Cmd) {
	m.completing = false
	m.onboarding = msg.state

	if msg.err != nil {
		slog.Warn("Folder selection failed", "error", msg.err)
		return m, m.showNotice(msg.err.Error(), recorder.NoticeError)
	}

	var cmds []tea.Cmd
	for _, effect := range msg.effects {
		switch e := effect.(type) {
		case onboarding.ShowNotice:
			cmds = append(cmds, m.showNotice(e.Message, recorder.NoticeError))
		case onboarding.NavigateRecorder:
			if e.ReplaceStack {
				m.picker = filepicker.Model{}
			}
			cmds = append(cmds, m.openRecorder())
		}
	}
	return m, tea.Batch(cmds...)
}

// dispatchOnboarding feeds ev to the onboarding state machine and performs
// its screen effects.
func (m Model) dispatchOnboarding(ev onboarding.Event) (tea.Model, tea.Cmd) {
	next, effects := onboarding.Transition(m.onboarding, ev)
	m.onboarding = next

	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case onboarding.OpenPicker:
			cmds = append(cmds, m.openPicker())
		case onboarding.ShowNotice:
			m.screen = ScreenWelcome
			cmds = append(cmds, m.showNotice(e.Message, recorder.NoticeError))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keymap.Choose):
		return m.dispatchOnboarding(onboarding.SelectRequested{})
	case key.Matches(k, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keymap.Cancel) {
		return m.dispatchOnboarding(onboarding.PickCancelled{})
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if selected, path := m.picker.DidSelectFile(msg); selected && !m.completing {
		m.completing = true
		return m, tea.Batch(cmd, m.completeOnboarding(path))
	}
	return m, cmd
}

func (m Model) updateRecorder(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(k, m.keymap.ToggleType):
			return m.handleForm(recorder.TypeChanged{Type: m.form.Type.Toggle()})
		case key.Matches(k, m.keymap.Up):
			return m.handleForm(recorder.CategorySelected{Index: m.wrapCategory(m.form.Selected - 1)})
		case key.Matches(k, m.keymap.Down):
			return m.handleForm(recorder.CategorySelected{Index: m.wrapCategory(m.form.Selected + 1)})
		case key.Matches(k, m.keymap.Submit):
			return m.handleForm(recorder.Submitted{})
		}
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	if m.amount.Value() != m.form.Amount {
		m.form, _ = m.recorder.Handle(m.ctx, m.form, recorder.AmountEdited{Text: m.amount.Value()})
	}
	return m, cmd
}

// handleForm feeds ev to the recorder and performs its effects.
func (m Model) handleForm(ev recorder.Event) (tea.Model, tea.Cmd) {
	next, effects := m.recorder.Handle(m.ctx, m.form, ev)
	m.form = next

	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case recorder.ClearAmount:
			m.amount.SetValue("")
		case recorder.RecordSaved:
			m.lastSaved = e.FileName
		case recorder.ShowNotice:
			cmds = append(cmds, m.showNotice(e.Notice.Message, e.Notice.Level))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) wrapCategory(i int) int {
	n := len(m.form.Options)
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}

func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowPermissions = false
	if m.config.StartDir != "" {
		fp.CurrentDirectory = m.config.StartDir
	}
	fp, _ = fp.Update(m.pickerSize())

	m.picker = fp
	m.screen = ScreenPicker
	m.completing = false
	return m.picker.Init()
}

func (m *Model) openRecorder() tea.Cmd {
	m.screen = ScreenRecorder
	m.form = m.recorder.NewForm()
	m.amount.SetValue("")
	return m.amount.Focus()
}

func (m *Model) showNotice(text string, level recorder.NoticeLevel) tea.Cmd {
	m.noticeSeq++
	m.notice = notice{text: text, level: level, id: m.noticeSeq}
	return expireNotice(m.noticeSeq, m.config.NoticeDuration)
}

func (m Model) pickerSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: m.height - pickerChrome}
}

// Screen returns the screen currently shown.
func (m Model) Screen() Screen {
	return m.screen
}

// Form returns the recorder form.
func (m Model) Form() recorder.Form {
	return m.form
}
