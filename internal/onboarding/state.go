// Package onboarding gates the application on a configured storage folder.
package onboarding

import "github.com/Veraticus/markbucks/internal/model"

// State is the onboarding state.
type State int

const (
	// StateUnconfigured means no folder has been chosen yet.
	StateUnconfigured State = iota
	// StatePicking means the folder picker is open.
	StatePicking
	// StateConfigured means a folder is persisted. It is terminal.
	StateConfigured
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StatePicking:
		return "picking"
	case StateConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// Event is something the user or the picker did.
type Event interface {
	isEvent()
}

// SelectRequested is sent when the user asks to choose a folder.
type SelectRequested struct{}

// PickCancelled is sent when the picker closes without a folder.
type PickCancelled struct{}

// FolderPicked is sent when the picker returns a folder.
type FolderPicked struct {
	Location model.Location
}

func (SelectRequested) isEvent() {}
func (PickCancelled) isEvent()   {}
func (FolderPicked) isEvent()    {}

// Effect is work the caller must perform after a transition, in order.
type Effect interface {
	isEffect()
}

// OpenPicker asks the UI to show the folder picker.
type OpenPicker struct{}

// PersistLocation stores the picked folder in the preferences.
type PersistLocation struct {
	Location model.Location
}

// GrantAccess requests durable access to the picked folder.
type GrantAccess struct {
	Location model.Location
}

// NavigateRecorder moves to the recorder screen. With ReplaceStack the
// onboarding screen is discarded so it cannot be navigated back to.
type NavigateRecorder struct {
	ReplaceStack bool
}

// ShowNotice displays a transient message.
type ShowNotice struct {
	Message string
}

func (OpenPicker) isEffect()       {}
func (PersistLocation) isEffect()  {}
func (GrantAccess) isEffect()      {}
func (NavigateRecorder) isEffect() {}
func (ShowNotice) isEffect()       {}

// NoticeSelectionCancelled is shown when the picker is closed without a choice.
const NoticeSelectionCancelled = "no folder selected"

// Transition applies ev to s.
func Transition(s State, ev Event) (State, []Effect) {
	switch s {
	case StateUnconfigured:
		if _, ok := ev.(SelectRequested); ok {
			return StatePicking, []Effect{OpenPicker{}}
		}

	case StatePicking:
		switch ev := ev.(type) {
		case SelectRequested:
			return StatePicking, []Effect{OpenPicker{}}
		case PickCancelled:
			return StatePicking, []Effect{ShowNotice{Message: NoticeSelectionCancelled}}
		case FolderPicked:
			if ev.Location.IsZero() {
				return StatePicking, []Effect{ShowNotice{Message: NoticeSelectionCancelled}}
			}
			return StateConfigured, []Effect{
				PersistLocation{Location: ev.Location},
				GrantAccess{Location: ev.Location},
				NavigateRecorder{ReplaceStack: true},
			}
		}

	case StateConfigured:
	}

	return s, nil
}
