package tui

import (
	"github.com/Veraticus/markbucks/internal/onboarding"
)

// gateCheckedMsg carries the result of the startup gate.
type gateCheckedMsg struct {
	err   error
	route onboarding.Route
	state onboarding.State
}

// folderConfiguredMsg carries the result of completing onboarding.
type folderConfiguredMsg struct {
	err     error
	effects []onboarding.Effect
	state   onboarding.State
}

// noticeExpiredMsg hides the notice with the same id.
type noticeExpiredMsg struct {
	id int
}
