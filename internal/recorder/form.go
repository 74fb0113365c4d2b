// Package recorder validates transaction input and writes transaction files.
package recorder

import "github.com/Veraticus/markbucks/internal/model"

// Form is the state of the recorder screen.
type Form struct {
	Type     model.TransactionType
	Amount   string
	Options  []string
	Selected int
}

// Category returns the selected category, or "" when there are no options.
func (f Form) Category() string {
	if f.Selected < 0 || f.Selected >= len(f.Options) {
		return ""
	}
	return f.Options[f.Selected]
}

// Event is a user interaction with the recorder screen.
type Event interface {
	isEvent()
}

// TypeChanged is sent when the income/expense toggle changes.
type TypeChanged struct {
	Type model.TransactionType
}

// CategorySelected is sent when the user picks a category by index.
type CategorySelected struct {
	Index int
}

// AmountEdited is sent when the amount text changes.
type AmountEdited struct {
	Text string
}

// Submitted is sent when the user asks to save.
type Submitted struct{}

func (TypeChanged) isEvent()      {}
func (CategorySelected) isEvent() {}
func (AmountEdited) isEvent()     {}
func (Submitted) isEvent()        {}

// Effect is work the UI must perform after an event.
type Effect interface {
	isEffect()
}

// RepopulateCategories replaces the category selector's options.
type RepopulateCategories struct {
	Options  []string
	Selected int
}

// ClearAmount empties the amount input.
type ClearAmount struct{}

// ShowNotice displays a transient message.
type ShowNotice struct {
	Notice Notice
}

// RecordSaved reports the file a transaction was written to.
type RecordSaved struct {
	Transaction model.Transaction
	FileName    string
}

func (RepopulateCategories) isEffect() {}
func (ClearAmount) isEffect()          {}
func (ShowNotice) isEffect()           {}
func (RecordSaved) isEffect()          {}

// NoticeLevel distinguishes success from failure notices.
type NoticeLevel int

const (
	// NoticeSuccess is shown after a save.
	NoticeSuccess NoticeLevel = iota
	// NoticeError is shown when a save is rejected or fails.
	NoticeError
)

// Notice is a short user-facing message.
type Notice struct {
	Message string
	Level   NoticeLevel
}
