package onboarding

import (
	"testing"

	"github.com/Veraticus/markbucks/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	loc := model.Location("file:///ledger")

	tests := []struct {
		name        string
		from        State
		event       Event
		wantState   State
		wantEffects []Effect
	}{
		{
			name:        "select opens picker",
			from:        StateUnconfigured,
			event:       SelectRequested{},
			wantState:   StatePicking,
			wantEffects: []Effect{OpenPicker{}},
		},
		{
			name:        "cancel stays on picker",
			from:        StatePicking,
			event:       PickCancelled{},
			wantState:   StatePicking,
			wantEffects: []Effect{ShowNotice{Message: NoticeSelectionCancelled}},
		},
		{
			name:      "pick persists, grants and navigates",
			from:      StatePicking,
			event:     FolderPicked{Location: loc},
			wantState: StateConfigured,
			wantEffects: []Effect{
				PersistLocation{Location: loc},
				GrantAccess{Location: loc},
				NavigateRecorder{ReplaceStack: true},
			},
		},
		{
			name:        "empty pick counts as cancel",
			from:        StatePicking,
			event:       FolderPicked{},
			wantState:   StatePicking,
			wantEffects: []Effect{ShowNotice{Message: NoticeSelectionCancelled}},
		},
		{
			name:        "reselect while picking",
			from:        StatePicking,
			event:       SelectRequested{},
			wantState:   StatePicking,
			wantEffects: []Effect{OpenPicker{}},
		},
		{
			name:      "pick without open picker is ignored",
			from:      StateUnconfigured,
			event:     FolderPicked{Location: loc},
			wantState: StateUnconfigured,
		},
		{
			name:      "configured is terminal",
			from:      StateConfigured,
			event:     SelectRequested{},
			wantState: StateConfigured,
		},
		{
			name:      "configured ignores picks",
			from:      StateConfigured,
			event:     FolderPicked{Location: "file:///other"},
			wantState: StateConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := Transition(tt.from, tt.event)
			assert.Equal(t, tt.wantState, got)
			assert.Equal(t, tt.wantEffects, effects)
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unconfigured", StateUnconfigured.String())
	assert.Equal(t, "picking", StatePicking.String())
	assert.Equal(t, "configured", StateConfigured.String())
	assert.Equal(t, "unknown", State(42).String())
}
