package onboarding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/markbucks/internal/onboarding"
	"github.com/Veraticus/markbucks/internal/service"
	"github.com/Veraticus/markbucks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_IsConfigured(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{name: "absent", value: nil, want: false},
		{name: "empty", value: ptr(""), want: false},
		{name: "whitespace", value: ptr("   "), want: false},
		{name: "file uri", value: ptr("file:///ledger"), want: true},
		{name: "opaque reference", value: ptr("content://tree/primary%3ALedger"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := testutil.SetupTestPrefs(t)
			if tt.value != nil {
				testutil.ConfigureFolder(t, prefs, *tt.value)
			}
			gate := onboarding.NewGate(prefs, testutil.SetupLedger(t).Provider)

			got, err := gate.IsConfigured(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			route, state, err := gate.Start(context.Background())
			require.NoError(t, err)
			if tt.want {
				assert.Equal(t, onboarding.RouteRecorder, route)
				assert.Equal(t, onboarding.StateConfigured, state)
			} else {
				assert.Equal(t, onboarding.RouteWelcome, route)
				assert.Equal(t, onboarding.StateUnconfigured, state)
			}
		})
	}
}

func TestGate_Complete(t *testing.T) {
	ctx := context.Background()
	prefs := testutil.SetupTestPrefs(t)
	gate := onboarding.NewGate(prefs, testutil.SetupLedger(t).Provider)

	state, effects, err := gate.Complete(ctx, testutil.LedgerLocation)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StateConfigured, state)
	assert.Contains(t, effects, onboarding.NavigateRecorder{ReplaceStack: true})

	value, ok, err := prefs.Get(ctx, service.KeyFolderURI)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testutil.LedgerLocation.String(), value)

	route, _, err := gate.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, onboarding.RouteRecorder, route)
}

func TestGate_Complete_GrantFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	prefs := testutil.SetupTestPrefs(t)
	ledger := testutil.SetupLedger(t)
	gate := onboarding.NewGate(prefs, ledger.Provider)

	state, _, err := gate.Complete(ctx, "file:///does-not-exist")
	assert.Error(t, err)
	assert.Equal(t, onboarding.StatePicking, state)

	configured, err := gate.IsConfigured(ctx)
	require.NoError(t, err)
	assert.False(t, configured)

	denied := errors.New("permission denied")
	gate = onboarding.NewGate(prefs, &testutil.FaultyFolders{Folders: ledger.Provider, GrantErr: denied})
	_, _, err = gate.Complete(ctx, testutil.LedgerLocation)
	assert.ErrorIs(t, err, denied)

	configured, err = gate.IsConfigured(ctx)
	require.NoError(t, err)
	assert.False(t, configured)
}

func TestGate_Complete_EmptyLocation(t *testing.T) {
	prefs := testutil.SetupTestPrefs(t)
	gate := onboarding.NewGate(prefs, testutil.SetupLedger(t).Provider)

	state, effects, err := gate.Complete(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, onboarding.StatePicking, state)
	assert.Equal(t, []onboarding.Effect{onboarding.ShowNotice{Message: onboarding.NoticeSelectionCancelled}}, effects)
}

func TestGate_Reset(t *testing.T) {
	ctx := context.Background()
	prefs := testutil.SetupTestPrefs(t)
	testutil.ConfigureFolder(t, prefs, testutil.LedgerLocation.String())
	gate := onboarding.NewGate(prefs, testutil.SetupLedger(t).Provider)

	require.NoError(t, gate.Reset(ctx))

	route, _, err := gate.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, onboarding.RouteWelcome, route)
}

func ptr(s string) *string {
	return &s
}
