package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/service"
)

// Route is the first screen shown after the gate runs.
type Route int

const (
	// RouteWelcome shows folder selection.
	RouteWelcome Route = iota
	// RouteRecorder shows the transaction recorder.
	RouteRecorder
)

func (r Route) String() string {
	if r == RouteRecorder {
		return "recorder"
	}
	return "welcome"
}

// Gate decides whether the recorder may be shown.
type Gate struct {
	prefs   service.Preferences
	folders service.Folders
}

// NewGate creates a gate over the application preferences.
func NewGate(prefs service.Preferences, folders service.Folders) *Gate {
	return &Gate{prefs: prefs, folders: folders}
}

// Location returns the configured folder, or a zero Location.
func (g *Gate) Location(ctx context.Context) (model.Location, error) {
	value, ok, err := g.prefs.Get(ctx, service.KeyFolderURI)
	if err != nil {
		return "", fmt.Errorf("failed to read folder preference: %w", err)
	}
	if !ok || strings.TrimSpace(value) == "" {
		return "", nil
	}
	return model.Location(value), nil
}

// IsConfigured reports whether a non-empty folder is persisted.
func (g *Gate) IsConfigured(ctx context.Context) (bool, error) {
	loc, err := g.Location(ctx)
	if err != nil {
		return false, err
	}
	return !loc.IsZero(), nil
}

// Start returns the route for application start and the matching state.
func (g *Gate) Start(ctx context.Context) (Route, State, error) {
	configured, err := g.IsConfigured(ctx)
	if err != nil {
		return RouteWelcome, StateUnconfigured, err
	}
	if configured {
		return RouteRecorder, StateConfigured, nil
	}
	return RouteWelcome, StateUnconfigured, nil
}

// Apply performs the persistence effects of a transition. Effects that
// belong to the UI (navigation, notices, opening the picker) are ignored.
func (g *Gate) Apply(ctx context.Context, effects []Effect) error {
	var persisted model.Location
	for _, effect := range effects {
		switch e := effect.(type) {
		case PersistLocation:
			if err := g.prefs.Set(ctx, service.KeyFolderURI, e.Location.String()); err != nil {
				return fmt.Errorf("failed to save folder: %w", err)
			}
			persisted = e.Location
		case GrantAccess:
			if err := g.folders.GrantPersistentAccess(ctx, e.Location); err != nil {
				if !persisted.IsZero() {
					if rbErr := g.prefs.Delete(ctx, service.KeyFolderURI); rbErr != nil {
						err = errors.Join(err, rbErr)
					}
				}
				return fmt.Errorf("failed to access folder: %w", err)
			}
		}
	}

	if !persisted.IsZero() {
		slog.Info("Storage folder configured", "location", persisted.String())
	}
	return nil
}

// Complete runs a successful pick from the picking state: the folder is
// persisted and access granted. On failure the gate stays unconfigured.
func (g *Gate) Complete(ctx context.Context, loc model.Location) (State, []Effect, error) {
	next, effects := Transition(StatePicking, FolderPicked{Location: loc})
	if next != StateConfigured {
		return StatePicking, effects, nil
	}
	if err := g.Apply(ctx, effects); err != nil {
		return StatePicking, nil, err
	}
	return next, effects, nil
}

// Reset forgets the configured folder. Files already written stay where
// they are.
func (g *Gate) Reset(ctx context.Context) error {
	if err := g.prefs.Delete(ctx, service.KeyFolderURI); err != nil {
		return fmt.Errorf("failed to clear folder: %w", err)
	}
	return nil
}
