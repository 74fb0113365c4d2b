package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/markbucks/internal/config"
	"github.com/Veraticus/markbucks/internal/folder"
	"github.com/Veraticus/markbucks/internal/onboarding"
	"github.com/Veraticus/markbucks/internal/recorder"
	"github.com/Veraticus/markbucks/internal/service"
	"github.com/Veraticus/markbucks/internal/storage"
	"github.com/spf13/viper"
)

// app wires the preferences store, the folder provider and the services
// built on them.
type app struct {
	store    *storage.SQLiteStorage
	prefs    *storage.PreferenceStore
	folders  *folder.Provider
	gate     *onboarding.Gate
	recorder *recorder.Recorder
	settings config.Settings
}

// openApp loads settings and opens the preferences database.
func openApp(ctx context.Context) (*app, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := storage.Open(ctx, settings.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	prefs := store.Preferences(service.AppNamespace)
	folders := folder.NewOSProvider()

	return &app{
		settings: settings,
		store:    store,
		prefs:    prefs,
		folders:  folders,
		gate:     onboarding.NewGate(prefs, folders),
		recorder: recorder.New(prefs, folders, settings.Catalog,
			recorder.WithDefaultType(settings.DefaultType)),
	}, nil
}

// Close releases the preferences database.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("Failed to close preferences", "error", err)
	}
}
