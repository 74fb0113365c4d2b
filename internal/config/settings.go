package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/markbucks/internal/catalog"
	"github.com/Veraticus/markbucks/internal/common"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLogLevel          = "logging.level"
	KeyLogFormat         = "logging.format"
	KeyLogFile           = "logging.file"
	KeyPreferencesPath   = "preferences.path"
	KeyDefaultType       = "recorder.default_type"
	KeyIncomeCategories  = "categories.income"
	KeyExpenseCategories = "categories.expense"
	KeyNoticeSeconds     = "ui.notice_seconds"
)

// Settings is the resolved application configuration.
type Settings struct {
	Catalog         model.Catalog
	PreferencesPath string
	LogFile         string
	DefaultType     model.TransactionType
	NoticeDuration  time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "$HOME/.local/state/markbucks/markbucks.log")
	v.SetDefault(KeyPreferencesPath, "$HOME/.local/share/markbucks/prefs.db")
	v.SetDefault(KeyDefaultType, string(model.TypeExpense))
	v.SetDefault(KeyNoticeSeconds, 2)
}

// Load resolves Settings from v.
func Load(v *viper.Viper) (Settings, error) {
	defaultType, err := model.ParseTransactionType(v.GetString(KeyDefaultType))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyDefaultType, err)
	}

	cat, err := catalog.WithOverrides(
		catalog.Default(),
		v.GetStringSlice(KeyIncomeCategories),
		v.GetStringSlice(KeyExpenseCategories),
	)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	seconds := v.GetFloat64(KeyNoticeSeconds)
	if seconds <= 0 {
		return Settings{}, fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyNoticeSeconds)
	}

	prefsPath := ExpandPath(v.GetString(KeyPreferencesPath))
	if prefsPath == "" {
		return Settings{}, fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyPreferencesPath)
	}

	return Settings{
		Catalog:         cat,
		PreferencesPath: prefsPath,
		LogFile:         ExpandPath(v.GetString(KeyLogFile)),
		DefaultType:     defaultType,
		NoticeDuration:  time.Duration(seconds * float64(time.Second)),
	}, nil
}
