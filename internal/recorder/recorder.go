package recorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/markbucks/internal/common"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/service"
)

// User-facing messages.
const (
	MsgEnterAmount       = "enter an amount"
	MsgInvalidAmount     = "invalid amount"
	MsgInvalidCategory   = "invalid category"
	MsgFolderNotSelected = "folder not selected"
	MsgFolderNotFound    = "folder not found"
	MsgFileCreation      = "could not create file"
	MsgSaveError         = "save error"
	MsgSaved             = "transaction saved"
)

// DefaultMaxAttempts bounds the file names tried when a name is taken.
const DefaultMaxAttempts = 100

// Input is the raw data of one save request.
type Input struct {
	Type     model.TransactionType
	Category string
	Amount   string
}

// Saved describes a written transaction.
type Saved struct {
	Transaction model.Transaction
	Location    model.Location
	FileName    string
}

// Recorder turns user input into transaction files.
type Recorder struct {
	prefs       service.Preferences
	folders     service.Folders
	now         func() time.Time
	catalog     model.Catalog
	defaultType model.TransactionType
	maxAttempts int
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithDefaultType sets the type selected on a new form.
func WithDefaultType(t model.TransactionType) Option {
	return func(r *Recorder) {
		r.defaultType = t
	}
}

// WithMaxAttempts bounds how many file names are tried per save.
func WithMaxAttempts(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// New creates a recorder.
func New(prefs service.Preferences, folders service.Folders, catalog model.Catalog, opts ...Option) *Recorder {
	r := &Recorder{
		prefs:       prefs,
		folders:     folders,
		catalog:     catalog,
		now:         time.Now,
		defaultType: model.TypeExpense,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the categories offered by the recorder.
func (r *Recorder) Catalog() model.Catalog {
	return r.catalog
}

// NewForm returns the initial form: default type, its categories, the
// first one selected, and an empty amount.
func (r *Recorder) NewForm() Form {
	return Form{
		Type:     r.defaultType,
		Options:  r.catalog.For(r.defaultType),
		Selected: 0,
	}
}

// Handle applies ev to form. Save failures never escape: they become
// notices and leave the form unchanged.
func (r *Recorder) Handle(ctx context.Context, form Form, ev Event) (next Form, effects []Effect) {
	switch ev := ev.(type) {
	case TypeChanged:
		form.Type = ev.Type
		form.Options = r.catalog.For(ev.Type)
		form.Selected = 0
		return form, []Effect{RepopulateCategories{Options: form.Options, Selected: 0}}

	case CategorySelected:
		if ev.Index >= 0 && ev.Index < len(form.Options) {
			form.Selected = ev.Index
		}
		return form, nil

	case AmountEdited:
		form.Amount = ev.Text
		return form, nil

	case Submitted:
		return r.submit(ctx, form)
	}

	return form, nil
}

func (r *Recorder) submit(ctx context.Context, form Form) (next Form, effects []Effect) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Recovered from panic while saving transaction", "panic", rec)
			next = form
			effects = []Effect{ShowNotice{Notice: Notice{
				Level:   NoticeError,
				Message: fmt.Sprintf("%s: %v", MsgSaveError, rec),
			}}}
		}
	}()

	saved, err := r.Save(ctx, Input{
		Type:     form.Type,
		Category: form.Category(),
		Amount:   form.Amount,
	})
	if err != nil {
		return form, []Effect{ShowNotice{Notice: NoticeFromError(err)}}
	}

	form.Amount = ""
	return form, []Effect{
		RecordSaved{Transaction: saved.Transaction, FileName: saved.FileName},
		ClearAmount{},
		ShowNotice{Notice: Notice{Level: NoticeSuccess, Message: MsgSaved}},
	}
}

// NoticeFromError converts a save error into the notice shown to the user.
func NoticeFromError(err error) Notice {
	return Notice{Level: NoticeError, Message: common.UserMessage(err)}
}

// Save validates in and writes it as a new transaction file. Checks run in
// order and stop at the first failure: blank amount, invalid amount,
// category, folder configured, folder present.
func (r *Recorder) Save(ctx context.Context, in Input) (Saved, error) {
	amount, err := model.ParseAmount(in.Amount)
	if err != nil {
		if errors.Is(err, model.ErrBlankAmount) {
			return Saved{}, common.NewUserError(MsgEnterAmount, fmt.Errorf("%w: %v", common.ErrValidation, err))
		}
		return Saved{}, common.NewUserError(MsgInvalidAmount, fmt.Errorf("%w: %v", common.ErrValidation, err))
	}

	if !r.catalog.Contains(in.Type, in.Category) {
		return Saved{}, common.NewUserError(MsgInvalidCategory,
			fmt.Errorf("%w: %q is not a %s category", common.ErrValidation, in.Category, in.Type))
	}

	loc, err := r.Folder(ctx)
	if err != nil {
		return Saved{}, err
	}

	txn, err := model.NewTransaction(r.now(), in.Type, amount, in.Category, r.catalog)
	if err != nil {
		return Saved{}, common.NewUserError(MsgInvalidAmount, fmt.Errorf("%w: %v", common.ErrValidation, err))
	}

	name, err := r.Write(ctx, loc, txn)
	if err != nil {
		return Saved{}, err
	}

	slog.Info("Transaction saved",
		"file", name,
		"type", txn.Type,
		"category", txn.Category,
		"amount", txn.Amount.String())

	return Saved{Transaction: txn, Location: loc, FileName: name}, nil
}

// Folder returns the configured folder after checking it is still there.
func (r *Recorder) Folder(ctx context.Context) (model.Location, error) {
	value, ok, err := r.prefs.Get(ctx, service.KeyFolderURI)
	if err != nil {
		return "", common.NewUserError(MsgFolderNotSelected, fmt.Errorf("%w: %v", common.ErrConfiguration, err))
	}
	loc := model.Location(value)
	if !ok || loc.IsZero() {
		return "", common.NewUserError(MsgFolderNotSelected, common.ErrConfiguration)
	}

	if !r.folders.Exists(ctx, loc) {
		slog.Warn("Configured folder is missing", "location", loc.String())
		return "", common.NewUserError(MsgFolderNotFound, fmt.Errorf("%w: %s", common.ErrStorageUnavailable, loc))
	}

	return loc, nil
}

// Write serializes txn into a new file inside loc and returns its name.
// Existing files are never replaced: taken names get a numeric suffix.
func (r *Recorder) Write(ctx context.Context, loc model.Location, txn model.Transaction) (string, error) {
	handle, err := r.create(ctx, loc, txn)
	if err != nil {
		return "", err
	}

	w, err := r.folders.OpenForWrite(ctx, handle)
	if err != nil {
		return "", writeError(err)
	}

	if _, err := w.Write(txn.MarshalMarkdown()); err != nil {
		_ = w.Close()
		return "", writeError(err)
	}
	if err := w.Close(); err != nil {
		return "", writeError(err)
	}

	return handle.Name, nil
}

func (r *Recorder) create(ctx context.Context, loc model.Location, txn model.Transaction) (*service.FileHandle, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		name := txn.AlternateFileName(attempt)

		handle, err := r.folders.CreateFile(ctx, loc, name, model.MarkdownMIME)
		if errors.Is(err, service.ErrFileExists) {
			slog.Debug("File name taken, trying next", "file", name)
			continue
		}
		if err != nil {
			if !r.folders.Exists(ctx, loc) {
				return nil, common.NewUserError(MsgFolderNotFound, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err))
			}
			return nil, common.NewUserError(MsgFileCreation, fmt.Errorf("%w: %v", common.ErrFileCreation, err))
		}
		if handle == nil {
			return nil, common.NewUserError(MsgFileCreation, fmt.Errorf("%w: no handle for %s", common.ErrFileCreation, name))
		}
		return handle, nil
	}

	return nil, common.NewUserError(MsgFileCreation,
		fmt.Errorf("%w: %d names taken for %s", common.ErrFileCreation, r.maxAttempts, txn.FileName()))
}

func writeError(err error) error {
	msg := MsgSaveError
	if detail := err.Error(); detail != "" {
		msg = fmt.Sprintf("%s: %s", MsgSaveError, detail)
	}
	return common.NewUserError(msg, fmt.Errorf("%w: %w", common.ErrWrite, err))
}
