package ofx

import (
	"context"
	"fmt"

	"github.com/Veraticus/markbucks/internal/common"
	"github.com/Veraticus/markbucks/internal/model"
	"github.com/Veraticus/markbucks/internal/recorder"
	"github.com/Veraticus/markbucks/internal/service"
)

// Writer is the part of the recorder the importer writes through.
type Writer interface {
	Catalog() model.Catalog
	Folder(ctx context.Context) (model.Location, error)
	Write(ctx context.Context, loc model.Location, txn model.Transaction) (string, error)
}

var _ Writer = (*recorder.Recorder)(nil)

// Categories chooses the category used for imported entries of each type.
type Categories struct {
	Income  string
	Expense string
}

// Result summarises an import.
type Result struct {
	Files      []string
	Duplicates int
	Zero       int
}

// Importer turns statement entries into transaction files. Imported entries
// are remembered in imported, keyed by account and FITID, so overlapping
// statements and re-runs never write the same entry twice.
type Importer struct {
	writer     Writer
	imported   service.Preferences
	categories Categories
}

// NewImporter validates the chosen categories against the writer's catalog.
// Empty choices default to the first category of each type.
func NewImporter(w Writer, imported service.Preferences, categories Categories) (*Importer, error) {
	catalog := w.Catalog()
	if categories.Income == "" {
		categories.Income = catalog.For(model.TypeIncome)[0]
	}
	if categories.Expense == "" {
		categories.Expense = catalog.For(model.TypeExpense)[0]
	}
	if !catalog.Contains(model.TypeIncome, categories.Income) {
		return nil, fmt.Errorf("%q is not an income category", categories.Income)
	}
	if !catalog.Contains(model.TypeExpense, categories.Expense) {
		return nil, fmt.Errorf("%q is not an expense category", categories.Expense)
	}

	return &Importer{
		writer:     w,
		imported:   imported,
		categories: categories,
	}, nil
}

func entryKey(entry Entry) string {
	return entry.AccountID + "/" + entry.FITID
}

// Imported reports whether entry was written by an earlier import. Entries
// without a FITID cannot be matched and are never reported.
func (i *Importer) Imported(ctx context.Context, entry Entry) (bool, error) {
	if entry.FITID == "" {
		return false, nil
	}
	_, ok, err := i.imported.Get(ctx, entryKey(entry))
	if err != nil {
		return false, fmt.Errorf("failed to check entry %s: %w", entry.FITID, err)
	}
	return ok, nil
}

// Convert maps an entry to a transaction. Debits become expenses and
// credits incomes, both with the absolute amount. ok is false for
// zero-amount entries.
func (i *Importer) Convert(entry Entry) (model.Transaction, bool, error) {
	if entry.Amount.IsZero() {
		return model.Transaction{}, false, nil
	}

	typ, category := model.TypeIncome, i.categories.Income
	if entry.Amount.IsNegative() {
		typ, category = model.TypeExpense, i.categories.Expense
	}

	amount, err := model.NewAmount(entry.Amount.Abs())
	if err != nil {
		return model.Transaction{}, false, err
	}

	txn, err := model.NewTransaction(entry.Posted.Local(), typ, amount, category, i.writer.Catalog())
	if err != nil {
		return model.Transaction{}, false, err
	}
	return txn, true, nil
}

// Import writes every new entry into the configured folder. Entries already
// imported (same account and FITID) are skipped. progress, when non-nil, is
// called once per entry.
func (i *Importer) Import(ctx context.Context, entries []Entry, progress func()) (Result, error) {
	var result Result

	loc, err := i.writer.Folder(ctx)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		if progress != nil {
			progress()
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		seen, err := i.Imported(ctx, entry)
		if err != nil {
			return result, err
		}
		if seen {
			result.Duplicates++
			continue
		}

		txn, ok, err := i.Convert(entry)
		if err != nil {
			return result, fmt.Errorf("entry %s: %w", entry.FITID, err)
		}
		if !ok {
			result.Zero++
			continue
		}

		name, err := i.writer.Write(ctx, loc, txn)
		if err != nil {
			return result, fmt.Errorf("entry %s: %w", entry.FITID, err)
		}
		result.Files = append(result.Files, name)

		if entry.FITID != "" {
			if err := i.imported.Set(ctx, entryKey(entry), name); err != nil {
				return result, fmt.Errorf("failed to remember entry %s: %w", entry.FITID, err)
			}
		}

		common.LogDebug("Imported transaction", common.Fields{
			"account": entry.AccountID,
			"fitid":   entry.FITID,
			"file":    name,
		})
	}

	return result, nil
}
