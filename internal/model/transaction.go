package model

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Layouts used when rendering a transaction.
const (
	CreatedLayout  = "2006-01-02T15:04:05"
	FileTimeLayout = "2006-01-02_15-04-05"

	// MarkdownMIME is the content type requested for transaction files.
	MarkdownMIME = "text/markdown"
	// FilePrefix starts every transaction file name.
	FilePrefix = "transaction_"
	// FileExt ends every transaction file name.
	FileExt = ".md"
)

// Transaction is a single income or expense entry. It is written once and
// never modified.
type Transaction struct {
	CreatedAt time.Time
	Type      TransactionType
	Category  string
	Amount    Amount
}

// NewTransaction builds a transaction after checking it against the catalog.
func NewTransaction(createdAt time.Time, t TransactionType, amount Amount, category string, catalog Catalog) (Transaction, error) {
	if amount.IsZero() {
		return Transaction{}, ErrInvalidAmount
	}
	if !catalog.Contains(t, category) {
		return Transaction{}, fmt.Errorf("category %q is not a %s category", category, t)
	}
	return Transaction{
		CreatedAt: createdAt.Truncate(time.Second),
		Type:      t,
		Category:  category,
		Amount:    amount,
	}, nil
}

// FileName returns the name the transaction is stored under, derived from
// the creation time in local time.
func (t Transaction) FileName() string {
	return FilePrefix + t.CreatedAt.Local().Format(FileTimeLayout) + FileExt
}

// AlternateFileName returns the name used for the n-th attempt when
// FileName is already taken. n < 2 yields FileName.
func (t Transaction) AlternateFileName(n int) string {
	if n < 2 {
		return t.FileName()
	}
	return fmt.Sprintf("%s%s_%d%s", FilePrefix, t.CreatedAt.Local().Format(FileTimeLayout), n, FileExt)
}

// MarshalMarkdown renders the transaction as a front matter only Markdown
// document.
func (t Transaction) MarshalMarkdown() []byte {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	fmt.Fprintf(&buf, "created: %s\n", t.CreatedAt.Local().Format(CreatedLayout))
	fmt.Fprintf(&buf, "type: %s\n", strconv.Quote(string(t.Type)))
	fmt.Fprintf(&buf, "amount: %s\n", t.Amount)
	fmt.Fprintf(&buf, "category: %s\n", strconv.Quote(t.Category))
	buf.WriteString("---\n")
	return buf.Bytes()
}
