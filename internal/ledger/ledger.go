// Package ledger implements the transaction store: the single source of truth
// for the collection, persisted wholesale on every mutation.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"monedero/internal/model"
	"monedero/internal/storage"
)

// Ledger owns the canonical in-memory transaction list. Every mutation is
// persisted through the storage adapter before the in-memory list is updated,
// so the two never disagree from a caller's point of view.
type Ledger struct {
	store     storage.Adapter
	sharer    Sharer
	picker    Picker
	onChange  []func()
	txns      []model.Transaction
	mu        sync.Mutex
	importing atomic.Bool
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithSharer sets the share facility used by Export.
func WithSharer(s Sharer) Option {
	return func(l *Ledger) { l.sharer = s }
}

// WithPicker sets the file picker used by Import.
func WithPicker(p Picker) Option {
	return func(l *Ledger) { l.picker = p }
}

// New creates a Ledger backed by the given storage adapter. Call Load before
// using it.
func New(store storage.Adapter, opts ...Option) *Ledger {
	l := &Ledger{store: store}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subscribe registers fn to be called after every successful mutation.
func (l *Ledger) Subscribe(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

func (l *Ledger) notify() {
	for _, fn := range l.onChange {
		fn()
	}
}

// Load reads the persisted collection. An absent key yields an empty
// collection; an unreadable or undecodable value is an error and leaves the
// current in-memory list untouched.
func (l *Ledger) Load(ctx context.Context) error {
	value, ok, err := l.store.Get(ctx, storage.TransactionsKey)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if !ok {
		l.mu.Lock()
		l.txns = nil
		l.mu.Unlock()
		return nil
	}

	var txns []model.Transaction
	if err := json.Unmarshal([]byte(value), &txns); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	l.mu.Lock()
	l.txns = txns
	l.mu.Unlock()

	slog.Debug("Loaded transactions", "count", len(txns))
	return nil
}

// Transactions returns a copy of the current collection.
func (l *Ledger) Transactions() []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Count returns the number of stored transactions.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.txns)
}

// Balance returns the signed sum over the whole collection: income counts
// positive, expense negative.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.Balance(l.txns)
}

// persistLocked writes txns through the adapter. Callers hold l.mu.
func (l *Ledger) persistLocked(ctx context.Context, txns []model.Transaction) error {
	data, err := json.Marshal(txns)
	if err != nil {
		return fmt.Errorf("failed to serialize transactions: %w", err)
	}
	if err := l.store.Set(ctx, storage.TransactionsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	return nil
}

// Add validates records, assigns each a fresh unique ID, appends them to the
// collection and persists it. On failure nothing is added. The stored records
// are returned with their new IDs.
func (l *Ledger) Add(ctx context.Context, records ...model.Transaction) ([]model.Transaction, error) {
	if len(records) == 0 {
		return nil, nil
	}

	added := make([]model.Transaction, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction: %w", err)
		}
		added[i] = records[i]
		added[i].ID = model.NewID()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]model.Transaction, 0, len(l.txns)+len(added))
	next = append(next, l.txns...)
	next = append(next, added...)

	if err := l.persistLocked(ctx, next); err != nil {
		return nil, err
	}
	l.txns = next

	slog.Info("Added transactions", "count", len(added), "total", len(next))
	l.notify()
	return added, nil
}

// Delete removes the transaction with the given ID. A missing ID is a no-op,
// not an error.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.txns {
		if l.txns[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]model.Transaction, 0, len(l.txns)-1)
	next = append(next, l.txns[:idx]...)
	next = append(next, l.txns[idx+1:]...)

	if err := l.persistLocked(ctx, next); err != nil {
		return err
	}
	l.txns = next

	slog.Info("Deleted transaction", "id", id, "remaining", len(next))
	l.notify()
	return nil
}

// Export serializes the collection to a pretty-printed JSON file in a
// transient location and hands it to the share facility. It fails when the
// collection is empty or no share mechanism exists. The exported file path is
// returned.
func (l *Ledger) Export(ctx context.Context) (string, error) {
	l.mu.Lock()
	txns := make([]model.Transaction, len(l.txns))
	copy(txns, l.txns)
	l.mu.Unlock()

	if len(txns) == 0 {
		return "", ErrEmptyCollection
	}
	if l.sharer == nil || !l.sharer.Available() {
		return "", ErrShareUnavailable
	}

	data, err := json.MarshalIndent(txns, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize transactions: %w", err)
	}

	f, err := os.CreateTemp("", "monedero-export-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	if err := l.sharer.Share(ctx, path, "application/json"); err != nil {
		return "", fmt.Errorf("failed to share export: %w", err)
	}

	slog.Info("Exported transactions", "count", len(txns), "path", path)
	return path, nil
}

// ImportResult reports what an import did.
type ImportResult struct {
	Added   int
	Skipped int
}

// Import asks the picker for a JSON document and merges it into the
// collection. Only one import may run at a time: a second call while one is
// in flight returns ErrImportInFlight, which callers treat as a silent no-op.
// The guard is released when the picker returns, success or failure.
func (l *Ledger) Import(ctx context.Context) (ImportResult, error) {
	if l.picker == nil {
		return ImportResult{}, fmt.Errorf("no file picker configured")
	}
	if !l.importing.CompareAndSwap(false, true) {
		return ImportResult{}, ErrImportInFlight
	}
	defer l.importing.Store(false)

	data, err := l.picker.Pick(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to pick import file: %w", err)
	}

	return l.ImportJSON(ctx, data)
}

// importRecord mirrors the exported JSON shape with optional fields, so that
// a missing amount or type can be told apart from a zero value.
type importRecord struct {
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

// ImportJSON parses and validates data as a transaction list and merges it
// into the collection. A document that is not a JSON array, or any element
// with a missing or invalid amount, type or date, rejects the entire batch.
func (l *Ledger) ImportJSON(ctx context.Context, data []byte) (ImportResult, error) {
	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	incoming := make([]model.Transaction, 0, len(records))
	for i, r := range records {
		if r.Amount == nil {
			return ImportResult{}, fmt.Errorf("%w: record %d has no amount", ErrInvalidFormat, i)
		}
		if r.Type == nil {
			return ImportResult{}, fmt.Errorf("%w: record %d has no type", ErrInvalidFormat, i)
		}
		date, err := parseDate(r.Date)
		if err != nil {
			return ImportResult{}, fmt.Errorf("%w: record %d: %v", ErrInvalidFormat, i, err)
		}
		txn := model.Transaction{
			ID:          r.ID,
			Description: r.Description,
			Amount:      *r.Amount,
			Type:        model.TransactionType(*r.Type),
			Date:        date,
		}
		if err := txn.Validate(); err != nil {
			return ImportResult{}, fmt.Errorf("%w: record %d: %v", ErrInvalidFormat, i, err)
		}
		incoming = append(incoming, txn)
	}

	return l.Merge(ctx, incoming)
}

// Merge adds records to the collection, skipping any whose ID already exists
// (first-write wins; there is no content-based conflict resolution). Records
// without an ID get a generated one. The merged collection is persisted
// before it becomes visible.
func (l *Ledger) Merge(ctx context.Context, records []model.Transaction) (ImportResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing := make(map[string]struct{}, len(l.txns))
	for i := range l.txns {
		existing[l.txns[i].ID] = struct{}{}
	}

	next := make([]model.Transaction, len(l.txns), len(l.txns)+len(records))
	copy(next, l.txns)

	var res ImportResult
	for _, txn := range records {
		if txn.ID == "" {
			txn.ID = model.NewID()
		}
		if _, dup := existing[txn.ID]; dup {
			res.Skipped++
			continue
		}
		existing[txn.ID] = struct{}{}
		next = append(next, txn)
		res.Added++
	}

	if res.Added > 0 {
		if err := l.persistLocked(ctx, next); err != nil {
			return ImportResult{}, err
		}
		l.txns = next
		l.notify()
	}

	slog.Info("Merged transactions", "added", res.Added, "skipped", res.Skipped)
	return res, nil
}
