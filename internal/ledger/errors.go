package ledger

import "errors"

// Ledger operation errors. All of them surface to the caller as-is; none are
// retried, and the in-memory collection keeps its last-good state after any
// failure.
var (
	// ErrCorruptData means the persisted collection could not be decoded.
	ErrCorruptData = errors.New("persisted transactions are corrupt")

	// ErrInvalidFormat means an imported document is not a JSON array of
	// valid transactions. The whole batch is rejected.
	ErrInvalidFormat = errors.New("import document is not a valid transaction list")

	// ErrImportInFlight means another import is still running. Callers treat
	// it as a silent no-op rather than a failure.
	ErrImportInFlight = errors.New("an import is already in progress")

	// ErrEmptyCollection means export was attempted with zero transactions.
	ErrEmptyCollection = errors.New("no transactions to export")

	// ErrShareUnavailable means no share mechanism exists on this system.
	ErrShareUnavailable = errors.New("no share mechanism available")
)
