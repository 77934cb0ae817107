// Package integrity holds the error sentinels every repository uses to report
// record-level and reference-level failures.
package integrity

import crerr "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned when a keyed record does not exist.
	ErrNotFound = crerr.New("record not found")
	// ErrReferential is returned when an operation names a missing endpoint or
	// would leave a required reference dangling.
	ErrReferential = crerr.New("referential integrity violation")
	// ErrConflict is returned when a lifecycle transition is not allowed from
	// the record's current state.
	ErrConflict = crerr.New("record state conflict")
	// ErrInvalid is returned when storage rejects a value outside its domain.
	ErrInvalid = crerr.New("invalid input")
)
