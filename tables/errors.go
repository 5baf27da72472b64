package tables

import "errors"

// NotFound is returned by index lookups that match nothing.
const NotFound = -1

var (
	// ErrIndexRange indicates a slot index outside [0, Len()).
	ErrIndexRange = errors.New("tables: index out of range")

	// ErrLimitExceeded indicates a capacity request beyond the table's limit.
	ErrLimitExceeded = errors.New("tables: limit exceeded")

	// ErrNameIndexRange indicates a name index that was never registered.
	ErrNameIndexRange = errors.New("tables: invalid name index")

	// ErrUnknownKind indicates a Kind outside the five content tables.
	ErrUnknownKind = errors.New("tables: unknown table kind")

	// ErrAlreadyMaterialized indicates a name already bound to an object type.
	ErrAlreadyMaterialized = errors.New("tables: name already materialized")
)

// FatalError wraps a condition after which the patch load cannot continue.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is, or wraps, a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
