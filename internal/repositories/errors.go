package repositories

import "errors"

// ErrNotFound is returned when a record does not exist, or when it exists
// but is owned by a different user than the one asking. Handlers translate
// it to a 404 either way so callers cannot probe for other users' records.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects an insert.
// The database constraint, not an application-level check, is the
// authoritative signal, so concurrent identical requests cannot both win.
var ErrDuplicate = errors.New("record already exists")
