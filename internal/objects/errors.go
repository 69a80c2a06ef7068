package objects

import "errors"

// Every failure returned by this package wraps exactly one of these sentinels.
// Callers match with errors.Is; none of them is transient, so nothing is retried.
var (
	// ErrNotFound means no object is stored under the requested hash.
	ErrNotFound = errors.New("object not found")

	// ErrFormat means a header, tree line, name or hash is malformed, or a declared length does not match.
	ErrFormat = errors.New("invalid object format")

	// ErrCorruption means stored bytes could not be decompressed or do not hash to their name.
	ErrCorruption = errors.New("corrupt object")

	// ErrIO means a filesystem read, write or listing failed.
	ErrIO = errors.New("object i/o failure")
)
