package permstore

import "errors"

var (
	// ErrStorageRead is returned by Storage implementations when the
	// slot cannot be read. The store recovers from it by falling back
	// to computed defaults; it never reaches load-path callers.
	ErrStorageRead = errors.New("permstore: storage read failed")

	// ErrStorageWrite is returned when the slot cannot be written.
	ErrStorageWrite = errors.New("permstore: storage write failed")

	// ErrCorruptBlob is returned when the persisted blob does not
	// round-trip through the matrix codec.
	ErrCorruptBlob = errors.New("permstore: corrupt permission blob")

	// ErrUnknownFormat is returned for unsupported export formats.
	ErrUnknownFormat = errors.New("permstore: unknown export format")
)
