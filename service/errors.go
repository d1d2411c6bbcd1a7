package service

import "errors"

// Failure classes of the generate/delete flows. Callers match with
// errors.Is; the wrapped cause carries the detail.
var (
	// ErrSynthesis: the customization options could not be turned into
	// an artifact. Never retried automatically.
	ErrSynthesis = errors.New("tool synthesis failed")

	// ErrUpload: blob upload or download-URL retrieval failed. No
	// metadata record was written.
	ErrUpload = errors.New("artifact upload failed")

	// ErrMetadataWrite: the record write failed after a successful
	// upload. The uploaded blob is orphaned and stays behind; there is
	// no automatic rollback or reconciliation.
	ErrMetadataWrite = errors.New("tool metadata write failed")

	// ErrNotFound: no tool with that id belongs to the owner.
	ErrNotFound = errors.New("tool not found")

	// ErrDelete: metadata deletion failed. Blob removal is best effort
	// and never produces this error on its own.
	ErrDelete = errors.New("tool delete failed")
)
