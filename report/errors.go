package report

import "errors"

var (
	// ErrEmptyName indicates an entry without a name.
	ErrEmptyName = errors.New("report: entry name is required")

	// ErrWrite indicates the output sink rejected a write.
	ErrWrite = errors.New("report: write failed")
)
