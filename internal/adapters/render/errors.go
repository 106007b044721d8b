package render

import "errors"

var (
	// ErrUnsupportedFormat is returned by Export for an unknown file extension.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrExport wraps failures while writing an export file.
	ErrExport = errors.New("export failed")
	// ErrWrite wraps failures while writing a rendered table.
	ErrWrite = errors.New("write table failed")
)
