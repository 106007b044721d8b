package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrWriteSnapshot = errors.New("metrics snapshot write failed")
)
