package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownReport is returned when no strategy is registered under a name.
var ErrUnknownReport = errors.New("unknown report")

// UnknownReportError names the requested report and what is available.
type UnknownReportError struct {
	Name      string
	Available []string
}

func (e *UnknownReportError) Error() string {
	return fmt.Sprintf("report %q not found; available reports: %s", e.Name, strings.Join(e.Available, ", "))
}

func (e *UnknownReportError) Unwrap() error { return ErrUnknownReport }
