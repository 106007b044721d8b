package service

import "errors"

// ErrNoFiles is returned when a run is requested without input files.
var ErrNoFiles = errors.New("no input files given")
