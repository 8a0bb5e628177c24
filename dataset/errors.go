package dataset

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a data file whose extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported data format")

var errNotFinite = errors.New("value must be finite")

// RecordError reports an invalid field of one record. Row is 1-based and
// counts data rows, not header rows.
type RecordError struct {
	Row   int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("dataset: record %d, field %q: %v", e.Row, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
