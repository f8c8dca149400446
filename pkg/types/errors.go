package types

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// DataLoadError is returned when a data source cannot be read, decoded or
// loaded in time. Callers render a degraded result instead of failing.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

func NewDataLoadError(source string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Err: err}
}

// NotFoundError reports a missing record id or taxonomy slug.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func IsDataLoadError(err error) bool {
	var dl *DataLoadError
	return errors.As(err, &dl)
}
