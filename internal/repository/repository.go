package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nao1215/salesreport/internal/model"
)

// ErrDataAccess is the sentinel for every failure talking to the store.
// errors.Is(err, ErrDataAccess) is true for every *DataAccessError.
var ErrDataAccess = errors.New("data access failed")

// SalesRepository returns the summed sale amount for a date range.
type SalesRepository interface {
	// SumBetween returns the total amount of sales recorded on days within r.
	// It returns 0 and no error when no sale matches.
	SumBetween(ctx context.Context, r model.DateRange) (model.Amount, error)
}

// DataAccessError reports a store failure: the store is unreachable, a query
// is malformed, or a row could not be scanned.
type DataAccessError struct {
	// Op names the failing operation, e.g. "sum sales".
	Op string

	// Err is the underlying driver error.
	Err error
}

// NewDataAccessError wraps err for operation op.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Op, e.Err)
}

// Unwrap exposes both the sentinel and the driver error to errors.Is.
func (e *DataAccessError) Unwrap() []error {
	return []error{ErrDataAccess, e.Err}
}
