// Package memory provides an in-process SalesRepository.
package memory

import (
	"context"
	"sync"

	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/repository"
)

// Repository keeps sales in a slice. It is safe for concurrent use.
type Repository struct {
	mu    sync.RWMutex
	sales []model.Sale

	// err, when set, is returned by SumBetween to simulate an unavailable store.
	err error
}

var _ repository.SalesRepository = (*Repository)(nil)

// New creates a Repository holding sales.
func New(sales ...model.Sale) *Repository {
	r := &Repository{}
	r.Add(sales...)
	return r
}

// Add appends sales.
func (r *Repository) Add(sales ...model.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, sales...)
}

// FailWith makes subsequent SumBetween calls fail with a DataAccessError
// wrapping err. Pass nil to recover.
func (r *Repository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// SumBetween implements repository.SalesRepository.
func (r *Repository) SumBetween(ctx context.Context, rng model.DateRange) (model.Amount, error) {
	if err := ctx.Err(); err != nil {
		return 0, repository.NewDataAccessError("sum sales", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return 0, repository.NewDataAccessError("sum sales", r.err)
	}

	var total model.Amount
	for _, s := range r.sales {
		if rng.Contains(s.CreateAt.UTC()) {
			total += s.Amount
		}
	}
	return total, nil
}

// Len returns the number of stored sales.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sales)
}
