// Package batch runs independent, read-only validations concurrently.
// It never touches GameState — every call it wraps is a pure query — so
// fanning them out across goroutines is always safe, unlike the tactical
// action pipeline's synchronous, strictly-ordered steps.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nicoberrocal/galaxyCore/entities"
	"github.com/nicoberrocal/galaxyCore/errs"
	"github.com/nicoberrocal/galaxyCore/movement"
)

// BatchValidator runs many independent movement validations concurrently
// against a shared, read-only snapshot.
type BatchValidator struct {
	Validator *movement.Validator
}

// NewBatchValidator wraps an existing movement.Validator for concurrent
// use; Validator itself holds no mutable state, so sharing one instance
// across goroutines is safe.
func NewBatchValidator(v *movement.Validator) *BatchValidator {
	return &BatchValidator{Validator: v}
}

// MoveOutcome is ValidateMany's per-input result: the resolved path (nil
// on failure) and the validation error (nil on success), tagged with the
// input's original index so callers can correlate results back to
// requests regardless of completion order.
type MoveOutcome struct {
	Index int
	Path  []entities.SystemID
	Err   *errs.ValidationError
}

// ValidateMany validates every move in moves concurrently and returns one
// result per input, in input order. A failure in one move never affects
// the others — each is an independent read-only check, so there is
// nothing here to roll back.
func (b *BatchValidator) ValidateMany(ctx context.Context, moves []movement.MoveInput) ([]MoveOutcome, error) {
	results := make([]MoveOutcome, len(moves))
	g, _ := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			path, verr := b.Validator.ValidateMovement(m)
			results[i] = MoveOutcome{Index: i, Path: path, Err: verr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
