package usecase

import (
	"context"
	"fmt"
	"log"
)

// Transaction runs a list of operations in order and, when one fails,
// applies the registered compensations newest first (saga style). The
// compensation at index i pairs with the operation at index i and also runs
// when that operation itself fails, so it must undo partial effects of its
// own operation, not just a completed one. The datastore offers no multi-row
// atomicity here, so this is the consistency mechanism for multi-step writes.
type Transaction struct {
	operations    []operation
	compensations []operation
}

type operation struct {
	name string
	fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, operation{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, operation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) {
	// Start at the failed operation itself: its compensation cleans up
	// whatever partial effects it managed before erroring.
	for i := failedAt; i >= 0; i-- {
		if i >= len(t.compensations) {
			continue
		}
		comp := t.compensations[i]
		if err := comp.fn(ctx); err != nil {
			log.Printf("⚠️ compensation '%s' failed: %v (inconsistency risk)", comp.name, err)
		}
	}
}
