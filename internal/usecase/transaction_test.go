package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionRunsOperationsInOrder(t *testing.T) {
	txn := NewTransaction()

	var ran []string
	txn.AddOperation("first", func(context.Context) error {
		ran = append(ran, "first")
		return nil
	})
	txn.AddOperation("second", func(context.Context) error {
		ran = append(ran, "second")
		return nil
	})

	assert.NoError(t, txn.Execute(context.Background()))
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestTransactionCompensatesFailedOperationItself(t *testing.T) {
	txn := NewTransaction()

	var compensated []string
	txn.AddOperation("write", func(context.Context) error {
		return errors.New("partial write")
	})
	txn.AddCompensation("undo_write", func(context.Context) error {
		compensated = append(compensated, "undo_write")
		return nil
	})

	err := txn.Execute(context.Background())

	assert.Error(t, err)
	// The failing operation's own compensation runs, covering whatever
	// partial effects it left behind.
	assert.Equal(t, []string{"undo_write"}, compensated)
}

func TestTransactionCompensatesNewestFirst(t *testing.T) {
	txn := NewTransaction()

	var compensated []string
	txn.AddOperation("a", func(context.Context) error { return nil })
	txn.AddCompensation("undo_a", func(context.Context) error {
		compensated = append(compensated, "undo_a")
		return nil
	})
	txn.AddOperation("b", func(context.Context) error { return nil })
	txn.AddCompensation("undo_b", func(context.Context) error {
		compensated = append(compensated, "undo_b")
		return nil
	})
	txn.AddOperation("c", func(context.Context) error {
		return errors.New("boom")
	})

	err := txn.Execute(context.Background())

	assert.Error(t, err)
	assert.Equal(t, []string{"undo_b", "undo_a"}, compensated)
}
