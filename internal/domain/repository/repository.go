// Package repository defines the data access layer interfaces.
package repository

import (
	"context"
)

// TxKey is the context key carrying an open transaction.
type TxKey struct{}

// Transactor runs a function inside a transaction. Cascading deletes go
// through here so that a partial failure rolls back instead of being
// silently accepted.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
