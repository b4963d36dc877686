// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cartbridge/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for guest cart persistence.
var (
	// ErrGuestCartNotFound is returned when no guest cart exists for a client.
	ErrGuestCartNotFound = errors.New("guest cart not found")
)

// GuestCartRepository defines the interface for the persistent guest-cart
// store. The store holds only the guest item list, keyed by client ID;
// the backend cart mirror and the engine flags are never persisted.
type GuestCartRepository interface {
	// LoadItems retrieves the persisted guest items for a client in
	// insertion order. A client with no persisted cart gets an empty list,
	// not an error.
	LoadItems(ctx context.Context, clientID string) ([]entity.GuestCartItem, error)

	// SaveItems replaces the persisted guest items for a client with the
	// given list.
	SaveItems(ctx context.Context, clientID string, items []entity.GuestCartItem) error

	// Clear removes every persisted guest item for a client.
	Clear(ctx context.Context, clientID string) error
}
