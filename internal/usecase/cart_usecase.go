// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"cartbridge/internal/domain/entity"
)

// AddItemInput carries everything needed to put a product in the cart.
type AddItemInput struct {
	Product        entity.ProductRef     `json:"product" validate:"required"`
	Quantity       int                   `json:"quantity" validate:"required,gt=0"`
	Customizations entity.Customizations `json:"customizations"`
}

// CartLine is one row of the uniform read model. Index addresses the row
// for mutations in either mode; ItemID is the server-assigned ID and is
// empty for guest rows.
type CartLine struct {
	Index          int                   `json:"index"`
	ItemID         string                `json:"item_id,omitempty"`
	Product        entity.ProductRef     `json:"product"`
	Quantity       int                   `json:"quantity"`
	UnitPriceCents int64                 `json:"unit_price_cents"`
	Customizations entity.Customizations `json:"customizations"`
}

// CartView is the aggregate read model the UI renders from, identical in
// shape for guest and authenticated carts.
type CartView struct {
	Items           []CartLine `json:"items"`
	ItemCount       int        `json:"item_count"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Authenticated   bool       `json:"authenticated"`
	Loading         bool       `json:"loading"`
}

// CartUsecase is one client's cart reconciliation engine. It owns the
// locally persisted guest list and the server-mirrored backend list,
// routes every operation to the active one, and runs the merge protocol
// between them on login.
//
// Read operations are pure and never fail; mutation operations branch on
// the current mode. Implementations serialize their own state, so
// concurrent calls from the delivery layer are safe but not reordered.
type CartUsecase interface {
	// View returns the full read model in one call.
	View() *CartView

	// Items returns the active item list: the guest list while anonymous,
	// the backend mirror while authenticated, never both.
	Items() []CartLine

	// ItemCount returns the summed quantity over active items.
	ItemCount() int

	// TotalPriceCents returns the summed quantity x unit price over active
	// items. Guest items without a server price fall back through the
	// product snapshot's sale then base price, then zero.
	TotalPriceCents() int64

	// IsAuthenticated reports the current mode.
	IsAuthenticated() bool

	// IsLoading reports whether a backend call is in flight.
	IsLoading() bool

	// AddItem adds a product. In guest mode an existing row with the same
	// product and customizations has its quantity incremented instead of
	// duplicating the row; in backend mode the server decides.
	AddItem(ctx context.Context, input *AddItemInput) error

	// RemoveItem removes the row at the given index of the active list.
	// An index that no longer resolves is a no-op, not an error.
	RemoveItem(ctx context.Context, index int) error

	// UpdateQuantity sets the quantity of the row at index. A quantity of
	// zero or below removes the row.
	UpdateQuantity(ctx context.Context, index, quantity int) error

	// UpdateCustomizations replaces the customizations of the row at index.
	UpdateCustomizations(ctx context.Context, index int, customizations entity.Customizations) error

	// UpdateNotes replaces only the free-form notes of the row at index.
	UpdateNotes(ctx context.Context, index int, notes string) error

	// ClearCart empties the active list.
	ClearCart(ctx context.Context) error

	// Refresh reloads the backend mirror from the server. In guest mode it
	// does nothing.
	Refresh(ctx context.Context) error

	// SwitchToAuthMode runs the merge protocol after a successful login or
	// registration: bulk merge, then per-item fallback, then
	// load-existing-or-stay-guest. It returns an error only when all three
	// tiers failed, in which case the engine stays in guest mode with the
	// guest list intact.
	SwitchToAuthMode(ctx context.Context) error

	// SwitchToGuestMode discards the backend mirror on logout and reverts
	// to the persisted guest list.
	SwitchToGuestMode()
}
