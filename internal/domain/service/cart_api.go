// Package service defines the interfaces for outbound collaborators.
package service

import (
	"context"

	"cartbridge/internal/domain/entity"
)

// CartItemPayload is the backend's normalized add-item shape. FinishID,
// UpholsteryID and ItemNotes are lifted out of the guest customizations;
// whatever remains travels in CustomOptions, which must be nil (not an
// empty object) when there is nothing left.
type CartItemPayload struct {
	ProductID            string            `json:"product_id"`
	Quantity             int               `json:"quantity"`
	SelectedFinishID     int64             `json:"selected_finish_id,omitempty"`
	SelectedUpholsteryID int64             `json:"selected_upholstery_id,omitempty"`
	ItemNotes            string            `json:"item_notes,omitempty"`
	CustomOptions        map[string]string `json:"custom_options,omitempty"`
}

// CartItemPatch is a partial update of one backend cart item. Nil fields
// are omitted from the request body; a pointer to a zero value clears the
// field server-side.
type CartItemPatch struct {
	Quantity             *int              `json:"quantity,omitempty"`
	SelectedFinishID     *int64            `json:"selected_finish_id,omitempty"`
	SelectedUpholsteryID *int64            `json:"selected_upholstery_id,omitempty"`
	ItemNotes            *string           `json:"item_notes,omitempty"`
	CustomOptions        map[string]string `json:"custom_options,omitempty"`
}

// CartAPIClient is the engine's view of the REST cart API. Implementations
// attach the caller's credentials from the context; the engine itself never
// handles tokens.
type CartAPIClient interface {
	// FetchCart retrieves the current backend cart with nested items.
	FetchCart(ctx context.Context) (*entity.BackendCart, error)

	// AddItem adds or increments one item server-side.
	AddItem(ctx context.Context, payload *CartItemPayload) error

	// UpdateItem applies a partial update to one item.
	UpdateItem(ctx context.Context, itemID string, patch *CartItemPatch) error

	// RemoveItem deletes one item.
	RemoveItem(ctx context.Context, itemID string) error

	// ClearCart empties the backend cart.
	ClearCart(ctx context.Context) error

	// MergeItems submits a whole guest cart in one bulk call. Server
	// behavior on partial failure is opaque; callers must treat any error
	// as "merge did not happen" and fall back.
	MergeItems(ctx context.Context, payloads []*CartItemPayload) error
}
