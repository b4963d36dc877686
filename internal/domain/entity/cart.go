// Package entity contains the core business objects of the project.
package entity

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ProductRef is an opaque snapshot of a product as the visitor selected it
// (id plus display fields). The cart engine never re-validates it against
// the catalog; prices on it are only a fallback until the backend assigns
// a server-computed unit price.
type ProductRef struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SKU            string `json:"sku,omitempty"`
	PriceCents     int64  `json:"price_cents,omitempty"`
	BasePriceCents int64  `json:"base_price_cents,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// FallbackUnitPriceCents resolves the unit price for an item that has no
// server-computed price yet: sale price, then base price, then zero.
func (p ProductRef) FallbackUnitPriceCents() int64 {
	if p.PriceCents > 0 {
		return p.PriceCents
	}
	if p.BasePriceCents > 0 {
		return p.BasePriceCents
	}

	return 0
}

// Customizations is the typed form of the per-item customization data.
// A zero FinishID/UpholsteryID means "not selected"; Extra carries any
// free-form options the storefront attaches beyond finish and upholstery.
type Customizations struct {
	FinishID     int64             `json:"finish_id,omitempty"`
	UpholsteryID int64             `json:"upholstery_id,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// IsZero reports whether no customization was chosen at all.
func (c Customizations) IsZero() bool {
	return c.FinishID == 0 && c.UpholsteryID == 0 && c.Notes == "" && len(c.Extra) == 0
}

// CanonicalKey returns a stable textual form of the customizations, with
// Extra keys sorted, so that two equal customization sets always produce
// the same key regardless of map iteration order.
func (c Customizations) CanonicalKey() string {
	var b strings.Builder
	b.WriteString("f=")
	b.WriteString(strconv.FormatInt(c.FinishID, 10))
	b.WriteString(";u=")
	b.WriteString(strconv.FormatInt(c.UpholsteryID, 10))
	b.WriteString(";n=")
	b.WriteString(c.Notes)

	if len(c.Extra) > 0 {
		keys := make([]string, 0, len(c.Extra))
		for k := range c.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(";x:")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(c.Extra[k])
		}
	}

	return b.String()
}

// Equal reports whether two customization sets are equivalent.
func (c Customizations) Equal(other Customizations) bool {
	return c.CanonicalKey() == other.CanonicalKey()
}

// GuestCartItem is one row of the locally persisted guest cart.
type GuestCartItem struct {
	Product        ProductRef     `json:"product"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations"`
	AddedAt        time.Time      `json:"added_at"`
}

// DedupKey identifies a guest row: same product with the same
// customizations must collapse into a single row.
func (i GuestCartItem) DedupKey() string {
	return i.Product.ID + "|" + i.Customizations.CanonicalKey()
}

// BackendCartItem mirrors one item of the server-backed cart. It is keyed
// by the server-assigned ID and carries the backend's normalized
// customization fields.
type BackendCartItem struct {
	ID                   string            `json:"id"`
	Product              ProductRef        `json:"product"`
	Quantity             int               `json:"quantity"`
	UnitPriceCents       int64             `json:"unit_price"`
	SelectedFinishID     int64             `json:"selected_finish_id,omitempty"`
	SelectedUpholsteryID int64             `json:"selected_upholstery_id,omitempty"`
	CustomOptions        map[string]string `json:"custom_options,omitempty"`
	ItemNotes            string            `json:"item_notes,omitempty"`
}

// BackendCart mirrors the server-backed cart. It is never persisted
// locally; the server stays the single source of truth while
// authenticated.
type BackendCart struct {
	ID    string            `json:"id"`
	Items []BackendCartItem `json:"items"`
}
