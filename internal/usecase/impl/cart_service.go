package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cartbridge/internal/domain/entity"
	domainerrors "cartbridge/internal/domain/errors"
	"cartbridge/internal/domain/repository"
	"cartbridge/internal/domain/service"
	"cartbridge/internal/usecase"

	"github.com/pkg/errors"
)

// cartService is one client's reconciliation engine. It owns the guest
// list and the backend mirror and keeps exactly one of them active.
//
// opMu serializes whole operations (including their network calls) so
// overlapping requests from the delivery layer cannot interleave their
// mutate-then-reload sequences. stateMu guards the state fields only, so
// reads stay responsive while a backend call is in flight.
type cartService struct {
	clientID  string
	guestRepo repository.GuestCartRepository
	api       service.CartAPIClient
	logger    *slog.Logger

	opMu sync.Mutex

	stateMu       sync.RWMutex
	guestItems    []entity.GuestCartItem
	backendCart   *entity.BackendCart
	authenticated bool
	loading       bool
}

// NewCartEngine constructs the engine for one client and hydrates its
// guest list from the persistent store, so a restart restores an
// anonymous visitor's cart.
func NewCartEngine(ctx context.Context, clientID string, guestRepo repository.GuestCartRepository, api service.CartAPIClient, logger *slog.Logger) (usecase.CartUsecase, error) {
	items, err := guestRepo.LoadItems(ctx, clientID)
	if err != nil {
		if !errors.Is(err, repository.ErrGuestCartNotFound) {
			return nil, errors.Wrap(err, "failed to load persisted guest cart")
		}
		items = nil
	}

	return &cartService{
		clientID:   clientID,
		guestRepo:  guestRepo,
		api:        api,
		logger:     logger,
		guestItems: items,
	}, nil
}

// --- Read model ---

// View returns the full read model in one call.
func (s *cartService) View() *usecase.CartView {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	items := s.activeLines()
	view := &usecase.CartView{
		Items:         items,
		Authenticated: s.authenticated,
		Loading:       s.loading,
	}
	for _, line := range items {
		view.ItemCount += line.Quantity
		view.TotalPriceCents += int64(line.Quantity) * line.UnitPriceCents
	}

	return view
}

// Items returns the active list: guest rows while anonymous, the backend
// mirror while authenticated, never both.
func (s *cartService) Items() []usecase.CartLine {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.activeLines()
}

// ItemCount returns the summed quantity over active items.
func (s *cartService) ItemCount() int {
	var count int
	for _, line := range s.Items() {
		count += line.Quantity
	}

	return count
}

// TotalPriceCents returns the summed quantity x unit price over active items.
func (s *cartService) TotalPriceCents() int64 {
	var total int64
	for _, line := range s.Items() {
		total += int64(line.Quantity) * line.UnitPriceCents
	}

	return total
}

// IsAuthenticated reports the current mode.
func (s *cartService) IsAuthenticated() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.authenticated
}

// IsLoading reports whether a backend call is in flight.
func (s *cartService) IsLoading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.loading
}

// activeLines builds the uniform read model. Callers hold stateMu.
func (s *cartService) activeLines() []usecase.CartLine {
	if s.authenticated {
		if s.backendCart == nil {
			return []usecase.CartLine{}
		}

		lines := make([]usecase.CartLine, 0, len(s.backendCart.Items))
		for i, item := range s.backendCart.Items {
			lines = append(lines, usecase.CartLine{
				Index:          i,
				ItemID:         item.ID,
				Product:        item.Product,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
				Customizations: entity.Customizations{
					FinishID:     item.SelectedFinishID,
					UpholsteryID: item.SelectedUpholsteryID,
					Notes:        item.ItemNotes,
					Extra:        item.CustomOptions,
				},
			})
		}

		return lines
	}

	lines := make([]usecase.CartLine, 0, len(s.guestItems))
	for i, item := range s.guestItems {
		lines = append(lines, usecase.CartLine{
			Index:          i,
			Product:        item.Product,
			Quantity:       item.Quantity,
			UnitPriceCents: item.Product.FallbackUnitPriceCents(),
			Customizations: item.Customizations,
		})
	}

	return lines
}

// --- Mutations ---

// AddItem adds a product to the active cart.
func (s *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) error {
	if input == nil || input.Quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.IsAuthenticated() {
		s.addGuestItem(ctx, input)

		return nil
	}

	return s.withLoading(func() error {
		if err := s.api.AddItem(ctx, toItemPayload(input.Product.ID, input.Quantity, input.Customizations)); err != nil {
			return errors.Wrap(err, "failed to add backend cart item")
		}

		return s.reloadBackendCart(ctx)
	})
}

// addGuestItem merges into an existing row with the same product and
// customizations, or appends a new one. Always succeeds; persistence is
// write-behind.
func (s *cartService) addGuestItem(ctx context.Context, input *usecase.AddItemInput) {
	key := entity.GuestCartItem{Product: input.Product, Customizations: input.Customizations}.DedupKey()

	s.stateMu.Lock()
	merged := false
	for i := range s.guestItems {
		if s.guestItems[i].DedupKey() == key {
			s.guestItems[i].Quantity += input.Quantity
			merged = true

			break
		}
	}
	if !merged {
		s.guestItems = append(s.guestItems, entity.GuestCartItem{
			Product:        input.Product,
			Quantity:       input.Quantity,
			Customizations: input.Customizations,
			AddedAt:        time.Now(),
		})
	}
	s.stateMu.Unlock()

	s.persistGuestItems(ctx)
}

// RemoveItem removes the row at index. A stale index is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, index int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.removeItemLocked(ctx, index)
}

func (s *cartService) removeItemLocked(ctx context.Context, index int) error {
	if !s.IsAuthenticated() {
		s.stateMu.Lock()
		if index < 0 || index >= len(s.guestItems) {
			s.stateMu.Unlock()

			return nil
		}
		s.guestItems = append(s.guestItems[:index], s.guestItems[index+1:]...)
		s.stateMu.Unlock()

		s.persistGuestItems(ctx)

		return nil
	}

	itemID, ok := s.backendItemID(index)
	if !ok {
		return nil
	}

	return s.withLoading(func() error {
		if err := s.api.RemoveItem(ctx, itemID); err != nil {
			return errors.Wrap(err, "failed to remove backend cart item")
		}

		return s.reloadBackendCart(ctx)
	})
}

// UpdateQuantity sets the quantity of the row at index; zero or below
// removes the row.
func (s *cartService) UpdateQuantity(ctx context.Context, index, quantity int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if quantity <= 0 {
		return s.removeItemLocked(ctx, index)
	}

	if !s.IsAuthenticated() {
		s.stateMu.Lock()
		if index < 0 || index >= len(s.guestItems) {
			s.stateMu.Unlock()

			return nil
		}
		s.guestItems[index].Quantity = quantity
		s.stateMu.Unlock()

		s.persistGuestItems(ctx)

		return nil
	}

	itemID, ok := s.backendItemID(index)
	if !ok {
		return nil
	}

	return s.withLoading(func() error {
		patch := &service.CartItemPatch{Quantity: &quantity}
		if err := s.api.UpdateItem(ctx, itemID, patch); err != nil {
			return errors.Wrap(err, "failed to update backend cart item quantity")
		}

		return s.reloadBackendCart(ctx)
	})
}

// UpdateCustomizations replaces the customizations of the row at index.
func (s *cartService) UpdateCustomizations(ctx context.Context, index int, customizations entity.Customizations) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.IsAuthenticated() {
		s.stateMu.Lock()
		if index < 0 || index >= len(s.guestItems) {
			s.stateMu.Unlock()

			return nil
		}
		s.guestItems[index].Customizations = customizations
		s.stateMu.Unlock()

		s.persistGuestItems(ctx)

		return nil
	}

	itemID, ok := s.backendItemID(index)
	if !ok {
		return nil
	}

	return s.withLoading(func() error {
		notes := customizations.Notes
		patch := &service.CartItemPatch{
			SelectedFinishID:     &customizations.FinishID,
			SelectedUpholsteryID: &customizations.UpholsteryID,
			ItemNotes:            &notes,
		}
		if len(customizations.Extra) > 0 {
			patch.CustomOptions = customizations.Extra
		}
		if err := s.api.UpdateItem(ctx, itemID, patch); err != nil {
			return errors.Wrap(err, "failed to update backend cart item customizations")
		}

		return s.reloadBackendCart(ctx)
	})
}

// UpdateNotes replaces only the free-form notes of the row at index.
func (s *cartService) UpdateNotes(ctx context.Context, index int, notes string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.IsAuthenticated() {
		s.stateMu.Lock()
		if index < 0 || index >= len(s.guestItems) {
			s.stateMu.Unlock()

			return nil
		}
		s.guestItems[index].Customizations.Notes = notes
		s.stateMu.Unlock()

		s.persistGuestItems(ctx)

		return nil
	}

	itemID, ok := s.backendItemID(index)
	if !ok {
		return nil
	}

	return s.withLoading(func() error {
		patch := &service.CartItemPatch{ItemNotes: &notes}
		if err := s.api.UpdateItem(ctx, itemID, patch); err != nil {
			return errors.Wrap(err, "failed to update backend cart item notes")
		}

		return s.reloadBackendCart(ctx)
	})
}

// ClearCart empties the active list. A cleared backend cart is
// represented as absent until the next fetch.
func (s *cartService) ClearCart(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.IsAuthenticated() {
		s.stateMu.Lock()
		s.guestItems = nil
		s.stateMu.Unlock()

		if err := s.guestRepo.Clear(ctx, s.clientID); err != nil {
			s.logger.Warn("failed to clear persisted guest cart",
				slog.String("clientId", s.clientID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return s.withLoading(func() error {
		if err := s.api.ClearCart(ctx); err != nil {
			return errors.Wrap(err, "failed to clear backend cart")
		}

		s.stateMu.Lock()
		s.backendCart = nil
		s.stateMu.Unlock()

		return nil
	})
}

// Refresh reloads the backend mirror; in guest mode it does nothing.
func (s *cartService) Refresh(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.IsAuthenticated() {
		return nil
	}

	return s.withLoading(func() error {
		return s.reloadBackendCart(ctx)
	})
}

// --- Mode transitions ---

// SwitchToAuthMode drains the guest list into the backend cart after a
// successful login. The merge is best-effort in three tiers: bulk merge,
// per-item adds, then load-existing-or-stay-guest. Only when all three
// tiers fail does it return an error, leaving the engine in guest mode
// with every item intact for a later retry.
func (s *cartService) SwitchToAuthMode(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.IsAuthenticated() {
		return nil
	}

	guest := s.snapshotGuestItems()

	if len(guest) == 0 {
		return s.withLoading(func() error {
			s.setAuthenticated(true)

			cart, err := s.api.FetchCart(ctx)
			if err != nil {
				// Nothing to lose here: the mirror stays absent and the next
				// mutation or refresh reloads server truth.
				s.logger.Warn("cart fetch after login failed",
					slog.String("clientId", s.clientID),
					slog.Any("error", err),
				)
				s.setBackendCart(nil)

				return nil
			}
			s.setBackendCart(cart)

			return nil
		})
	}

	return s.withLoading(func() error {
		payloads := make([]*service.CartItemPayload, 0, len(guest))
		for _, item := range guest {
			payloads = append(payloads, toItemPayload(item.Product.ID, item.Quantity, item.Customizations))
		}

		mergeErr := s.api.MergeItems(ctx, payloads)
		if mergeErr == nil {
			s.finishMerge(ctx)

			return nil
		}
		s.logger.Warn("bulk cart merge failed, falling back to per-item adds",
			slog.String("clientId", s.clientID),
			slog.Int("itemCount", len(payloads)),
			slog.Any("error", mergeErr),
		)

		if s.mergeItemByItem(ctx, payloads) {
			s.finishMerge(ctx)

			return nil
		}

		// Total merge failure. A cart may still exist server-side from a
		// prior session; showing it beats showing nothing.
		cart, fetchErr := s.api.FetchCart(ctx)
		if fetchErr != nil {
			s.logger.Error("cart merge, fallback and fetch all failed, staying in guest mode",
				slog.String("clientId", s.clientID),
				slog.Any("error", fetchErr),
			)

			return domainerrors.ErrCartMergeFailed
		}

		// The guest list was never transferred, so it is kept, dormant,
		// until a later retry or logout.
		s.stateMu.Lock()
		s.backendCart = cart
		s.authenticated = true
		s.stateMu.Unlock()

		return nil
	})
}

// SwitchToGuestMode discards the backend mirror on logout and reverts to
// the persisted guest list. It never touches the guest items.
func (s *cartService) SwitchToGuestMode() {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.stateMu.Lock()
	s.backendCart = nil
	s.authenticated = false
	s.stateMu.Unlock()
}

// mergeItemByItem adds the guest items one call at a time, logging and
// skipping individual failures so one bad item does not block the rest.
// The tier counts as failed only when not a single item went through.
func (s *cartService) mergeItemByItem(ctx context.Context, payloads []*service.CartItemPayload) bool {
	var succeeded int
	for _, payload := range payloads {
		if ctx.Err() != nil {
			break
		}

		if err := s.api.AddItem(ctx, payload); err != nil {
			s.logger.Warn("per-item cart merge failed for one item",
				slog.String("clientId", s.clientID),
				slog.String("productId", payload.ProductID),
				slog.Any("error", err),
			)

			continue
		}
		succeeded++
	}

	return succeeded > 0
}

// finishMerge completes a successful (or fallback-successful) merge:
// reload server truth, drain the guest list exactly once, enter auth mode.
func (s *cartService) finishMerge(ctx context.Context) {
	cart, err := s.api.FetchCart(ctx)
	if err != nil {
		s.logger.Warn("cart reload after merge failed",
			slog.String("clientId", s.clientID),
			slog.Any("error", err),
		)
		cart = nil
	}

	s.stateMu.Lock()
	s.backendCart = cart
	s.guestItems = nil
	s.authenticated = true
	s.stateMu.Unlock()

	if err := s.guestRepo.Clear(ctx, s.clientID); err != nil {
		s.logger.Warn("failed to clear persisted guest cart after merge",
			slog.String("clientId", s.clientID),
			slog.Any("error", err),
		)
	}
}

// --- Helpers ---

// withLoading marks a backend call in flight and guarantees the flag is
// cleared on every exit path.
func (s *cartService) withLoading(fn func() error) error {
	s.setLoading(true)
	defer s.setLoading(false)

	return fn()
}

// reloadBackendCart refetches the full cart so any partial-success
// ambiguity resolves against server truth.
func (s *cartService) reloadBackendCart(ctx context.Context) error {
	cart, err := s.api.FetchCart(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to reload backend cart")
	}

	s.setBackendCart(cart)

	return nil
}

// backendItemID resolves a row index to the server-assigned item ID.
func (s *cartService) backendItemID(index int) (string, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if s.backendCart == nil || index < 0 || index >= len(s.backendCart.Items) {
		return "", false
	}

	return s.backendCart.Items[index].ID, true
}

// persistGuestItems mirrors the in-memory guest list to the store. The
// in-memory list is authoritative for guest mode, so a failed write is
// logged, not surfaced.
func (s *cartService) persistGuestItems(ctx context.Context) {
	items := s.snapshotGuestItems()

	if err := s.guestRepo.SaveItems(ctx, s.clientID, items); err != nil {
		s.logger.Warn("failed to persist guest cart",
			slog.String("clientId", s.clientID),
			slog.Int("itemCount", len(items)),
			slog.Any("error", err),
		)
	}
}

func (s *cartService) snapshotGuestItems() []entity.GuestCartItem {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	items := make([]entity.GuestCartItem, len(s.guestItems))
	copy(items, s.guestItems)

	return items
}

func (s *cartService) setLoading(loading bool) {
	s.stateMu.Lock()
	s.loading = loading
	s.stateMu.Unlock()
}

func (s *cartService) setAuthenticated(authenticated bool) {
	s.stateMu.Lock()
	s.authenticated = authenticated
	s.stateMu.Unlock()
}

func (s *cartService) setBackendCart(cart *entity.BackendCart) {
	s.stateMu.Lock()
	s.backendCart = cart
	s.stateMu.Unlock()
}

// toItemPayload translates guest customizations into the backend's
// normalized shape: finish and upholstery become their ID fields, notes
// become item_notes, and whatever remains travels as custom_options
// (nil, not an empty object, when there is nothing left).
func toItemPayload(productID string, quantity int, c entity.Customizations) *service.CartItemPayload {
	payload := &service.CartItemPayload{
		ProductID:            productID,
		Quantity:             quantity,
		SelectedFinishID:     c.FinishID,
		SelectedUpholsteryID: c.UpholsteryID,
		ItemNotes:            c.Notes,
	}
	if len(c.Extra) > 0 {
		payload.CustomOptions = c.Extra
	}

	return payload
}
