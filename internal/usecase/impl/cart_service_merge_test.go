package impl

import (
	"context"
	"testing"

	"cartbridge/internal/domain/entity"
	domainerrors "cartbridge/internal/domain/errors"
	"cartbridge/internal/domain/service"
	"cartbridge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func guestFixture() []entity.GuestCartItem {
	return []entity.GuestCartItem{
		{
			Product:        entity.ProductRef{ID: "prod-chair", PriceCents: 24900},
			Quantity:       3,
			Customizations: entity.Customizations{FinishID: 7},
		},
		{
			Product:        entity.ProductRef{ID: "prod-desk", PriceCents: 89900},
			Quantity:       1,
			Customizations: entity.Customizations{UpholsteryID: 4, Notes: "left-hand return"},
		},
	}
}

func backendFixture() *entity.BackendCart {
	return &entity.BackendCart{
		ID: "cart-9",
		Items: []entity.BackendCartItem{
			{
				ID:               "item-1",
				Product:          entity.ProductRef{ID: "prod-chair"},
				Quantity:         3,
				UnitPriceCents:   23900,
				SelectedFinishID: 7,
			},
			{
				ID:                   "item-2",
				Product:              entity.ProductRef{ID: "prod-desk"},
				Quantity:             1,
				UnitPriceCents:       89900,
				SelectedUpholsteryID: 4,
				ItemNotes:            "left-hand return",
			},
		},
	}
}

func TestCartEngine_SwitchToAuthMode_BulkMergeSuccess(t *testing.T) {
	engine, guestRepo, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	var merged []*service.CartItemPayload
	api.EXPECT().
		MergeItems(ctx, mock.Anything).
		Run(func(_ context.Context, payloads []*service.CartItemPayload) {
			merged = payloads
		}).
		Return(nil).
		Once()
	api.EXPECT().
		FetchCart(ctx).
		Return(backendFixture(), nil).
		Once()
	guestRepo.EXPECT().
		Clear(ctx, "client-1").
		Return(nil).
		Once()

	require.NoError(t, engine.SwitchToAuthMode(ctx))

	require.Len(t, merged, 2)
	assert.Equal(t, "prod-chair", merged[0].ProductID)
	assert.Equal(t, 3, merged[0].Quantity)
	assert.Equal(t, int64(7), merged[0].SelectedFinishID)
	assert.Nil(t, merged[0].CustomOptions)
	assert.Equal(t, "left-hand return", merged[1].ItemNotes)

	assert.True(t, engine.IsAuthenticated())
	items := engine.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ItemID)
	assert.Equal(t, int64(23900), items[0].UnitPriceCents)

	// The guest list was drained exactly once, so logout reveals nothing.
	engine.SwitchToGuestMode()
	assert.Empty(t, engine.Items())
}

func TestCartEngine_SwitchToAuthMode_FallbackPerItem(t *testing.T) {
	engine, guestRepo, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	api.EXPECT().
		MergeItems(ctx, mock.Anything).
		Return(errors.New("merge endpoint unavailable")).
		Once()
	api.EXPECT().
		AddItem(ctx, mock.Anything).
		Return(nil).
		Times(2)
	api.EXPECT().
		FetchCart(ctx).
		Return(backendFixture(), nil).
		Once()
	guestRepo.EXPECT().
		Clear(ctx, "client-1").
		Return(nil).
		Once()

	require.NoError(t, engine.SwitchToAuthMode(ctx))
	assert.True(t, engine.IsAuthenticated())
	assert.Len(t, engine.Items(), 2)
}

func TestCartEngine_SwitchToAuthMode_PartialFallbackStillCompletes(t *testing.T) {
	engine, guestRepo, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	api.EXPECT().
		MergeItems(ctx, mock.Anything).
		Return(errors.New("merge endpoint unavailable")).
		Once()
	api.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(p *service.CartItemPayload) bool {
			return p.ProductID == "prod-chair"
		})).
		Return(errors.New("product discontinued")).
		Once()
	api.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(p *service.CartItemPayload) bool {
			return p.ProductID == "prod-desk"
		})).
		Return(nil).
		Once()
	api.EXPECT().
		FetchCart(ctx).
		Return(backendFixture(), nil).
		Once()
	guestRepo.EXPECT().
		Clear(ctx, "client-1").
		Return(nil).
		Once()

	// One item made it through, so the merge counts as done.
	require.NoError(t, engine.SwitchToAuthMode(ctx))
	assert.True(t, engine.IsAuthenticated())
}

func TestCartEngine_SwitchToAuthMode_TotalFailureStaysGuest(t *testing.T) {
	engine, _, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	api.EXPECT().
		MergeItems(ctx, mock.Anything).
		Return(errors.New("merge endpoint unavailable")).
		Once()
	api.EXPECT().
		AddItem(ctx, mock.Anything).
		Return(errors.New("upstream down")).
		Times(2)
	api.EXPECT().
		FetchCart(ctx).
		Return(nil, errors.New("upstream down")).
		Once()

	err := engine.SwitchToAuthMode(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrCartMergeFailed)

	// Every item survives for a later retry.
	assert.False(t, engine.IsAuthenticated())
	items := engine.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.False(t, engine.IsLoading())
}

func TestCartEngine_SwitchToAuthMode_TotalMergeFailureShowsExistingCart(t *testing.T) {
	engine, _, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	api.EXPECT().
		MergeItems(ctx, mock.Anything).
		Return(errors.New("merge endpoint unavailable")).
		Once()
	api.EXPECT().
		AddItem(ctx, mock.Anything).
		Return(errors.New("upstream down")).
		Times(2)
	api.EXPECT().
		FetchCart(ctx).
		Return(backendFixture(), nil).
		Once()

	require.NoError(t, engine.SwitchToAuthMode(ctx))
	assert.True(t, engine.IsAuthenticated())
	assert.Len(t, engine.Items(), 2)

	// The untransferred guest list stays dormant and comes back on logout.
	engine.SwitchToGuestMode()
	assert.False(t, engine.IsAuthenticated())
	assert.Len(t, engine.Items(), 2)
	assert.Equal(t, "prod-chair", engine.Items()[0].Product.ID)
}

func TestCartEngine_SwitchToAuthMode_EmptyGuestJustFetches(t *testing.T) {
	engine, _, api := newGuestEngine(t, nil)
	ctx := context.Background()

	api.EXPECT().
		FetchCart(ctx).
		Return(backendFixture(), nil).
		Once()

	require.NoError(t, engine.SwitchToAuthMode(ctx))
	assert.True(t, engine.IsAuthenticated())
	assert.Len(t, engine.Items(), 2)

	// Already authenticated: a second switch does nothing.
	require.NoError(t, engine.SwitchToAuthMode(ctx))
}

func TestCartEngine_SwitchToAuthMode_EmptyGuestFetchFailureIsTolerated(t *testing.T) {
	engine, _, api := newGuestEngine(t, nil)
	ctx := context.Background()

	api.EXPECT().
		FetchCart(ctx).
		Return(nil, errors.New("upstream down")).
		Once()

	// Nothing to lose, so the switch still succeeds with an absent mirror.
	require.NoError(t, engine.SwitchToAuthMode(ctx))
	assert.True(t, engine.IsAuthenticated())
	assert.Empty(t, engine.Items())
}

func TestCartEngine_SwitchToGuestMode_DiscardsMirrorOnly(t *testing.T) {
	engine, guestRepo, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	api.EXPECT().MergeItems(ctx, mock.Anything).Return(nil).Once()
	api.EXPECT().FetchCart(ctx).Return(backendFixture(), nil).Once()
	guestRepo.EXPECT().Clear(ctx, "client-1").Return(nil).Once()

	require.NoError(t, engine.SwitchToAuthMode(ctx))
	engine.SwitchToGuestMode()

	assert.False(t, engine.IsAuthenticated())
	assert.Empty(t, engine.Items())

	// Logging out twice is harmless.
	engine.SwitchToGuestMode()
	assert.False(t, engine.IsAuthenticated())
}

func TestCartEngine_LoadingFlagDuringMerge(t *testing.T) {
	engine, guestRepo, api := newGuestEngine(t, guestFixture())
	ctx := context.Background()

	api.EXPECT().MergeItems(ctx, mock.Anything).Return(nil).Once()
	api.EXPECT().
		FetchCart(ctx).
		RunAndReturn(func(context.Context) (*entity.BackendCart, error) {
			assert.True(t, engine.IsLoading())

			return backendFixture(), nil
		}).
		Once()
	guestRepo.EXPECT().Clear(ctx, "client-1").Return(nil).Once()

	require.NoError(t, engine.SwitchToAuthMode(ctx))
	assert.False(t, engine.IsLoading())
}

func TestCartEngine_PersistedCartSurvivesRestartAndMerges(t *testing.T) {
	ctx := context.Background()

	// First session: a visitor customizes a chair and leaves.
	first, firstRepo, _ := newGuestEngine(t, nil)
	var saved []entity.GuestCartItem
	firstRepo.EXPECT().
		SaveItems(ctx, "client-1", mock.Anything).
		Run(func(_ context.Context, _ string, items []entity.GuestCartItem) {
			saved = items
		}).
		Return(nil)

	input := &usecase.AddItemInput{
		Product:        entity.ProductRef{ID: "prod-chair", PriceCents: 24900},
		Quantity:       3,
		Customizations: entity.Customizations{FinishID: 7},
	}
	require.NoError(t, first.AddItem(ctx, input))
	require.Len(t, saved, 1)

	// Second session: the persisted cart hydrates a fresh engine and the
	// visitor logs in.
	second, secondRepo, api := newGuestEngine(t, saved)

	var merged []*service.CartItemPayload
	api.EXPECT().
		MergeItems(ctx, mock.Anything).
		Run(func(_ context.Context, payloads []*service.CartItemPayload) {
			merged = payloads
		}).
		Return(nil).
		Once()
	api.EXPECT().FetchCart(ctx).Return(backendFixture(), nil).Once()
	secondRepo.EXPECT().Clear(ctx, "client-1").Return(nil).Once()

	require.NoError(t, second.SwitchToAuthMode(ctx))

	require.Len(t, merged, 1)
	assert.Equal(t, "prod-chair", merged[0].ProductID)
	assert.Equal(t, 3, merged[0].Quantity)
	assert.Equal(t, int64(7), merged[0].SelectedFinishID)
}
