package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cartbridge/internal/domain/entity"
	"cartbridge/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "guest_carts.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.GuestCartItemModel{}))

	return db
}

func sampleItems() []entity.GuestCartItem {
	return []entity.GuestCartItem{
		{
			Product:        entity.ProductRef{ID: "prod-chair", Name: "Conference Chair", PriceCents: 24900},
			Quantity:       3,
			Customizations: entity.Customizations{FinishID: 7, Notes: "rush order"},
			AddedAt:        time.Now().Truncate(time.Second),
		},
		{
			Product:        entity.ProductRef{ID: "prod-desk", Name: "Standing Desk", BasePriceCents: 89900},
			Quantity:       1,
			Customizations: entity.Customizations{Extra: map[string]string{"cable_tray": "yes"}},
			AddedAt:        time.Now().Truncate(time.Second),
		},
	}
}

func TestGuestCartRepository_SaveAndLoadRoundTrip(t *testing.T) {
	repo := NewGuestCartRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveItems(ctx, "client-1", sampleItems()))

	loaded, err := repo.LoadItems(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "prod-chair", loaded[0].Product.ID)
	assert.Equal(t, 3, loaded[0].Quantity)
	assert.Equal(t, int64(7), loaded[0].Customizations.FinishID)
	assert.Equal(t, "rush order", loaded[0].Customizations.Notes)
	assert.Equal(t, "yes", loaded[1].Customizations.Extra["cable_tray"])
}

func TestGuestCartRepository_LoadItems_UnknownClientIsEmpty(t *testing.T) {
	repo := NewGuestCartRepository(newTestDB(t))

	loaded, err := repo.LoadItems(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestGuestCartRepository_SaveItems_ReplacesPreviousList(t *testing.T) {
	repo := NewGuestCartRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveItems(ctx, "client-1", sampleItems()))

	replacement := sampleItems()[:1]
	replacement[0].Quantity = 9
	require.NoError(t, repo.SaveItems(ctx, "client-1", replacement))

	loaded, err := repo.LoadItems(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 9, loaded[0].Quantity)
}

func TestGuestCartRepository_SaveItems_EmptyListClearsRows(t *testing.T) {
	repo := NewGuestCartRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveItems(ctx, "client-1", sampleItems()))
	require.NoError(t, repo.SaveItems(ctx, "client-1", nil))

	loaded, err := repo.LoadItems(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestGuestCartRepository_ClientsAreIsolated(t *testing.T) {
	repo := NewGuestCartRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveItems(ctx, "client-1", sampleItems()))
	require.NoError(t, repo.SaveItems(ctx, "client-2", sampleItems()[:1]))

	require.NoError(t, repo.Clear(ctx, "client-1"))

	gone, err := repo.LoadItems(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.LoadItems(ctx, "client-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestGuestCartRepository_PreservesInsertionOrder(t *testing.T) {
	repo := NewGuestCartRepository(newTestDB(t))
	ctx := context.Background()

	items := make([]entity.GuestCartItem, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, entity.GuestCartItem{
			Product:  entity.ProductRef{ID: "prod-" + id},
			Quantity: 1,
			AddedAt:  time.Now(),
		})
	}
	require.NoError(t, repo.SaveItems(ctx, "client-1", items))

	loaded, err := repo.LoadItems(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, loaded, 5)
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, "prod-"+id, loaded[i].Product.ID)
	}
}
