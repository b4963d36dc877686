package sqlite

import (
	"context"
	"encoding/json"

	"cartbridge/internal/domain/entity"
	domainerrors "cartbridge/internal/domain/errors"
	"cartbridge/internal/domain/repository"
	"cartbridge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// guestCartRepository implements the repository.GuestCartRepository interface.
type guestCartRepository struct {
	db *gorm.DB
}

// NewGuestCartRepository is the constructor for guestCartRepository.
func NewGuestCartRepository(db *gorm.DB) repository.GuestCartRepository {
	return &guestCartRepository{
		db: db,
	}
}

// LoadItems retrieves the persisted guest items for a client in insertion
// order. A client with no rows gets an empty list.
func (repo *guestCartRepository) LoadItems(ctx context.Context, clientID string) ([]entity.GuestCartItem, error) {
	var itemModels []*model.GuestCartItemModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart items")
	}

	items := make([]entity.GuestCartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		item, err := toGuestItemDomain(itemM)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, nil
}

// SaveItems replaces the persisted guest items for a client with the given
// list, atomically.
func (repo *guestCartRepository) SaveItems(ctx context.Context, clientID string, items []entity.GuestCartItem) error {
	itemModels := make([]*model.GuestCartItemModel, 0, len(items))
	for i := range items {
		itemM, err := fromGuestItemDomain(clientID, i, &items[i])
		if err != nil {
			return err
		}
		itemModels = append(itemModels, itemM)
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", clientID).
			Delete(&model.GuestCartItemModel{}).Error; err != nil {
			return err
		}

		if len(itemModels) == 0 {
			return nil
		}

		return tx.Create(&itemModels).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save guest cart items")
	}

	return nil
}

// Clear removes every persisted guest item for a client.
func (repo *guestCartRepository) Clear(ctx context.Context, clientID string) error {
	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.GuestCartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear guest cart")
	}

	return nil
}

// --- Mapper Functions ---

// toGuestItemDomain converts a GORM GuestCartItemModel to a domain GuestCartItem.
func toGuestItemDomain(data *model.GuestCartItemModel) (*entity.GuestCartItem, error) {
	if data == nil {
		return nil, nil
	}

	item := &entity.GuestCartItem{
		Quantity: data.Quantity,
		AddedAt:  data.AddedAt,
	}

	if err := json.Unmarshal([]byte(data.ProductJSON), &item.Product); err != nil {
		return nil, errors.Wrap(err, "failed to decode guest item product snapshot")
	}
	if err := json.Unmarshal([]byte(data.CustomizationsJSON), &item.Customizations); err != nil {
		return nil, errors.Wrap(err, "failed to decode guest item customizations")
	}

	return item, nil
}

// fromGuestItemDomain converts a domain GuestCartItem to a GORM GuestCartItemModel.
func fromGuestItemDomain(clientID string, position int, data *entity.GuestCartItem) (*model.GuestCartItemModel, error) {
	if data == nil {
		return nil, nil
	}

	productJSON, err := json.Marshal(data.Product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode guest item product snapshot")
	}
	customizationsJSON, err := json.Marshal(data.Customizations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode guest item customizations")
	}

	return &model.GuestCartItemModel{
		ClientID:           clientID,
		Position:           position,
		ProductJSON:        string(productJSON),
		Quantity:           data.Quantity,
		CustomizationsJSON: string(customizationsJSON),
		AddedAt:            data.AddedAt,
	}, nil
}
