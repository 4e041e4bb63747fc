package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/repositories"
)

// ItemRepository implementa repositories.ItemRepository
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository cria um novo ItemRepository
func NewItemRepository(db *gorm.DB) repositories.ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context) ([]*entities.Item, error) {
	var models []*ItemModel

	if err := dbFromContext(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Item, 0, len(models))
	for _, model := range models {
		items = append(items, &entities.Item{
			ID:    model.ID,
			Title: model.Title,
			Image: model.Image,
		})
	}

	return items, nil
}
