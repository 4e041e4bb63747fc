package services

import (
	"context"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/ports"
	"github.com/rafabene/ecoleta/internal/domain/repositories"
)

// ItemService expõe os itens de coleta
type ItemService struct {
	itemRepo repositories.ItemRepository
	logger   ports.Logger
}

// NewItemService cria um novo ItemService
func NewItemService(itemRepo repositories.ItemRepository, logger ports.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// ListItems lista todos os itens, sem filtros nem paginação
func (s *ItemService) ListItems(ctx context.Context) ([]*entities.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		return nil, err
	}
	return items, nil
}
