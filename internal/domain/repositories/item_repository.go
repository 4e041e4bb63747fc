package repositories

import (
	"context"

	"github.com/rafabene/ecoleta/internal/domain/entities"
)

// ItemRepository define a interface para leitura dos itens de coleta
type ItemRepository interface {
	List(ctx context.Context) ([]*entities.Item, error)
}
