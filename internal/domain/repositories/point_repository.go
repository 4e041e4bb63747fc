package repositories

import (
	"context"

	"github.com/rafabene/ecoleta/internal/domain/entities"
)

// PointRepository define a interface para persistência de pontos de coleta
type PointRepository interface {
	Create(ctx context.Context, point *entities.Point) error
	CreateItems(ctx context.Context, pointItems []entities.PointItem) error
	FindByID(ctx context.Context, id uint) (*entities.Point, error)
	ItemTitles(ctx context.Context, pointID uint) ([]string, error)
	List(ctx context.Context, filters PointFilters) ([]*entities.Point, error)
}

// PointFilters contém filtros para listagem de pontos.
// City e UF são comparados por igualdade exata; ItemIDs exige ao menos uma associação.
type PointFilters struct {
	City    string
	UF      string
	ItemIDs []uint
}
