package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/repositories"
)

// PointRepository implementa repositories.PointRepository
type PointRepository struct {
	db *gorm.DB
}

// NewPointRepository cria um novo PointRepository
func NewPointRepository(db *gorm.DB) repositories.PointRepository {
	return &PointRepository{db: db}
}

func (r *PointRepository) Create(ctx context.Context, point *entities.Point) error {
	model := r.toModel(point)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	point.ID = model.ID
	return nil
}

// CreateItems insere as associações em lote
func (r *PointRepository) CreateItems(ctx context.Context, pointItems []entities.PointItem) error {
	if len(pointItems) == 0 {
		return nil
	}

	models := make([]*PointItemModel, 0, len(pointItems))
	for _, pi := range pointItems {
		models = append(models, &PointItemModel{PointID: pi.PointID, ItemID: pi.ItemID})
	}

	return dbFromContext(ctx, r.db).Create(&models).Error
}

func (r *PointRepository) FindByID(ctx context.Context, id uint) (*entities.Point, error) {
	var model PointModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// ItemTitles retorna os títulos dos itens associados ao ponto
//
//	SELECT items.title FROM items
//	  JOIN point_items ON items.id = point_items.item_id
//	  WHERE point_items.point_id = ?
func (r *PointRepository) ItemTitles(ctx context.Context, pointID uint) ([]string, error) {
	titles := []string{}

	err := dbFromContext(ctx, r.db).
		Model(&ItemModel{}).
		Joins("JOIN point_items ON items.id = point_items.item_id").
		Where("point_items.point_id = ?", pointID).
		Order("point_items.id").
		Pluck("items.title", &titles).Error
	if err != nil {
		return nil, err
	}

	return titles, nil
}

// List retorna pontos distintos da cidade/UF associados a ao menos um dos itens
func (r *PointRepository) List(ctx context.Context, filters repositories.PointFilters) ([]*entities.Point, error) {
	if len(filters.ItemIDs) == 0 {
		return []*entities.Point{}, nil
	}

	var models []*PointModel

	err := dbFromContext(ctx, r.db).
		Model(&PointModel{}).
		Distinct("points.*").
		Joins("JOIN point_items ON points.id = point_items.point_id").
		Where("point_items.item_id IN ?", filters.ItemIDs).
		Where("points.city = ?", filters.City).
		Where("points.uf = ?", filters.UF).
		Order("points.id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Conversores
func (r *PointRepository) toModel(point *entities.Point) *PointModel {
	return &PointModel{
		ID:        point.ID,
		Image:     point.Image,
		Name:      point.Name,
		Email:     point.Email,
		Whatsapp:  point.Whatsapp,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		City:      point.City,
		UF:        point.UF,
	}
}

func (r *PointRepository) toEntity(model *PointModel) *entities.Point {
	return &entities.Point{
		ID:        model.ID,
		Image:     model.Image,
		Name:      model.Name,
		Email:     model.Email,
		Whatsapp:  model.Whatsapp,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		City:      model.City,
		UF:        model.UF,
	}
}

func (r *PointRepository) toEntities(models []*PointModel) []*entities.Point {
	points := make([]*entities.Point, 0, len(models))
	for _, model := range models {
		points = append(points, r.toEntity(model))
	}
	return points
}
