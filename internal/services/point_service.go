package services

import (
	"context"
	errs "errors"
	"fmt"
	"io"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/errors"
	"github.com/rafabene/ecoleta/internal/domain/ports"
	"github.com/rafabene/ecoleta/internal/domain/repositories"
	"github.com/rafabene/ecoleta/internal/domain/valueobjects"
)

// PointService contém a lógica de negócio dos pontos de coleta
type PointService struct {
	pointRepo repositories.PointRepository
	uow       ports.UnitOfWork
	storage   ports.FileStorage
	logger    ports.Logger
}

// NewPointService cria um novo PointService
func NewPointService(
	pointRepo repositories.PointRepository,
	uow ports.UnitOfWork,
	storage ports.FileStorage,
	logger ports.Logger,
) *PointService {
	return &PointService{
		pointRepo: pointRepo,
		uow:       uow,
		storage:   storage,
		logger:    logger,
	}
}

// Upload é o arquivo de foto enviado junto com o cadastro
type Upload struct {
	Name    string
	Content io.Reader
}

// CreatePointInput representa os dados já validados para criar um ponto
type CreatePointInput struct {
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string
	ItemIDs   []uint
	Image     *Upload
}

// ListPointsInput representa os filtros da listagem
type ListPointsInput struct {
	City    string
	UF      string
	ItemIDs []uint
}

// CreatePoint valida os dados, grava a foto e então o ponto e suas associações
// em uma única transação. Se a transação falhar a foto gravada é removida.
func (s *PointService) CreatePoint(ctx context.Context, input CreatePointInput) (*entities.Point, error) {
	if input.Image == nil || input.Image.Content == nil {
		return nil, errors.ErrImageRequired
	}
	if len(input.ItemIDs) == 0 {
		return nil, errors.ErrNoItems
	}

	uf, err := valueobjects.NewUF(input.UF)
	if err != nil {
		return nil, err
	}

	point := &entities.Point{
		Name:      input.Name,
		Email:     input.Email,
		Whatsapp:  input.Whatsapp,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		City:      input.City,
		UF:        uf.String(),
	}

	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidPointData, err)
	}

	stored, err := s.storage.Save(ctx, input.Image.Name, input.Image.Content)
	if errs.Is(err, errors.ErrImageTooLarge) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to store point image", "error", err, "file", input.Image.Name)
		return nil, fmt.Errorf("%w: %v", errors.ErrStorageFailure, err)
	}
	point.Image = stored

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.pointRepo.Create(txCtx, point); err != nil {
			return fmt.Errorf("insert point: %w", err)
		}
		if err := s.pointRepo.CreateItems(txCtx, point.Associations(input.ItemIDs)); err != nil {
			return fmt.Errorf("insert point items: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create point", "error", err)
		s.discard(ctx, stored)
		return nil, err
	}

	s.logger.Info("point created",
		"point_id", point.ID,
		"city", point.City,
		"uf", point.UF,
		"items", len(input.ItemIDs),
	)

	return point, nil
}

// GetPoint busca um ponto com os títulos dos seus itens
func (s *PointService) GetPoint(ctx context.Context, id uint) (*entities.PointDetail, error) {
	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, errors.ErrPointNotFound
	}

	titles, err := s.pointRepo.ItemTitles(ctx, point.ID)
	if err != nil {
		return nil, err
	}

	return &entities.PointDetail{Point: point, ItemTitles: titles}, nil
}

// ListPoints lista pontos distintos da cidade/UF que aceitam algum dos itens
func (s *PointService) ListPoints(ctx context.Context, input ListPointsInput) ([]*entities.Point, error) {
	if len(input.ItemIDs) == 0 {
		return []*entities.Point{}, nil
	}

	return s.pointRepo.List(ctx, repositories.PointFilters{
		City:    input.City,
		UF:      input.UF,
		ItemIDs: input.ItemIDs,
	})
}

func (s *PointService) discard(ctx context.Context, stored string) {
	if err := s.storage.Remove(ctx, stored); err != nil {
		s.logger.Warn("failed to remove orphan image", "file", stored, "error", err)
	}
}
