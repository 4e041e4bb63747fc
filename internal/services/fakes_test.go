package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/repositories"
)

// fakePointRepository guarda pontos em memória; escritas feitas dentro de uma
// transação só são publicadas no commit do fakeUnitOfWork.
type fakePointRepository struct {
	mu          sync.Mutex
	nextID      uint
	points      map[uint]*entities.Point
	pointItems  []entities.PointItem
	itemTitles  map[uint]string
	createErr   error
	itemsErr    error
	pendingPts  []*entities.Point
	pendingItms []entities.PointItem
}

func newFakePointRepository() *fakePointRepository {
	return &fakePointRepository{
		nextID: 1,
		points: map[uint]*entities.Point{},
		itemTitles: map[uint]string{
			1: "Lâmpadas",
			2: "Pilhas e Baterias",
			3: "Papéis e Papelão",
		},
	}
}

func (r *fakePointRepository) Create(_ context.Context, point *entities.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	point.ID = r.nextID
	r.nextID++
	clone := *point
	r.pendingPts = append(r.pendingPts, &clone)
	return nil
}

func (r *fakePointRepository) CreateItems(_ context.Context, pointItems []entities.PointItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.itemsErr != nil {
		return r.itemsErr
	}
	r.pendingItms = append(r.pendingItms, pointItems...)
	return nil
}

func (r *fakePointRepository) FindByID(_ context.Context, id uint) (*entities.Point, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	point, ok := r.points[id]
	if !ok {
		return nil, nil
	}
	clone := *point
	return &clone, nil
}

func (r *fakePointRepository) ItemTitles(_ context.Context, pointID uint) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	titles := []string{}
	for _, pi := range r.pointItems {
		if pi.PointID == pointID {
			titles = append(titles, r.itemTitles[pi.ItemID])
		}
	}
	return titles, nil
}

func (r *fakePointRepository) List(_ context.Context, filters repositories.PointFilters) ([]*entities.Point, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := map[uint]bool{}
	for _, id := range filters.ItemIDs {
		wanted[id] = true
	}

	seen := map[uint]bool{}
	points := []*entities.Point{}
	for _, pi := range r.pointItems {
		point := r.points[pi.PointID]
		if !wanted[pi.ItemID] || seen[pi.PointID] || point.City != filters.City || point.UF != filters.UF {
			continue
		}
		seen[pi.PointID] = true
		points = append(points, point)
	}
	return points, nil
}

func (r *fakePointRepository) commit() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.pendingPts {
		r.points[p.ID] = p
	}
	r.pointItems = append(r.pointItems, r.pendingItms...)
	r.pendingPts, r.pendingItms = nil, nil
}

func (r *fakePointRepository) rollback() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pendingPts, r.pendingItms = nil, nil
}

func (r *fakePointRepository) rowCounts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.points), len(r.pointItems)
}

// fakeUnitOfWork publica ou descarta as escritas pendentes do repositório
type fakeUnitOfWork struct {
	repo      *fakePointRepository
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.commits++
	u.repo.commit()
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	u.rollbacks++
	u.repo.rollback()
	return nil
}

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		_ = u.Rollback(ctx)
		return err
	}
	return u.Commit(ctx)
}

// fakeStorage guarda os arquivos em memória
type fakeStorage struct {
	files   map[string][]byte
	counter int
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Save(_ context.Context, originalName string, content io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	s.counter++
	name := fmt.Sprintf("%012x-%s", s.counter, originalName)
	s.files[name] = data
	return name, nil
}

func (s *fakeStorage) Remove(_ context.Context, storedName string) error {
	delete(s.files, storedName)
	return nil
}

type fakeItemRepository struct {
	items []*entities.Item
	err   error
}

func (r *fakeItemRepository) List(context.Context) ([]*entities.Item, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

var errDatabase = errors.New("database unavailable")
