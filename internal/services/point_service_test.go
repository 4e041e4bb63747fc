package services_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	domainerrors "github.com/rafabene/ecoleta/internal/domain/errors"
	"github.com/rafabene/ecoleta/internal/infrastructure/logging"
	"github.com/rafabene/ecoleta/internal/services"
)

var _ = Describe("PointService", func() {
	var (
		ctx     context.Context
		repo    *fakePointRepository
		uow     *fakeUnitOfWork
		storage *fakeStorage
		service *services.PointService
	)

	validInput := func(items ...uint) services.CreatePointInput {
		return services.CreatePointInput{
			Name:      "Mercado do Bairro",
			Email:     "contato@mercado.com",
			Whatsapp:  "11999999999",
			Latitude:  -23.5505,
			Longitude: -46.6333,
			City:      "São Paulo",
			UF:        "SP",
			ItemIDs:   items,
			Image:     &services.Upload{Name: "fachada.jpg", Content: strings.NewReader("jpeg")},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakePointRepository()
		uow = &fakeUnitOfWork{repo: repo}
		storage = newFakeStorage()
		service = services.NewPointService(repo, uow, storage, logging.NewNopLogger())
	})

	Describe("CreatePoint", func() {
		It("grava a foto, o ponto e uma associação por item", func() {
			point, err := service.CreatePoint(ctx, validInput(1, 2, 2))

			Expect(err).NotTo(HaveOccurred())
			Expect(point.ID).To(Equal(uint(1)))
			Expect(point.Image).To(HaveSuffix("-fachada.jpg"))
			Expect(storage.files).To(HaveKey(point.Image))
			Expect(uow.commits).To(Equal(1))

			Expect(repo.pointItems).To(Equal([]entities.PointItem{
				{PointID: 1, ItemID: 1},
				{PointID: 1, ItemID: 2},
				{PointID: 1, ItemID: 2},
			}))
		})

		It("faz rollback de ambos quando as associações falham", func() {
			repo.itemsErr = errDatabase

			_, err := service.CreatePoint(ctx, validInput(1, 2))

			Expect(err).To(MatchError(errDatabase))
			Expect(uow.rollbacks).To(Equal(1))
			points, pointItems := repo.rowCounts()
			Expect(points).To(BeZero())
			Expect(pointItems).To(BeZero())
		})

		It("remove a foto gravada quando a transação falha", func() {
			repo.createErr = errDatabase

			_, err := service.CreatePoint(ctx, validInput(1))

			Expect(err).To(HaveOccurred())
			Expect(storage.files).To(BeEmpty())
		})

		It("exige a imagem", func() {
			input := validInput(1)
			input.Image = nil

			_, err := service.CreatePoint(ctx, input)

			Expect(err).To(MatchError(domainerrors.ErrImageRequired))
			Expect(storage.files).To(BeEmpty())
		})

		It("exige ao menos um item", func() {
			_, err := service.CreatePoint(ctx, validInput())

			Expect(err).To(MatchError(domainerrors.ErrNoItems))
		})

		It("rejeita UF com mais de 2 caracteres sem gravar nada", func() {
			input := validInput(1)
			input.UF = "SPX"

			_, err := service.CreatePoint(ctx, input)

			Expect(err).To(MatchError(domainerrors.ErrInvalidUF))
			Expect(storage.files).To(BeEmpty())
			Expect(uow.commits + uow.rollbacks).To(BeZero())
		})

		It("propaga falha de armazenamento", func() {
			storage.saveErr = errors.New("disk full")

			_, err := service.CreatePoint(ctx, validInput(1))

			Expect(err).To(MatchError(domainerrors.ErrStorageFailure))
			points, _ := repo.rowCounts()
			Expect(points).To(BeZero())
		})

		It("devolve foto grande demais como erro de validação", func() {
			storage.saveErr = domainerrors.ErrImageTooLarge

			_, err := service.CreatePoint(ctx, validInput(1))

			Expect(err).To(MatchError(domainerrors.ErrImageTooLarge))
			Expect(err).NotTo(MatchError(domainerrors.ErrStorageFailure))
			Expect(uow.commits + uow.rollbacks).To(BeZero())
		})

		It("rejeita nome em branco antes de gravar a foto", func() {
			input := validInput(1)
			input.Name = "  "

			_, err := service.CreatePoint(ctx, input)

			Expect(err).To(MatchError(entities.ErrInvalidPointData))
			Expect(storage.counter).To(BeZero())
			Expect(storage.files).To(BeEmpty())
		})

		It("rejeita cidade em branco antes de gravar a foto", func() {
			input := validInput(1)
			input.City = "\t "

			_, err := service.CreatePoint(ctx, input)

			Expect(err).To(MatchError(entities.ErrInvalidPointData))
			Expect(storage.counter).To(BeZero())
		})

		It("rejeita UF com espaços nas bordas", func() {
			input := validInput(1)
			input.UF = " S"

			_, err := service.CreatePoint(ctx, input)

			Expect(err).To(MatchError(domainerrors.ErrInvalidUF))
			Expect(storage.counter).To(BeZero())
		})
	})

	Describe("GetPoint", func() {
		It("retorna o ponto com os títulos dos itens", func() {
			created, err := service.CreatePoint(ctx, validInput(1, 2, 3))
			Expect(err).NotTo(HaveOccurred())

			detail, err := service.GetPoint(ctx, created.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Point.Name).To(Equal("Mercado do Bairro"))
			Expect(detail.ItemTitles).To(ConsistOf("Lâmpadas", "Pilhas e Baterias", "Papéis e Papelão"))
		})

		It("retorna ErrPointNotFound para id inexistente", func() {
			_, err := service.GetPoint(ctx, 42)

			Expect(err).To(MatchError(domainerrors.ErrPointNotFound))
		})
	})

	Describe("ListPoints", func() {
		BeforeEach(func() {
			tagged := validInput(2)
			_, err := service.CreatePoint(ctx, tagged)
			Expect(err).NotTo(HaveOccurred())

			untagged := validInput(1)
			untagged.Name = "Sem pilhas"
			untagged.Image = &services.Upload{Name: "b.jpg", Content: strings.NewReader("b")}
			_, err = service.CreatePoint(ctx, untagged)
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna apenas o ponto associado ao item pedido", func() {
			points, err := service.ListPoints(ctx, services.ListPointsInput{City: "São Paulo", UF: "SP", ItemIDs: []uint{2}})

			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(1))
			Expect(points[0].Name).To(Equal("Mercado do Bairro"))
		})

		It("retorna lista vazia sem itens", func() {
			points, err := service.ListPoints(ctx, services.ListPointsInput{City: "São Paulo", UF: "SP"})

			Expect(err).NotTo(HaveOccurred())
			Expect(points).NotTo(BeNil())
			Expect(points).To(BeEmpty())
		})
	})
})

var _ = Describe("ItemService", func() {
	It("lista todos os itens", func() {
		repo := &fakeItemRepository{items: []*entities.Item{{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"}}}
		service := services.NewItemService(repo, logging.NewNopLogger())

		items, err := service.ListItems(context.Background())

		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))
	})

	It("propaga erro do repositório", func() {
		service := services.NewItemService(&fakeItemRepository{err: errDatabase}, logging.NewNopLogger())

		_, err := service.ListItems(context.Background())

		Expect(err).To(MatchError(errDatabase))
	})
})
