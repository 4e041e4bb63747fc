package app

import (
	"go.uber.org/fx"

	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/persistence/database"
	"github.com/rafabene/ecoleta/internal/services"
)

// PersistenceModule fornece repositórios e unit of work sobre o *gorm.DB
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		database.NewItemRepository,
		database.NewPointRepository,
		database.NewUnitOfWork,
	),
)

// ServicesModule fornece os serviços de aplicação
var ServicesModule = fx.Module("services",
	fx.Provide(
		services.NewItemService,
		services.NewPointService,
	),
)

// Options monta o grafo completo da API a partir da configuração carregada
func Options(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		InfrastructureModule,
		PersistenceModule,
		ServicesModule,
		HTTPModule,
	)
}
