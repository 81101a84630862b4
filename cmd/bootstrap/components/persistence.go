package components

import (
	"fulfillment-engine/internal/infra/memstore"
	"fulfillment-engine/internal/infra/readstore"
	"fulfillment-engine/internal/infra/uow"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/usecase/queries"
	"fulfillment-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

type Stores struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Orders     queries.OrderReadStore
	Inventory  queries.InventoryReadStore
	Returns    queries.ReturnReadStore
	Pricing    queries.PricingReadStore
	Analytics  queries.AnalyticsReadStore
}

// NewStores backs every port with the in-memory store when no pool is
// configured, and with Postgres otherwise.
func NewStores(pool *pgxpool.Pool, cfg config.Config) Stores {
	if pool == nil {
		mem := memstore.New()
		return Stores{
			UnitOfWork: mem,
			Orders:     mem,
			Inventory:  mem,
			Returns:    mem,
			Pricing:    mem,
			Analytics:  mem,
		}
	}

	return Stores{
		UnitOfWork: uow.NewPostgresUoW(pool, cfg),
		Orders:     readstore.NewOrderReadStore(pool),
		Inventory:  readstore.NewInventoryReadStore(pool),
		Returns:    readstore.NewReturnReadStore(pool),
		Pricing:    readstore.NewPricingReadStore(pool),
		Analytics:  readstore.NewAnalyticsReadStore(pool),
	}
}
