package components

import (
	"beads-store/internal/infra/db"
	"beads-store/internal/infra/readstore"
	"beads-store/internal/infra/uow"
	"beads-store/internal/usecase/queries"
	"beads-store/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Read stores outside transactions run directly against the pool; the unit of
// work builds its own transaction-bound instances.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartViewRepo)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponViewRepo)),
		),
		fx.Annotate(
			readstore.NewAddressReadStore,
			fx.As(new(queries.AddressViewRepo)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
