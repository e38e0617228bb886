package app

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/orderflow/internal/health"
	"github.com/vladislavdragonenkov/orderflow/internal/storage/memory"
	"github.com/vladislavdragonenkov/orderflow/internal/storage/postgres"
)

// Dependencies содержит хранилища, нужные ядру.
type Dependencies struct {
	Orders    domain.OrderRepository
	Products  domain.ProductCatalog
	Customers domain.CustomerCatalog
	// Store заполнен только для postgres-каталога.
	Store  *postgres.Store
	Logger *log.Entry
}

// initDependencies выбирает источник каталога: postgres при заданном DSN, иначе демо-набор в памяти.
// Реестр заказов всегда in-memory.
func initDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}
	deps := &Dependencies{
		Orders: memory.NewOrderRepository(),
		Logger: logger,
	}

	if cfg.PostgresDSN == "" {
		catalog := memory.DemoCatalog()
		deps.Products = catalog
		deps.Customers = catalog
		logger.Info("using in-memory demo catalog")
		return deps, nil
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog store")
	}
	if cfg.PostgresAutoMigrate {
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, errors.Wrap(err, "apply catalog migrations")
		}
	}

	catalog := postgres.NewCatalogRepository(store)
	deps.Store = store
	deps.Products = catalog
	deps.Customers = catalog
	logger.Info("using postgres catalog")
	return deps, nil
}

// registerHealthChecks добавляет проверки внешних хранилищ.
func (d *Dependencies) registerHealthChecks(h *healthcheck.Handler) {
	if d.Store != nil {
		h.RegisterChecker("catalog", healthcheck.NewPingChecker(d.Store))
	}
}

// Close освобождает подключения.
func (d *Dependencies) Close() {
	if d == nil || d.Store == nil {
		return
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WithError(err).Warn("failed to close catalog store")
	}
}
