package bootstrap

import (
	"context"
	"log/slog"

	"eventure/internal/infra/catalog"
	"eventure/internal/pkg/clock"
	"eventure/internal/pkg/config"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"

	"go.uber.org/fx"
)

var ReconcilerModule = fx.Module("reconciler",
	fx.Provide(
		NewReconciler,
		func(r *catalog.Reconciler) queries.CatalogSnapshot { return r },
		func(r *catalog.Reconciler) commands.CatalogCache { return r },
	),
	fx.Invoke(registerReconciler),
)

func NewReconciler(store queries.ScooterReadStore, cfg config.Config, clk clock.Clock, logger *slog.Logger) *catalog.Reconciler {
	return catalog.NewReconciler(store, cfg.Catalog, clk, logger)
}

func registerReconciler(lc fx.Lifecycle, r *catalog.Reconciler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return r.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			r.Stop()
			return nil
		},
	})
}
