package di

import (
	"hotelier/config"
	"hotelier/internal/store"
)

func provideStore(cfg *config.Config) *store.Store {
	opts := []store.Option{}

	if cfg.App.Store.Seed {
		opts = append(opts, store.WithSeed())
	}

	if cfg.App.Store.ReconcileAvailability {
		opts = append(opts, store.WithAvailabilityReconciliation())
	}

	return store.New(opts...)
}
