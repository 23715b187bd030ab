// Package factory builds the process DataService from configuration.
package factory

import (
	"fmt"
	"sync"

	"catering_backend/internal/config"
	"catering_backend/internal/datastore"
	"catering_backend/internal/federation"
	"catering_backend/internal/metrics"
	"catering_backend/internal/remote"
	"catering_backend/internal/repositories"
	"catering_backend/pkg/utils"
)

type options struct {
	metrics *metrics.Metrics
}

type Option func(*options)

// WithMetrics shares m with the remote client and the federation router.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New returns the store selected by cfg.DataMode. It never fails: an unknown
// mode or a store that cannot be built yields a NullService, and the cause is
// logged.
func New(cfg *config.Config, opts ...Option) datastore.DataService {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := utils.Component("factory")

	svc, err := build(cfg, o)
	if err != nil {
		log.Error().Err(err).Str("data_mode", cfg.DataMode).Msg("data service unavailable, falling back to the null store")
		return datastore.NullService{}
	}
	log.Info().Str("data_mode", cfg.DataMode).Msg("data service ready")
	return svc
}

func build(cfg *config.Config, o options) (datastore.DataService, error) {
	switch cfg.DataMode {
	case config.ModeLocal:
		return openLocal(cfg)
	case config.ModeFederated:
		client, err := remote.New(cfg.RemoteBaseURL, cfg.RemoteAPIKey, cfg.RemoteTimeout,
			remote.WithMetrics(o.metrics), remote.WithLogger(utils.Component("remote")))
		if err != nil {
			return nil, &datastore.ConstructionError{Store: datastore.StoreRemote, Err: err}
		}
		local, err := openLocal(cfg)
		if err != nil {
			return nil, err
		}
		return federation.New(client, local, federation.WithMetrics(o.metrics)), nil
	case config.ModeNone:
		return datastore.NullService{}, nil
	default:
		return nil, &datastore.ConstructionError{Store: datastore.StoreNone, Err: fmt.Errorf("unknown data mode %q", cfg.DataMode)}
	}
}

func openLocal(cfg *config.Config) (*repositories.LocalStore, error) {
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, &datastore.ConstructionError{Store: datastore.StoreLocal, Err: err}
	}
	store, err := repositories.OpenLocalStore(dialect, cfg.LocalDSN)
	if err != nil {
		return nil, &datastore.ConstructionError{Store: datastore.StoreLocal, Err: err}
	}
	if err := store.ApplyScript(cfg.LocalSchema); err != nil {
		_ = store.Close()
		return nil, &datastore.ConstructionError{Store: datastore.StoreLocal, Err: err}
	}
	return store, nil
}

var (
	sharedOnce sync.Once
	shared     datastore.DataService
)

// Shared returns the process-wide DataService, built on first use from
// config.Load. Prefer passing the value returned by New.
func Shared() datastore.DataService {
	sharedOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			utils.LogError(err, "failed to load configuration for the shared data service")
			shared = datastore.NullService{}
			return
		}
		shared = New(cfg)
	})
	return shared
}
