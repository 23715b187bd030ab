// Package federation merges the remote record service and the local store
// behind one datastore.DataService. Local records are exposed with negated
// ids; every routing decision goes through a Ref.
package federation

import (
	"context"
	"errors"

	"catering_backend/internal/datastore"
	"catering_backend/internal/metrics"
	"catering_backend/internal/models"
	"catering_backend/pkg/utils"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var _ datastore.DataService = (*Router)(nil)

// Router is immutable after New and safe for concurrent use.
type Router struct {
	remote  datastore.DataService
	local   datastore.DataService
	metrics *metrics.Metrics
	log     zerolog.Logger
}

type Option func(*Router)

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Router) { r.log = l }
}

func New(remote, local datastore.DataService, opts ...Option) *Router {
	r := &Router{
		remote: remote,
		local:  local,
		log:    utils.Component("federation"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) store(o Origin) datastore.DataService {
	if o == OriginLocal {
		return r.local
	}
	return r.remote
}

func (r *Router) degraded(ctx context.Context, entity string, store datastore.Store, err error) {
	r.metrics.DegradedRead(entity, string(store))
	r.log.Warn().Err(err).Str("entity", entity).Str("store", string(store)).
		Str("request_id", utils.RequestIDFrom(ctx)).Msg("collection read degraded")
}

func invalidID(entity, op string, err error) error {
	return datastore.Wrap(datastore.StoreFederated, entity, op, err)
}

// gatherAll reads a collection from both stores at once. A failing store
// contributes nothing; only when both fail is the local error returned.
// Remote records come first.
func gatherAll[T any](ctx context.Context, r *Router, entity string,
	fromRemote, fromLocal func(context.Context) ([]T, error)) ([]T, error) {
	var (
		remoteRes, localRes []T
		remoteErr, localErr error
		g                   errgroup.Group
	)
	g.Go(func() error {
		remoteRes, remoteErr = fromRemote(ctx)
		return nil
	})
	g.Go(func() error {
		localRes, localErr = fromLocal(ctx)
		return nil
	})
	_ = g.Wait()

	if remoteErr != nil && localErr != nil {
		r.degraded(ctx, entity, datastore.StoreRemote, remoteErr)
		r.degraded(ctx, entity, datastore.StoreLocal, localErr)
		return nil, localErr
	}
	if remoteErr != nil {
		r.degraded(ctx, entity, datastore.StoreRemote, remoteErr)
		remoteRes = nil
	}
	if localErr != nil {
		r.degraded(ctx, entity, datastore.StoreLocal, localErr)
		localRes = nil
	}

	out := make([]T, 0, len(remoteRes)+len(localRes))
	out = append(out, remoteRes...)
	for i := range localRes {
		flipLocal(&localRes[i])
		out = append(out, localRes[i])
	}
	return out, nil
}

// fetchOne routes a keyed read by the sign of id.
func fetchOne[T any](ctx context.Context, r *Router, entity string, id int64,
	fetch func(datastore.DataService, context.Context, int64) (*T, error)) (*T, error) {
	ref, err := ParseRef(id)
	if err != nil {
		return nil, invalidID(entity, "get", err)
	}
	v, err := fetch(r.store(ref.Origin), ctx, ref.Native)
	if err != nil {
		return nil, err
	}
	if ref.Origin == OriginLocal {
		flipLocal(v)
	}
	return v, nil
}

// gatherScoped reads the children of one parent from the parent's store.
func gatherScoped[T any](ctx context.Context, r *Router, entity string, parentID int64,
	fetch func(datastore.DataService, context.Context, int64) ([]T, error)) ([]T, error) {
	ref, err := ParseRef(parentID)
	if err != nil {
		return nil, invalidID(entity, "list", err)
	}
	list, err := fetch(r.store(ref.Origin), ctx, ref.Native)
	if err != nil {
		return nil, err
	}
	if ref.Origin == OriginLocal {
		for i := range list {
			flipLocal(&list[i])
		}
	}
	return list, nil
}

// create writes a new record to the store chosen by provenance.
func create[T models.Keyed](ctx context.Context, r *Router, entity string, payload T,
	add func(datastore.DataService, context.Context, T) (*T, error)) (*T, error) {
	origin := provenance(payload)
	if err := checkKeys(payload, origin); err != nil {
		return nil, datastore.Wrap(datastore.StoreFederated, entity, "create", err)
	}
	if origin == OriginRemote {
		return add(r.remote, ctx, payload)
	}
	flipLocal(&payload)
	v, err := add(r.local, ctx, payload)
	if err != nil {
		return nil, err
	}
	flipLocal(v)
	return v, nil
}

// update routes a sparse update by the sign of id. The patch's own foreign
// keys must live in the same store.
func update[T any, P models.Keyed](ctx context.Context, r *Router, entity string, id int64, patch P,
	apply func(datastore.DataService, context.Context, int64, P) (*T, error)) (*T, error) {
	ref, err := ParseRef(id)
	if err != nil {
		return nil, invalidID(entity, "update", err)
	}
	if err := checkKeys(patch, ref.Origin); err != nil {
		return nil, datastore.Wrap(datastore.StoreFederated, entity, "update", err)
	}
	if ref.Origin == OriginRemote {
		return apply(r.remote, ctx, ref.Native, patch)
	}
	flipLocal(&patch)
	v, err := apply(r.local, ctx, ref.Native, patch)
	if err != nil {
		return nil, err
	}
	flipLocal(v)
	return v, nil
}

// remove routes a delete or other id-only write by the sign of id.
func remove(ctx context.Context, r *Router, entity, op string, id int64,
	apply func(datastore.DataService, context.Context, int64) error) error {
	ref, err := ParseRef(id)
	if err != nil {
		return invalidID(entity, op, err)
	}
	return apply(r.store(ref.Origin), ctx, ref.Native)
}

// fallbackWorthy reports whether a remote failure lets a best-effort lookup
// try the local store.
func fallbackWorthy(err error) bool {
	return errors.Is(err, datastore.ErrNotFound) || errors.Is(err, datastore.ErrRemoteUnavailable)
}
