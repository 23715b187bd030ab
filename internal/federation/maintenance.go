package federation

import (
	"context"

	"catering_backend/internal/datastore"
)

// SeedSampleData and ClearSampleData act on the local store, the only one
// holding sample data.
func (r *Router) SeedSampleData(ctx context.Context) error {
	return r.local.SeedSampleData(ctx)
}

func (r *Router) ClearSampleData(ctx context.Context) error {
	return r.local.ClearSampleData(ctx)
}

// ClearAllData is local-only and never federated.
func (r *Router) ClearAllData(context.Context) error {
	return datastore.Wrap(datastore.StoreFederated, "all data", "clear", datastore.ErrUnsupportedOperation)
}
