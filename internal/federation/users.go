package federation

import (
	"context"
	"errors"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

func (r *Router) GetUsers(ctx context.Context) ([]models.User, error) {
	return gatherAll(ctx, r, "user", r.remote.GetUsers, r.local.GetUsers)
}

func (r *Router) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return fetchOne(ctx, r, "user", id, datastore.DataService.GetUser)
}

// GetUserByEmail has no id to route by: the remote store is asked first and
// the local store only when the remote has no match or cannot answer. If the
// remote could not answer and the local store has no match either, the remote
// error is returned, since the user may still exist there.
func (r *Router) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, remoteErr := r.remote.GetUserByEmail(ctx, email)
	if remoteErr == nil {
		return u, nil
	}
	if !fallbackWorthy(remoteErr) {
		return nil, remoteErr
	}
	u, err := r.local.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) && errors.Is(remoteErr, datastore.ErrRemoteUnavailable) {
			return nil, remoteErr
		}
		return nil, err
	}
	flipLocal(u)
	return u, nil
}

func (r *Router) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	return create(ctx, r, "user", user, datastore.DataService.AddUser)
}

func (r *Router) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	return update(ctx, r, "user", id, patch, datastore.DataService.UpdateUser)
}

func (r *Router) DeleteUser(ctx context.Context, id int64) error {
	return remove(ctx, r, "user", "delete", id, datastore.DataService.DeleteUser)
}
