package federation

import (
	"context"
	"path/filepath"
	"testing"

	"catering_backend/internal/database"
	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
	"catering_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The remote side is down for the whole test; everything is served by a real
// sqlite store through the id translation.
func TestRouter_LocalStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	local, err := repositories.OpenLocalStore(database.SQLite, filepath.Join(t.TempDir(), "federation.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	r, _ := newTestRouter(&fakeStore{err: errRemoteDown}, &fakeStore{})
	r.local = local

	menu, err := r.AddMenu(ctx, models.Menu{Name: "Tasting", IsSample: true})
	require.NoError(t, err)
	require.Negative(t, menu.ID)

	native, err := local.GetMenu(ctx, -menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tasting", native.Name)

	item, err := r.AddMenuItem(ctx, models.MenuItem{MenuID: menu.ID, Name: "Scallop", Price: 14})
	require.NoError(t, err)
	assert.Negative(t, item.ID)
	assert.Equal(t, menu.ID, item.MenuID)

	got, err := r.GetMenu(ctx, menu.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, item.ID, got.Items[0].ID)
	assert.Equal(t, menu.ID, got.Items[0].MenuID)

	menus, err := r.GetMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, menu.ID, menus[0].ID)

	client, err := r.AddUser(ctx, models.User{Name: "Casey", Email: "casey@example.com", Role: models.RoleClient, IsSample: true})
	require.NoError(t, err)

	event, err := r.AddEvent(ctx, models.Event{Name: "Launch", IsSample: true})
	require.NoError(t, err)
	assert.Nil(t, event.ClientID)

	event, err = r.UpdateEvent(ctx, event.ID, models.EventPatch{ClientID: &client.ID})
	require.NoError(t, err)
	require.NotNil(t, event.ClientID)
	assert.Equal(t, client.ID, *event.ClientID)

	byClient, err := r.GetEventsByClient(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, event.ID, byClient[0].ID)

	booked, err := r.AddEventMenuItem(ctx, models.EventMenuItem{EventID: event.ID, MenuItemID: item.ID})
	require.NoError(t, err)
	assert.Negative(t, booked.ID)
	assert.Equal(t, event.ID, booked.EventID)

	err = r.DeleteMenuItem(ctx, item.ID)
	assert.ErrorIs(t, err, datastore.ErrReferenced)
	assert.Equal(t, datastore.StoreLocal, datastore.StoreOf(err))

	require.NoError(t, r.DeleteEventMenuItem(ctx, booked.ID))
	require.NoError(t, r.DeleteMenuItem(ctx, item.ID))
	_, err = r.GetMenuItem(ctx, item.ID)
	assert.ErrorIs(t, err, datastore.ErrNotFound)

	require.NoError(t, r.ClearSampleData(ctx))
	users, err := r.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
