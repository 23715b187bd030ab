package datastore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"catering_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteError_Kinds(t *testing.T) {
	notFound := &RemoteError{Method: "GET", Endpoint: "/api/users", StatusCode: 404, Message: "no such user"}
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrRemoteUnavailable)
	assert.Equal(t, "GET /api/users: status 404: no such user", notFound.Error())

	down := &RemoteError{Method: "POST", Endpoint: "/api/events", Err: errors.New("dial tcp: connection refused")}
	assert.ErrorIs(t, down, ErrRemoteUnavailable)
	assert.NotErrorIs(t, down, ErrNotFound)
	assert.Contains(t, down.Error(), "POST /api/events")

	wrapped := fmt.Errorf("loading dashboard: %w", &RemoteError{Method: "GET", Endpoint: "/api/menus", StatusCode: 503})
	assert.ErrorIs(t, wrapped, ErrRemoteUnavailable)
	assert.Equal(t, StoreRemote, StoreOf(wrapped))
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, Wrap(StoreLocal, "user", "get", nil))

	err := Wrap(StoreLocal, "user", "add", fmt.Errorf("%w: users.email", ErrDuplicateKey))
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, StoreLocal, StoreOf(err))
	assert.True(t, strings.HasPrefix(err.Error(), "local store: add user:"))

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "user", se.Entity)
	assert.Equal(t, "add", se.Op)

	assert.Equal(t, Store(""), StoreOf(errors.New("plain")))
}

func TestConstructionError(t *testing.T) {
	err := &ConstructionError{Store: StoreLocal, Err: errors.New("disk full")}
	assert.ErrorIs(t, err, ErrConstruction)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNullService(t *testing.T) {
	ctx := context.Background()
	var svc DataService = NullService{}

	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	_, err = svc.GetUser(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StoreNone, StoreOf(err))

	_, err = svc.AddEvent(ctx, models.Event{Name: "x"})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	assert.NoError(t, svc.DeleteMenu(ctx, 3))
	assert.NoError(t, svc.ClearAllData(ctx))

	_, err = svc.UploadMessageAttachment(ctx, 1, "a.txt", strings.NewReader("a"))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
