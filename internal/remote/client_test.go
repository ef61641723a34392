package remote

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfields/schedtrack/internal/repository"
	"github.com/dfields/schedtrack/internal/server"
	"github.com/dfields/schedtrack/internal/testutil"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	store := repository.NewSQLiteProjectStore(testutil.NewTestDB(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(server.New(server.NewProjectHandler(store), logger).Handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestClient_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	p := testutil.NewTestRecord("PM100", "Valve Replacement")
	require.NoError(t, client.Create(ctx, p))

	fetched, err := client.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Valve Replacement", fetched.ProjectName)

	list, err := client.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestClient_UpdateWritesHistory(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	p := testutil.NewTestRecord("PM100", "Valve Replacement")
	require.NoError(t, client.Create(ctx, p))

	changed := p.Clone()
	changed.City = "Fresno"
	require.NoError(t, client.Update(ctx, changed))

	changes, err := client.ListChanges(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "city", changes[0].FieldName)
	assert.Equal(t, "Fresno", changes[0].NewValue)
}

func TestClient_NotFoundMapsToSentinel(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.GetByID(ctx, 424242)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = client.Delete(ctx, 424242)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClient_ServerErrorSurfacesAsAPIError(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	p := testutil.NewTestRecord("PM100", "Valve Replacement")
	require.NoError(t, client.Create(ctx, p))

	// Duplicate primary key makes the server fail the insert.
	err := client.Create(ctx, p)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "create_failed", apiErr.Code)
}

func TestClient_DeleteAll(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Create(ctx, testutil.NewTestRecord("PM100", "One")))
	require.NoError(t, client.Create(ctx, testutil.NewTestRecord("PM200", "Two", testutil.WithOrder("40002"))))
	require.NoError(t, client.DeleteAll(ctx))

	list, err := client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
