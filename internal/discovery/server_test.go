package discovery

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/registry"
)

func newTestServer(t *testing.T) (*httptest.Server, *registry.Store) {
	t.Helper()
	store := registry.NewStore(time.Minute)
	srv := httptest.NewServer(NewServer(store, logger.NewNop()).Router())
	t.Cleanup(srv.Close)
	return srv, store
}

func TestRegisterThenLookup(t *testing.T) {
	srv, _ := newTestServer(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	require.NoError(t, client.Register(ctx, "X", "h", 9))

	rec, err := client.Lookup(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, "h", rec.Host)
	assert.Equal(t, 9, rec.Port)
}

func TestReRegistrationWins(t *testing.T) {
	srv, _ := newTestServer(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	require.NoError(t, client.Register(ctx, "X", "h", 9))
	require.NoError(t, client.Register(ctx, "X", "h", 10))

	rec, err := client.Lookup(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Port, "latest registration before TTL expiry must win")
}

func TestLookupUnknownServiceIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	client := NewClient(srv.URL)

	_, err := client.Lookup(context.Background(), "NoSuchService")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	srv, store := newTestServer(t)
	client := NewClient(srv.URL)

	err := client.Register(context.Background(), "", "h", 9)
	assert.Error(t, err, "registration without a service name must be rejected")
	assert.Equal(t, 0, store.Len())

	err = client.Register(context.Background(), "X", "h", 0)
	assert.Error(t, err, "registration without a port must be rejected")
}

func TestLookupUnreachableDiscovery(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Lookup(context.Background(), "X")
	assert.ErrorIs(t, err, ErrNotFound, "transport errors read as not-found for this attempt")
}
