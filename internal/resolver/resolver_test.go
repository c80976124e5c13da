package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/discovery"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/registry"
)

// fakeLocator counts lookups and serves a fixed record set.
type fakeLocator struct {
	records map[string]registry.ServiceRecord
	calls   int
}

func (f *fakeLocator) Lookup(_ context.Context, name string) (registry.ServiceRecord, error) {
	f.calls++
	rec, ok := f.records[name]
	if !ok {
		return rec, discovery.ErrNotFound
	}
	return rec, nil
}

func TestResolveCachesClient(t *testing.T) {
	loc := &fakeLocator{records: map[string]registry.ServiceRecord{
		"HiringService": {ServiceName: "HiringService", Host: "localhost", Port: 50051},
	}}
	r := New(loc, 3, time.Millisecond, logger.NewNop())
	defer r.Close()

	first, err := r.Resolve(context.Background(), "HiringService")
	require.NoError(t, err)

	second, err := r.Resolve(context.Background(), "HiringService")
	require.NoError(t, err)

	assert.Same(t, first, second, "second resolution must return the cached client handle")
	assert.Equal(t, 1, loc.calls, "cached resolution must not hit discovery again")
}

func TestResolveRetryBound(t *testing.T) {
	loc := &fakeLocator{records: map[string]registry.ServiceRecord{}}
	r := New(loc, 3, time.Millisecond, logger.NewNop())
	defer r.Close()

	_, err := r.Resolve(context.Background(), "HiringService")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, loc.calls, "resolution must attempt exactly the configured number of lookups")
}

func TestResolveSucceedsAfterTransientAbsence(t *testing.T) {
	loc := &appearingLocator{appearAfter: 2}
	r := New(loc, 3, time.Millisecond, logger.NewNop())
	defer r.Close()

	_, err := r.Resolve(context.Background(), "AuthService")

	require.NoError(t, err, "resolver must absorb the startup race via retry")
	assert.Equal(t, 2, loc.calls)
}

// appearingLocator fails until appearAfter lookups have happened, mimicking a
// dependency that registers mid-way through our retry loop.
type appearingLocator struct {
	appearAfter int
	calls       int
}

func (f *appearingLocator) Lookup(_ context.Context, name string) (registry.ServiceRecord, error) {
	f.calls++
	if f.calls < f.appearAfter {
		return registry.ServiceRecord{}, discovery.ErrNotFound
	}
	return registry.ServiceRecord{ServiceName: name, Host: "localhost", Port: 50054}, nil
}

func TestResolveUnknownContract(t *testing.T) {
	loc := &fakeLocator{records: map[string]registry.ServiceRecord{
		"MysteryService": {ServiceName: "MysteryService", Host: "h", Port: 1},
	}}
	r := New(loc, 1, 0, logger.NewNop())
	defer r.Close()

	_, err := r.Resolve(context.Background(), "MysteryService")
	assert.Error(t, err, "a service without a registered contract cannot be resolved")
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestResolveHonorsContextCancellation(t *testing.T) {
	loc := &fakeLocator{records: map[string]registry.ServiceRecord{}}
	r := New(loc, 5, 50*time.Millisecond, logger.NewNop())
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, "HiringService")
	assert.ErrorIs(t, err, context.Canceled)
}
