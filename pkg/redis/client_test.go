package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	return srv
}

func TestInit_BadURL(t *testing.T) {
	require.Error(t, Init("not-a-url", ""))
}

func TestInit_AgainstMiniredis(t *testing.T) {
	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	require.NoError(t, Init("redis://"+srv.Addr(), ""))
	require.NotNil(t, GetClient())
}

func TestClose(t *testing.T) {
	newTestClient(t)
	require.NoError(t, Close())

	// closing with no client is a no-op
	SetClient(nil)
	require.NoError(t, Close())
}

func TestSetGetDel(t *testing.T) {
	newTestClient(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))

	val, err := Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", val)

	require.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	require.Error(t, err)
}

func TestSetNX(t *testing.T) {
	newTestClient(t)
	ctx := context.Background()

	ok, err := SetNX(ctx, "lock", "1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = SetNX(ctx, "lock", "2", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)
}
