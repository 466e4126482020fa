package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeStore_CheckAndSet_NewTransfer(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "tx-0001", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "first delivery should return true")
}

func TestDedupeStore_CheckAndSet_Redelivery(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "tx-0002", 24*time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "tx-0002", 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "redelivered transfer id should return false")
}

func TestDedupeStore_CheckAndSet_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "tx-0003", 1*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = store.CheckAndSet(ctx, "tx-0003", 1*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "transfer id should be accepted again after TTL expiry")
}
