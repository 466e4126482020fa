package service

import (
	"context"
	"testing"

	"wookey-escrow/internal/adapter/storage/memory"
	"wookey-escrow/internal/core/domain"
	"wookey-escrow/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a fixed, manually advanced time for tests.
type fakeClock struct {
	now int64
}

func (c *fakeClock) NowMs() int64 { return c.now }

func mustAsset(t *testing.T, s string) domain.Asset {
	t.Helper()
	a, err := domain.ParseAsset(s)
	require.NoError(t, err)
	return a
}

func newRegistryFixture(t *testing.T) (*RegistryServiceImpl, *memory.Ledger, *fakeClock) {
	t.Helper()
	ledger := memory.NewLedger()
	clock := &fakeClock{now: 1_000_000}
	svc := NewRegistryService(ledger, clock, NewJournalService(nil, zerolog.Nop()), zerolog.Nop())
	return svc, ledger, clock
}

func TestRegistryService_RegisterStore(t *testing.T) {
	svc, _, clock := newRegistryFixture(t)
	ctx := context.Background()

	seller, err := svc.RegisterStore(ctx, "sellerstore", "sellerstore")
	require.NoError(t, err)
	assert.Equal(t, "sellerstore", seller.Account)
	assert.Equal(t, clock.now, seller.RegisteredAt)
}

func TestRegistryService_RegisterStore_Idempotent(t *testing.T) {
	svc, _, clock := newRegistryFixture(t)
	ctx := context.Background()

	first, err := svc.RegisterStore(ctx, "sellerstore", "sellerstore")
	require.NoError(t, err)

	// The second registration keeps the original record.
	clock.now += 5000
	second, err := svc.RegisterStore(ctx, "sellerstore", "sellerstore")
	require.NoError(t, err)
	assert.Equal(t, first.RegisteredAt, second.RegisteredAt)
}

func TestRegistryService_RegisterStore_WrongCaller(t *testing.T) {
	svc, _, _ := newRegistryFixture(t)

	_, err := svc.RegisterStore(context.Background(), "mallory", "sellerstore")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEC_005", appErr.Code)
}

func TestRegistryService_UnregisterStore(t *testing.T) {
	svc, _, _ := newRegistryFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterStore(ctx, "sellerstore", "sellerstore")
	require.NoError(t, err)

	require.NoError(t, svc.UnregisterStore(ctx, "sellerstore", "sellerstore"))
	assert.False(t, svc.IsRegistered("sellerstore"))

	err = svc.UnregisterStore(ctx, "sellerstore", "sellerstore")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REG_001", appErr.Code)
}

func TestRegistryService_ListStores_Ordered(t *testing.T) {
	svc, _, _ := newRegistryFixture(t)
	ctx := context.Background()

	for _, name := range []string{"zebra", "alpha", "middle"} {
		_, err := svc.RegisterStore(ctx, name, name)
		require.NoError(t, err)
	}

	stores := svc.ListStores(ctx)
	require.Len(t, stores, 3)
	assert.Equal(t, "alpha", stores[0].Account)
	assert.Equal(t, "middle", stores[1].Account)
	assert.Equal(t, "zebra", stores[2].Account)
}

func TestRegistryService_ClearStores(t *testing.T) {
	svc, _, _ := newRegistryFixture(t)
	ctx := context.Background()

	for _, name := range []string{"aaa", "bbb", "ccc"} {
		_, err := svc.RegisterStore(ctx, name, name)
		require.NoError(t, err)
	}

	removed, err := svc.ClearStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Empty(t, svc.ListStores(ctx))
}

func TestRegistryService_RegisterStore_ReturnsSnapshot(t *testing.T) {
	svc, ledger, _ := newRegistryFixture(t)
	ctx := context.Background()

	seller, err := svc.RegisterStore(ctx, "sellerstore", "sellerstore")
	require.NoError(t, err)

	// Mutating the returned value does not leak into the registry.
	seller.Blacklisted = true
	stored, err := ledger.Sellers().Get("sellerstore")
	require.NoError(t, err)
	assert.False(t, stored.Blacklisted)
}
