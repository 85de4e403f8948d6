package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhien-tailor/engagement/internal/models"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	value, err := m.Get(context.Background(), NamespaceOrders, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestMemorySetGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, NamespaceOrders, "O-1", []byte(`{"id":"O-1"}`)))

	value, err := m.Get(ctx, NamespaceOrders, "O-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"O-1"}`), value)
}

func TestMemorySetOverwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, NamespaceLoyalty, "customer-1", []byte("first")))
	require.NoError(t, m.Set(ctx, NamespaceLoyalty, "customer-1", []byte("second")))

	value, err := m.Get(ctx, NamespaceLoyalty, "customer-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)
}

func TestMemoryNamespacesAreIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, NamespaceOrders, "key", []byte("order")))

	value, err := m.Get(ctx, NamespaceReferrals, "key")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestMemoryList(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, NamespaceOrders, "O-1", []byte("a")))
	require.NoError(t, m.Set(ctx, NamespaceOrders, "O-2", []byte("b")))

	records, err := m.List(ctx, NamespaceOrders)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []byte("a"), records["O-1"])
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, NamespaceOrders, "O-1", []byte("abc")))

	value, err := m.Get(ctx, NamespaceOrders, "O-1")
	require.NoError(t, err)
	value[0] = 'z'

	again, err := m.Get(ctx, NamespaceOrders, "O-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryCreateUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, models.User{Login: "user", Hash: "hash"}))

	err := m.CreateUser(ctx, models.User{Login: "user", Hash: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	user, err := m.FindUser(ctx, "user")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "hash", user.Hash)
}

func TestMemoryFindUserMissing(t *testing.T) {
	m := NewMemory()

	user, err := m.FindUser(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}
