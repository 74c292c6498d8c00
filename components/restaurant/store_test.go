package restaurant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	orders, err := store.LiveOrders(ctx)
	require.NoError(t, err)
	orders[0].Items[0] = "mutated"
	orders[0].Status = StatusCompleted

	again, err := store.LiveOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Smash Burger (x1)", again[0].Items[0])
	assert.Equal(t, StatusPending, again[0].Status)

	roles, err := store.Roles(ctx)
	require.NoError(t, err)
	roles[1].Access[0] = PermManageStaff
	fresh, _ := store.Roles(ctx)
	assert.Equal(t, PermProcessOrders, fresh[1].Access[0])
}

func TestMemoryStoreSeedIsNotShared(t *testing.T) {
	seed := DefaultFixtures()
	store := NewMemoryStore(seed)
	seed.Menu[0].Name = "changed"

	items, err := store.MenuItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Classic Smash Burger", items[0].Name)
}

func TestMemoryStoreUpdateMissingRecord(t *testing.T) {
	store := NewMemoryStore(nil)
	_, err := store.UpdateLiveOrder(context.Background(), "ORD-0", func(o LiveOrder) (LiveOrder, error) { return o, nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreUpdateErrorLeavesRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	boom := errors.New("boom")
	_, err := store.UpdateInventoryItem(ctx, "I-001", func(i InventoryItem) (InventoryItem, error) {
		i.Stock = 0
		return i, boom
	})
	require.ErrorIs(t, err, boom)
	items, _ := store.InventoryItems(ctx)
	assert.Equal(t, 50.0, items[0].Stock)
}

func TestMemoryStoreCreateMenuItemAssignsID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	item, err := store.CreateMenuItem(ctx, MenuItem{Name: "Onion Rings", Price: 3, Category: "Side", Status: MenuAvailable})
	require.NoError(t, err)
	assert.Equal(t, "M-106", item.ID)

	_, err = store.CreateMenuItem(ctx, MenuItem{ID: "M-106", Name: "Dup"})
	assert.Error(t, err)
}

func TestMemoryStorePromotionsPrependAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	_, err := store.CreatePromotion(ctx, Promotion{ID: "P-new", Code: "NEW"})
	require.NoError(t, err)

	promos, _ := store.Promotions(ctx)
	assert.Equal(t, "P-new", promos[0].ID)
	assert.Len(t, promos, 6)

	removed, err := store.DeletePromotion(ctx, "P-002")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", removed.Code)
	promos, _ = store.Promotions(ctx)
	assert.Len(t, promos, 5)

	_, err = store.DeletePromotion(ctx, "P-002")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpserts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	_, created, err := store.SaveStaff(ctx, StaffMember{ID: "s2", Name: "Bob Smith", Email: "bob@corp.com", RoleID: "manager"})
	require.NoError(t, err)
	assert.False(t, created)

	_, created, err = store.SaveRole(ctx, Role{ID: "chef", Name: "Chef"})
	require.NoError(t, err)
	assert.True(t, created)

	staff, _ := store.Staff(ctx)
	assert.Equal(t, "manager", staff[1].RoleID)
	roles, _ := store.Roles(ctx)
	assert.Len(t, roles, 4)
}

func TestMemoryStoreConcurrentAdvance(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.UpdateLiveOrder(ctx, "ORD-7432", func(o LiveOrder) (LiveOrder, error) { return Advance(o) })
			_, _ = store.LiveOrders(ctx)
		}()
	}
	wg.Wait()
	orders, _ := store.LiveOrders(ctx)
	assert.Equal(t, StatusCompleted, orders[0].Status)
}

func TestMemoryStoreRestore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)
	_, err := store.DeleteStaff(ctx, "s1")
	require.NoError(t, err)

	require.NoError(t, store.Restore(ctx, DefaultFixtures()))
	staff, _ := store.Staff(ctx)
	assert.Len(t, staff, 3)

	assert.Error(t, store.Restore(ctx, nil))
	bad := DefaultFixtures()
	bad.Version = "9"
	assert.Error(t, store.Restore(ctx, bad))
	staff, _ = store.Staff(ctx)
	assert.Len(t, staff, 3)
}
