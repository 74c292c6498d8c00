package restaurant

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("restaurant: record not found")

// Store is the data source behind the Service. Reads return copies; every
// mutation is applied atomically with respect to reads.
type Store interface {
	LiveOrders(ctx context.Context) ([]LiveOrder, error)
	UpdateLiveOrder(ctx context.Context, id string, fn func(LiveOrder) (LiveOrder, error)) (LiveOrder, error)
	History(ctx context.Context) ([]HistoryOrder, error)

	MenuItems(ctx context.Context) ([]MenuItem, error)
	CreateMenuItem(ctx context.Context, item MenuItem) (MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, fn func(MenuItem) (MenuItem, error)) (MenuItem, error)

	InventoryItems(ctx context.Context) ([]InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, fn func(InventoryItem) (InventoryItem, error)) (InventoryItem, error)

	Customers(ctx context.Context) ([]Customer, error)

	Promotions(ctx context.Context) ([]Promotion, error)
	CreatePromotion(ctx context.Context, promo Promotion) (Promotion, error)
	DeletePromotion(ctx context.Context, id string) (Promotion, error)

	Roles(ctx context.Context) ([]Role, error)
	SaveRole(ctx context.Context, role Role) (Role, bool, error)
	DeleteRole(ctx context.Context, id string) (Role, error)

	Staff(ctx context.Context) ([]StaffMember, error)
	SaveStaff(ctx context.Context, member StaffMember) (StaffMember, bool, error)
	DeleteStaff(ctx context.Context, id string) (StaffMember, error)

	Settings(ctx context.Context) (Settings, error)
	SaveSettings(ctx context.Context, settings Settings) error

	Categories(ctx context.Context) ([]CategoryRevenue, error)
	HourlySales(ctx context.Context) ([]HourlySales, error)

	Snapshot(ctx context.Context) (*Fixtures, error)
	Restore(ctx context.Context, doc *Fixtures) error
}

// MemoryStore is the in-memory Store seeded from fixtures.
type MemoryStore struct {
	mu   sync.RWMutex
	data Fixtures
}

// NewMemoryStore seeds a store from fixtures. A nil document seeds DefaultFixtures.
func NewMemoryStore(seed *Fixtures) *MemoryStore {
	if seed == nil {
		seed = DefaultFixtures()
	}
	return &MemoryStore{data: cloneFixtures(*seed)}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) LiveOrders(context.Context) ([]LiveOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.data.Orders), nil
}

func (s *MemoryStore) UpdateLiveOrder(_ context.Context, id string, fn func(LiveOrder) (LiveOrder, error)) (LiveOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.data.Orders, id, "order", func(o LiveOrder) string { return o.ID }, func(o LiveOrder) (LiveOrder, error) {
		next, err := fn(cloneOrder(o))
		next.ID = o.ID
		return next, err
	})
}

func (s *MemoryStore) History(context.Context) ([]HistoryOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.History), nil
}

func (s *MemoryStore) MenuItems(context.Context) ([]MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Menu), nil
}

// CreateMenuItem appends item. An empty id is assigned from the menu size.
func (s *MemoryStore) CreateMenuItem(_ context.Context, item MenuItem) (MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = NextMenuID(len(s.data.Menu))
	}
	if slices.ContainsFunc(s.data.Menu, func(m MenuItem) bool { return m.ID == item.ID }) {
		return MenuItem{}, fmt.Errorf("restaurant: menu item %s already exists", item.ID)
	}
	s.data.Menu = append(s.data.Menu, item)
	return item, nil
}

func (s *MemoryStore) UpdateMenuItem(_ context.Context, id string, fn func(MenuItem) (MenuItem, error)) (MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.data.Menu, id, "menu item", func(m MenuItem) string { return m.ID }, func(m MenuItem) (MenuItem, error) {
		next, err := fn(m)
		next.ID = m.ID
		return next, err
	})
}

func (s *MemoryStore) InventoryItems(context.Context) ([]InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Inventory), nil
}

func (s *MemoryStore) UpdateInventoryItem(_ context.Context, id string, fn func(InventoryItem) (InventoryItem, error)) (InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.data.Inventory, id, "inventory item", func(i InventoryItem) string { return i.ID }, func(i InventoryItem) (InventoryItem, error) {
		next, err := fn(i)
		next.ID = i.ID
		return next, err
	})
}

func (s *MemoryStore) Customers(context.Context) ([]Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, len(s.data.Customers))
	for i, c := range s.data.Customers {
		out[i] = cloneCustomer(c)
	}
	return out, nil
}

func (s *MemoryStore) Promotions(context.Context) ([]Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Promotions), nil
}

// CreatePromotion prepends promo so the newest code lists first.
func (s *MemoryStore) CreatePromotion(_ context.Context, promo Promotion) (Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if promo.ID == "" {
		return Promotion{}, errors.New("restaurant: promotion id is required")
	}
	if slices.ContainsFunc(s.data.Promotions, func(p Promotion) bool { return p.ID == promo.ID }) {
		return Promotion{}, fmt.Errorf("restaurant: promotion %s already exists", promo.ID)
	}
	s.data.Promotions = slices.Insert(s.data.Promotions, 0, promo)
	return promo, nil
}

func (s *MemoryStore) DeletePromotion(_ context.Context, id string) (Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed Promotion
	var err error
	s.data.Promotions, removed, err = deleteByID(s.data.Promotions, id, "promotion", func(p Promotion) string { return p.ID })
	return removed, err
}

func (s *MemoryStore) Roles(context.Context) ([]Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Role, len(s.data.Roles))
	for i, r := range s.data.Roles {
		out[i] = cloneRole(r)
	}
	return out, nil
}

// SaveRole replaces the role with the same id or appends it. created reports
// which happened.
func (s *MemoryStore) SaveRole(_ context.Context, role Role) (Role, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var created bool
	s.data.Roles, created = upsertByID(s.data.Roles, cloneRole(role), func(r Role) string { return r.ID })
	return cloneRole(role), created, nil
}

func (s *MemoryStore) DeleteRole(_ context.Context, id string) (Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed Role
	var err error
	s.data.Roles, removed, err = deleteByID(s.data.Roles, id, "role", func(r Role) string { return r.ID })
	return removed, err
}

func (s *MemoryStore) Staff(context.Context) ([]StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Staff), nil
}

func (s *MemoryStore) SaveStaff(_ context.Context, member StaffMember) (StaffMember, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var created bool
	s.data.Staff, created = upsertByID(s.data.Staff, member, func(m StaffMember) string { return m.ID })
	return member, created, nil
}

func (s *MemoryStore) DeleteStaff(_ context.Context, id string) (StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed StaffMember
	var err error
	s.data.Staff, removed, err = deleteByID(s.data.Staff, id, "staff member", func(m StaffMember) string { return m.ID })
	return removed, err
}

func (s *MemoryStore) Settings(context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Settings, nil
}

func (s *MemoryStore) SaveSettings(_ context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Settings = settings
	return nil
}

func (s *MemoryStore) Categories(context.Context) ([]CategoryRevenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.Categories), nil
}

func (s *MemoryStore) HourlySales(context.Context) ([]HourlySales, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.HourlySales), nil
}

// Snapshot copies the full data set, e.g. for EncodeFixtures.
func (s *MemoryStore) Snapshot(context.Context) (*Fixtures, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := cloneFixtures(s.data)
	return &doc, nil
}

// Restore replaces the full data set with a copy of doc.
func (s *MemoryStore) Restore(_ context.Context, doc *Fixtures) error {
	if doc == nil {
		return fmt.Errorf("restaurant: restore requires fixtures")
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	data := cloneFixtures(*doc)
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// NextMenuID derives the id for a new menu item from the current menu size:
// the last three digits of size+101, so a five item menu yields M-106.
func NextMenuID(size int) string {
	n := strconv.Itoa(size + 101)
	return "M-" + n[len(n)-3:]
}

func updateByID[T any](items []T, id, kind string, idOf func(T) string, fn func(T) (T, error)) (T, error) {
	var zero T
	for i, item := range items {
		if idOf(item) != id {
			continue
		}
		next, err := fn(item)
		if err != nil {
			return zero, err
		}
		items[i] = next
		return next, nil
	}
	return zero, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

func deleteByID[T any](items []T, id, kind string, idOf func(T) string) ([]T, T, error) {
	var zero T
	idx := slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
	if idx < 0 {
		return items, zero, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	removed := items[idx]
	return slices.Delete(items, idx, idx+1), removed, nil
}

func upsertByID[T any](items []T, item T, idOf func(T) string) ([]T, bool) {
	idx := slices.IndexFunc(items, func(existing T) bool { return idOf(existing) == idOf(item) })
	if idx < 0 {
		return append(items, item), true
	}
	items[idx] = item
	return items, false
}

func cloneOrder(o LiveOrder) LiveOrder {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneOrders(in []LiveOrder) []LiveOrder {
	out := make([]LiveOrder, len(in))
	for i, o := range in {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneCustomer(c Customer) Customer {
	history := make([]CustomerOrder, len(c.History))
	for i, h := range c.History {
		h.Items = slices.Clone(h.Items)
		history[i] = h
	}
	c.History = history
	return c
}

func cloneRole(r Role) Role {
	r.Access = slices.Clone(r.Access)
	return r
}

func cloneFixtures(doc Fixtures) Fixtures {
	out := doc
	out.Orders = cloneOrders(doc.Orders)
	out.History = slices.Clone(doc.History)
	out.Menu = slices.Clone(doc.Menu)
	out.Inventory = slices.Clone(doc.Inventory)
	out.Customers = make([]Customer, len(doc.Customers))
	for i, c := range doc.Customers {
		out.Customers[i] = cloneCustomer(c)
	}
	out.Promotions = slices.Clone(doc.Promotions)
	out.Roles = make([]Role, len(doc.Roles))
	for i, r := range doc.Roles {
		out.Roles[i] = cloneRole(r)
	}
	out.Staff = slices.Clone(doc.Staff)
	out.Categories = slices.Clone(doc.Categories)
	out.HourlySales = slices.Clone(doc.HourlySales)
	return out
}
