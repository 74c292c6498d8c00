package restaurant

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	fixturesVersionV1 = "1"
	// FixturesVersion exposes the current fixtures format version for tooling.
	FixturesVersion = fixturesVersionV1
)

// Fixtures is the YAML document that seeds a MemoryStore.
type Fixtures struct {
	Version     string            `json:"version" yaml:"version"`
	Orders      []LiveOrder       `json:"orders" yaml:"orders"`
	History     []HistoryOrder    `json:"history" yaml:"history"`
	Menu        []MenuItem        `json:"menu" yaml:"menu"`
	Inventory   []InventoryItem   `json:"inventory" yaml:"inventory"`
	Customers   []Customer        `json:"customers" yaml:"customers"`
	Promotions  []Promotion       `json:"promotions" yaml:"promotions"`
	Roles       []Role            `json:"roles" yaml:"roles"`
	Staff       []StaffMember     `json:"staff" yaml:"staff"`
	Settings    Settings          `json:"settings" yaml:"settings"`
	Categories  []CategoryRevenue `json:"categories" yaml:"categories"`
	HourlySales []HourlySales     `json:"hourly_sales" yaml:"hourly_sales"`
	Source      string            `json:"-" yaml:"-"`
}

// ReadFixtures loads fixtures from disk.
func ReadFixtures(path string) (*Fixtures, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("restaurant: open fixtures %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeFixtures(f)
	if err != nil {
		return nil, fmt.Errorf("restaurant: decode fixtures %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeFixtures reads fixtures from any reader.
func DecodeFixtures(r io.Reader) (*Fixtures, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc Fixtures
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("restaurant: fixtures document is empty")
		}
		return nil, fmt.Errorf("restaurant: parse fixtures: %w", err)
	}
	if doc.Version == "" {
		doc.Version = fixturesVersionV1
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeFixtures writes doc as YAML.
func EncodeFixtures(w io.Writer, doc *Fixtures) error {
	if doc == nil {
		return fmt.Errorf("restaurant: fixtures document is nil")
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("restaurant: encode fixtures: %w", err)
	}
	return encoder.Close()
}

// Validate checks version and id uniqueness per collection.
func (doc *Fixtures) Validate() error {
	if doc.Version != fixturesVersionV1 {
		return fmt.Errorf("restaurant: unsupported fixtures version %q", doc.Version)
	}
	checks := []struct {
		name string
		ids  []string
	}{
		{"orders", idsOf(doc.Orders, func(o LiveOrder) string { return o.ID })},
		{"history", idsOf(doc.History, func(o HistoryOrder) string { return o.ID })},
		{"menu", idsOf(doc.Menu, func(m MenuItem) string { return m.ID })},
		{"inventory", idsOf(doc.Inventory, func(i InventoryItem) string { return i.ID })},
		{"customers", idsOf(doc.Customers, func(c Customer) string { return c.ID })},
		{"promotions", idsOf(doc.Promotions, func(p Promotion) string { return p.ID })},
		{"roles", idsOf(doc.Roles, func(r Role) string { return r.ID })},
		{"staff", idsOf(doc.Staff, func(s StaffMember) string { return s.ID })},
	}
	for _, check := range checks {
		seen := make(map[string]struct{}, len(check.ids))
		for idx, id := range check.ids {
			if id == "" {
				return fmt.Errorf("restaurant: %s entry at index %d is missing id", check.name, idx)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("restaurant: %s duplicates id %s", check.name, id)
			}
			seen[id] = struct{}{}
		}
	}
	for _, order := range doc.Orders {
		if _, ok := StageFor(order.Status); !ok {
			return fmt.Errorf("restaurant: order %s has unknown status %q", order.ID, order.Status)
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}
