package restaurant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-fastfood-admin/components/tabular"
)

// MenuItems lists the menu.
func (s *Service) MenuItems(ctx context.Context, q tabular.Query) (tabular.Result[MenuItem], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[MenuItem]{}, err
	}
	items, err := store.MenuItems(ctx)
	if err != nil {
		return tabular.Result[MenuItem]{}, err
	}
	return run(ctx, s, "menu", items, MenuSchema(), q), nil
}

// SaveMenuItem creates a new AVAILABLE item when in.ID is empty, otherwise
// merges the form into the existing item keeping its status.
func (s *Service) SaveMenuItem(ctx context.Context, in MenuItemInput) (MenuItem, error) {
	store, err := s.store()
	if err != nil {
		return MenuItem{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate(ctx, FormMenuItem, in); err != nil {
		return MenuItem{}, err
	}
	var item MenuItem
	created := in.ID == ""
	if created {
		item, err = store.CreateMenuItem(ctx, MenuItem{
			Name:     in.Name,
			Price:    in.Price,
			Category: in.Category,
			Status:   MenuAvailable,
			ImageURL: in.ImageURL,
		})
	} else {
		item, err = store.UpdateMenuItem(ctx, in.ID, func(current MenuItem) (MenuItem, error) {
			current.Name = in.Name
			current.Price = in.Price
			current.Category = in.Category
			if in.ImageURL != "" {
				current.ImageURL = in.ImageURL
			}
			return current, nil
		})
	}
	if err != nil {
		return MenuItem{}, err
	}
	verb := "restaurant.menu.update"
	message := fmt.Sprintf("%s has been updated.", item.Name)
	if created {
		verb = "restaurant.menu.create"
		message = fmt.Sprintf("%s has been added to the menu.", item.Name)
	}
	s.success(ctx, "Menu saved", message, "menu/"+item.ID)
	s.mutated(ctx, verb, "menu_item", item.ID, map[string]any{"category": item.Category})
	return item, nil
}

// ToggleMenuItem flips an item between AVAILABLE and SOLD_OUT.
func (s *Service) ToggleMenuItem(ctx context.Context, id string) (MenuItem, error) {
	store, err := s.store()
	if err != nil {
		return MenuItem{}, err
	}
	if id == "" {
		return MenuItem{}, errMissingID
	}
	item, err := store.UpdateMenuItem(ctx, id, func(current MenuItem) (MenuItem, error) {
		current.Status = current.Status.Toggle()
		return current, nil
	})
	if err != nil {
		return MenuItem{}, err
	}
	s.mutated(ctx, "restaurant.menu.toggle", "menu_item", item.ID, map[string]any{"status": string(item.Status)})
	return item, nil
}

// Inventory lists stock items.
func (s *Service) Inventory(ctx context.Context, q tabular.Query) (tabular.Result[InventoryItem], error) {
	store, err := s.store()
	if err != nil {
		return tabular.Result[InventoryItem]{}, err
	}
	items, err := store.InventoryItems(ctx)
	if err != nil {
		return tabular.Result[InventoryItem]{}, err
	}
	return run(ctx, s, "inventory", items, InventorySchema(), q), nil
}

// LowStockAlerts returns items at or below their reorder point.
func (s *Service) LowStockAlerts(ctx context.Context) ([]InventoryItem, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	items, err := store.InventoryItems(ctx)
	if err != nil {
		return nil, err
	}
	return LowStock(items), nil
}

// ReceiveStock adds a positive quantity to an item's stock.
func (s *Service) ReceiveStock(ctx context.Context, receipt StockReceipt) (InventoryItem, error) {
	store, err := s.store()
	if err != nil {
		return InventoryItem{}, err
	}
	if err := s.validate(ctx, FormStockReceipt, receipt); err != nil {
		return InventoryItem{}, err
	}
	if receipt.Quantity <= 0 {
		return InventoryItem{}, s.reject(ctx, invalid(FormStockReceipt, "quantity must be greater than zero"))
	}
	item, err := store.UpdateInventoryItem(ctx, receipt.ItemID, func(current InventoryItem) (InventoryItem, error) {
		current.Stock += receipt.Quantity
		return current, nil
	})
	if err != nil {
		return InventoryItem{}, err
	}
	s.success(ctx, "Stock received",
		fmt.Sprintf("Received %s %s of %s.", strconv.FormatFloat(receipt.Quantity, 'f', -1, 64), item.Unit, item.Name),
		"inventory/"+item.ID)
	s.mutated(ctx, "restaurant.stock.receive", "inventory_item", item.ID, map[string]any{
		"quantity": receipt.Quantity,
		"stock":    item.Stock,
		"level":    string(item.Level()),
	})
	return item, nil
}
