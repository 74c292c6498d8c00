package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-fastfood-admin/components/restaurant"
)

type menuService interface {
	SaveMenuItem(ctx context.Context, in restaurant.MenuItemInput) (restaurant.MenuItem, error)
	ToggleMenuItem(ctx context.Context, id string) (restaurant.MenuItem, error)
}

// SaveMenuItemCommand creates or edits a menu item.
type SaveMenuItemCommand struct {
	service   menuService
	telemetry Telemetry
}

// NewSaveMenuItemCommand creates the command.
func NewSaveMenuItemCommand(service menuService, telemetry Telemetry) *SaveMenuItemCommand {
	return &SaveMenuItemCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[restaurant.MenuItemInput] = (*SaveMenuItemCommand)(nil)

// Execute saves the item.
func (c *SaveMenuItemCommand) Execute(ctx context.Context, msg restaurant.MenuItemInput) error {
	if c.service == nil {
		return errors.New("save menu item command requires service")
	}
	item, err := c.service.SaveMenuItem(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.save_menu_item", map[string]any{
		"item_id": item.ID,
		"created": msg.ID == "",
	})
	return nil
}

// ToggleMenuItemInput flips an item between available and sold out.
type ToggleMenuItemInput struct {
	ItemID string `json:"item_id"`
}

// ToggleMenuItemCommand wraps Service.ToggleMenuItem.
type ToggleMenuItemCommand struct {
	service   menuService
	telemetry Telemetry
}

// NewToggleMenuItemCommand creates the command.
func NewToggleMenuItemCommand(service menuService, telemetry Telemetry) *ToggleMenuItemCommand {
	return &ToggleMenuItemCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ToggleMenuItemInput] = (*ToggleMenuItemCommand)(nil)

// Execute toggles availability.
func (c *ToggleMenuItemCommand) Execute(ctx context.Context, msg ToggleMenuItemInput) error {
	if c.service == nil {
		return errors.New("toggle menu item command requires service")
	}
	item, err := c.service.ToggleMenuItem(ctx, msg.ItemID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.toggle_menu_item", map[string]any{
		"item_id": item.ID,
		"status":  string(item.Status),
	})
	return nil
}

type stockService interface {
	ReceiveStock(ctx context.Context, receipt restaurant.StockReceipt) (restaurant.InventoryItem, error)
}

// ReceiveStockCommand books a delivery into inventory.
type ReceiveStockCommand struct {
	service   stockService
	telemetry Telemetry
}

// NewReceiveStockCommand creates the command.
func NewReceiveStockCommand(service stockService, telemetry Telemetry) *ReceiveStockCommand {
	return &ReceiveStockCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[restaurant.StockReceipt] = (*ReceiveStockCommand)(nil)

// Execute adds the received quantity.
func (c *ReceiveStockCommand) Execute(ctx context.Context, msg restaurant.StockReceipt) error {
	if c.service == nil {
		return errors.New("receive stock command requires service")
	}
	item, err := c.service.ReceiveStock(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "restaurant.command.receive_stock", map[string]any{
		"item_id":  item.ID,
		"quantity": msg.Quantity,
		"level":    string(item.Level()),
	})
	return nil
}
