package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/goliatone/go-fastfood-admin/components/restaurant"
	"github.com/goliatone/go-fastfood-admin/components/restaurant/commands"
	"github.com/goliatone/go-fastfood-admin/components/tabular"
	"github.com/goliatone/go-fastfood-admin/pkg/fastfood"
)

// Globals are shared by every subcommand.
type Globals struct {
	Fixtures string `type:"path" help:"YAML fixtures file to load. Defaults to the built-in demo data."`
	Now      string `help:"Clock override (YYYY-MM-DD or RFC3339) used for promotion status and default ranges."`
	Write    bool   `help:"Write mutations back to --fixtures."`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level for service diagnostics."`
}

type cli struct {
	Globals

	List    listCmd    `cmd:"" help:"List a screen's rows with search, filter, sort and paging."`
	Board   boardCmd   `cmd:"" help:"Interactive kitchen board. Arrow keys select, a advances, q quits."`
	Advance advanceCmd `cmd:"" help:"Advance a live order to its next kitchen stage."`
	Receive receiveCmd `cmd:"" help:"Book a stock delivery into inventory."`
	Toggle  toggleCmd  `cmd:"" help:"Flip a menu item between available and sold out."`
	Export  exportCmd  `cmd:"" help:"Export a report as CSV or XLSX."`
	Dump    dumpCmd    `cmd:"" help:"Write the loaded fixtures as YAML."`
}

func main() {
	var root cli
	ctx := kong.Parse(&root,
		kong.Name("fastfoodctl"),
		kong.Description("Command line access to the fast food admin screens."),
		kong.UsageOnError(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.Bind(&root.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// session is one loaded store plus the app wired on top of it.
type session struct {
	globals *Globals
	app     *fastfood.App
	out     io.Writer
}

func (g *Globals) open() (*session, error) {
	doc := restaurant.DefaultFixtures()
	if g.Fixtures != "" {
		loaded, err := restaurant.ReadFixtures(g.Fixtures)
		if err != nil {
			return nil, err
		}
		doc = loaded
	}
	clock, err := g.clock()
	if err != nil {
		return nil, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	app, err := fastfood.New(fastfood.Config{
		Service: fastfood.Options{
			Store:  restaurant.NewMemoryStore(doc),
			Clock:  clock,
			Logger: logger,
		},
	})
	if err != nil {
		return nil, err
	}
	return &session{globals: g, app: app, out: os.Stdout}, nil
}

func (g *Globals) clock() (func() time.Time, error) {
	if g.Now == "" {
		return time.Now, nil
	}
	at, ok := tabular.ParseTime(g.Now)
	if !ok {
		return nil, fmt.Errorf("fastfoodctl: invalid --now %q", g.Now)
	}
	return func() time.Time { return at }, nil
}

// persist writes the store back to the fixtures file when --write is set.
func (s *session) persist(ctx context.Context) error {
	if !s.globals.Write {
		return nil
	}
	if s.globals.Fixtures == "" {
		return fmt.Errorf("fastfoodctl: --write requires --fixtures")
	}
	doc, err := s.app.Service.Snapshot(ctx)
	if err != nil {
		return err
	}
	return writeFixtures(s.globals.Fixtures, doc)
}

// writeFixtures encodes into a sibling temp file and renames it over path,
// so a failed encode leaves the previous file untouched.
func writeFixtures(path string, doc *restaurant.Fixtures) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fixtures-*.yaml")
	if err != nil {
		return fmt.Errorf("fastfoodctl: create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if info, statErr := os.Stat(path); statErr == nil {
		if err = tmp.Chmod(info.Mode().Perm()); err != nil {
			return fmt.Errorf("fastfoodctl: chmod %s: %w", tmp.Name(), err)
		}
	}
	if err = restaurant.EncodeFixtures(tmp, doc); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fastfoodctl: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("fastfoodctl: replace %s: %w", path, err)
	}
	return nil
}

type advanceCmd struct {
	OrderID string `arg:"" help:"Live order id, e.g. ORD-7432."`
}

func (cmd *advanceCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	if err := s.app.Handlers.AdvanceOrder.Execute(ctx, commands.AdvanceOrderInput{OrderID: cmd.OrderID}); err != nil {
		return err
	}
	board, err := s.app.Service.LiveBoard(ctx)
	if err != nil {
		return err
	}
	for _, col := range board.Columns {
		for _, order := range col.Orders {
			if order.ID == cmd.OrderID {
				fmt.Fprintf(s.out, "✓ %s is now %s\n", order.ID, col.Stage.Label)
			}
		}
	}
	return s.persist(ctx)
}

type receiveCmd struct {
	ItemID   string  `arg:"" help:"Inventory item id."`
	Quantity float64 `arg:"" help:"Quantity received, in the item's unit."`
}

func (cmd *receiveCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	item, err := s.app.Service.ReceiveStock(ctx, restaurant.StockReceipt{ItemID: cmd.ItemID, Quantity: cmd.Quantity})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "✓ %s stock %s %s (%s)\n", item.Name, formatQuantity(item.Stock), item.Unit, item.Level())
	return s.persist(ctx)
}

type toggleCmd struct {
	ItemID string `arg:"" help:"Menu item id."`
}

func (cmd *toggleCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	item, err := s.app.Service.ToggleMenuItem(ctx, cmd.ItemID)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "✓ %s is %s\n", item.Name, item.Status)
	return s.persist(ctx)
}

type dumpCmd struct {
	Out string `short:"o" type:"path" help:"Output file. Defaults to stdout."`
}

func (cmd *dumpCmd) Run(ctx context.Context, g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	doc, err := s.app.Service.Snapshot(ctx)
	if err != nil {
		return err
	}
	if cmd.Out == "" {
		return restaurant.EncodeFixtures(s.out, doc)
	}
	return writeFixtures(cmd.Out, doc)
}
