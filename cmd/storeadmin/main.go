// Command storeadmin is a headless admin client for the store-management
// backend: it renders the dashboard and drives the product, customer,
// order and inventory workflows from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/backoffice"
	"github.com/retailops/storeadmin/internal/cache"
	"github.com/retailops/storeadmin/internal/config"
	"github.com/retailops/storeadmin/internal/logger"
	"github.com/retailops/storeadmin/internal/notify"
	"github.com/retailops/storeadmin/internal/shell"
	"github.com/retailops/storeadmin/internal/state"
)

// app bundles the wired components every subcommand works with.
type app struct {
	log       *zap.Logger
	store     *state.Store
	center    *notify.Center
	shell     *shell.Shell
	products  *backoffice.ProductsModule
	customers *backoffice.CustomersModule
	orders    *backoffice.OrdersModule
	inventory *backoffice.InventoryModule
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "storeadmin:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, log)
	if err != nil {
		return err
	}

	store := state.New()
	center := notify.NewCenter(notify.DefaultToastTTL, log)
	ctx := context.Background()

	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		defer rdb.Close()

		wt := cache.NewWriteThrough(store, cache.NewRedis(rdb), log)
		wt.Warm(ctx)
		wt.Attach(ctx)
	}

	a := &app{
		log:       log,
		store:     store,
		center:    center,
		shell:     shell.New(store, center),
		products:  backoffice.NewProductsModule(client, store, log),
		customers: backoffice.NewCustomersModule(client, store, log),
		orders:    backoffice.NewOrdersModule(client, store, log),
		inventory: backoffice.NewInventoryModule(client, store, center, log),
	}

	section := "dashboard"
	args := os.Args[1:]
	if len(args) > 0 {
		section = args[0]
		args = args[1:]
	}

	switch section {
	case "dashboard":
		return a.dashboard(ctx)
	case "products":
		return a.productsCmd(ctx, args)
	case "customers":
		return a.customersCmd(ctx, args)
	case "orders":
		return a.ordersCmd(ctx, args)
	case "inventory":
		return a.inventoryCmd(ctx, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", section)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storeadmin <command> [arguments]

commands:
  dashboard                          aggregate statistics and low-stock alerts (default)
  products  list|add|update|delete   manage the product catalog
  customers list|add|history         manage customers and view purchase history
  orders    list|detail|create|status manage orders
  inventory list|adjust|history      manage stock levels`)
}
