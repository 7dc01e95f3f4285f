// Command mockapi serves an in-memory store-management backend for local
// development of the admin client.
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/retailops/storeadmin/internal/logger"
	"github.com/retailops/storeadmin/internal/mockapi"
)

func main() {
	var (
		addr      = flag.String("addr", ":3000", "listen address")
		seed      = flag.Uint64("seed", 1, "seed for the generated dataset")
		products  = flag.Int("products", 25, "number of products to seed")
		customers = flag.Int("customers", 10, "number of customers to seed")
		orders    = flag.Int("orders", 40, "number of orders to seed")
		rps       = flag.Float64("rps", 50, "per-client request rate limit")
		logLevel  = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log, err := logger.New(*logLevel, "console")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	srv := mockapi.NewServer(log)
	srv.Seed(*seed, *products, *customers, *orders)

	rl := mockapi.NewRateLimiter(rate.Limit(*rps), int(*rps)*2)
	stop := make(chan struct{})
	defer close(stop)
	go rl.CleanupLoop(stop)

	handler := http.StripPrefix("/api", rl.Middleware(srv.Router()))

	log.Info("mock backend running", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
