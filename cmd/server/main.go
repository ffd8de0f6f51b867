package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/in-memory-banking-api/internal/config"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/events/kafka"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/interfaces"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/ledger"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/logger"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/server"
	"github.com/sheikh-saqib/in-memory-banking-api/internal/storage/memory"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource, so its defers (publisher flush, logger sync)
// happen before main exits on error.
func run() error {
	cfg := config.Load()

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer zl.Sync()

	var store interfaces.CustomerStore = memory.NewMemoryCustomerStore()

	opts := []ledger.Option{
		ledger.WithLogger(zl),
		ledger.WithLocation(cfg.Location()),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, zl)
		defer publisher.Close()
		opts = append(opts, ledger.WithPublisher(publisher))
		zl.Info("publishing statement operations",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	}
	ledgerService := ledger.NewLedger(store, opts...)

	handler := server.NewHandler(ledgerService, zl)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.NewRouter(handler, zl, cfg.CORSOrigins),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("banking API listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.Serve(ctx, httpServer, cfg.ShutdownTimeout); err != nil {
		zl.Error("http server failed", zap.Error(err))
		return err
	}
	zl.Info("server stopped")
	return nil
}
