package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hireloop/slotd/internal/api"
	"github.com/hireloop/slotd/internal/interviews"
	"github.com/hireloop/slotd/internal/repo"
	"github.com/hireloop/slotd/internal/sweeper"
	"github.com/hireloop/slotd/pkg/clock"
	"github.com/hireloop/slotd/pkg/environment"
	"github.com/hireloop/slotd/pkg/errors"
	"github.com/hireloop/slotd/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	store, err := newStoreClient(ctx, log, cfg)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init store client"))
	}

	scheduler := interviews.New(log, store, clock.System())

	sweep := sweeper.New(log, scheduler, cfg.Sweeper)
	go func() {
		err := sweep.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error(errors.WrapFail(err, "run sweeper"))
		}
	}()

	server := api.NewServer(cfg.API, log, scheduler)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()

		err := errors.Join(
			server.Shutdown(shutdownCtx),
			store.Close(shutdownCtx),
		)
		if err != nil {
			log.Error(errors.WrapFail(err, "shut down"))
		}
	})

	log.Infof("%s environment, serving on %s", cfg.Environment, cfg.API.HTTP.Addr)

	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}

func newStoreClient(ctx context.Context, log logger.Logger, cfg *Config) (repo.Client, error) {
	// dev runs without a database
	if cfg.Environment == environment.Development && cfg.Mongo.URL == "" {
		log.Warnf("no mongo url configured, using in-memory store")
		return repo.NewMemoryClient(), nil
	}

	return repo.NewMongoClient(ctx, cfg.Mongo)
}
