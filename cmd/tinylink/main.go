package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/config"
	"github.com/darkseear/tinylink/internal/gzip"
	"github.com/darkseear/tinylink/internal/handlers"
	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/registry"
	"github.com/darkseear/tinylink/internal/rpc"
	"github.com/darkseear/tinylink/internal/storage"
	"github.com/darkseear/tinylink/internal/tls"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

// newApp собирает хранилище, реестр и HTTP-обработчик по cfg.
func newApp(cfg *config.Config) (http.Handler, *registry.Registry, storage.Storage, error) {
	store, err := storage.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	links, err := registry.New(store, registry.Options{
		CodeLength:  cfg.CodeLength,
		MaxAttempts: cfg.CodeAttempts,
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, nil, err
	}

	r := handlers.Routers(cfg, links)
	return logger.WithLogging(gzip.GzipMiddleware(r.Handle)), links, store, nil
}

func run() error {
	cfg := config.New()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	handler, links, store, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 2)

	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return err
		}
		grpcServer := rpc.NewServer(links)
		defer grpcServer.GracefulStop()
		go func() {
			logger.Log.Info("Running gRPC server", zap.String("address", cfg.GRPCAddress))
			errc <- grpcServer.Serve(lis)
		}()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if cfg.EnableHTTPS {
			crt, key, err := tls.Certs(cfg.CertDir)
			if err != nil {
				errc <- err
				return
			}
			logger.Log.Info("Running server", zap.String("address", cfg.Address), zap.Bool("https", true))
			errc <- srv.ListenAndServeTLS(crt, key)
			return
		}
		logger.Log.Info("Running server", zap.String("address", cfg.Address), zap.String("base", cfg.URL))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
