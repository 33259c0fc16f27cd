package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txlens7000-backend/internal/esplora"
	"github.com/goodnatureofminers/txlens7000-backend/internal/metrics"
	"github.com/goodnatureofminers/txlens7000-backend/internal/service"
	"github.com/goodnatureofminers/txlens7000-backend/internal/transport"
)

var config struct {
	Addr           string `long:"addr" env:"TXLENS_ADDR" description:"http listen addr" default:":8000"`
	EsploraURL     string `long:"esplora-url" env:"TXLENS_ESPLORA_URL" description:"esplora base url" default:"https://blockstream.info/api"`
	Network        string `long:"network" env:"TXLENS_NETWORK" description:"bitcoin network" default:"mainnet"`
	EsploraRPS     int    `long:"esplora-rps" env:"TXLENS_ESPLORA_RPS" description:"max upstream requests per second, 0 for unlimited" default:"0"`
	ResolveWorkers int    `long:"resolve-workers" env:"TXLENS_RESOLVE_WORKERS" description:"ancestor fetch fan-out width" default:"8"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	client, err := esplora.NewClient(
		config.EsploraURL,
		config.Network,
		config.EsploraRPS,
		&http.Client{Timeout: 30 * time.Second},
		metrics.NewEsploraClient(config.Network),
	)
	if err != nil {
		logger.Fatal("Create esplora client", zap.Error(err))
	}

	explainer := service.NewExplainer(client, logger, config.ResolveWorkers)

	router := mux.NewRouter()
	transport.NewExplainerHandler(explainer, logger).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.Addr),
		zap.String("esplora_url", config.EsploraURL),
		zap.String("network", config.Network))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
