package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/charan-kumar-kamasani/authentik/internal/config"
	"github.com/charan-kumar-kamasani/authentik/internal/driver/memory"
	mongostore "github.com/charan-kumar-kamasani/authentik/internal/driver/mongo"
	"github.com/charan-kumar-kamasani/authentik/internal/events"
	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
	"github.com/charan-kumar-kamasani/authentik/internal/logger"
	"github.com/charan-kumar-kamasani/authentik/internal/server"
	"github.com/charan-kumar-kamasani/authentik/pkg/util"
)

func main() {
	cfg := config.FromEnv()
	dsn := flag.String("dsn", cfg.MongoURI, "MongoDB connection string (empty runs an in-memory store)")
	addr := flag.String("addr", cfg.Addr, "listen address")
	openapi := flag.String("openapi", "", "write OpenAPI JSON and exit")
	flag.Parse()

	logger.Set(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	evtConf, err := events.LoadConfig(cfg.EventsConfig)
	if err != nil {
		logger.L.Error("load events configuration", "err", err)
		os.Exit(1)
	}
	redisSink, err := events.NewRedisSink(evtConf.Sinks.Redis)
	if err != nil {
		logger.L.Error("redis sink", "err", err)
		os.Exit(1)
	}
	kafkaSink, err := events.NewKafkaSink(evtConf.Sinks.Kafka)
	if err != nil {
		logger.L.Error("kafka sink", "err", err)
		os.Exit(1)
	}
	events.Default = events.NewDispatcher(evtConf,
		events.NewWebhookSink(evtConf.Sinks.Webhook), redisSink, kafkaSink)

	var st formconfig.Store
	if *dsn != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		cli, err := mongo.Connect(ctx, options.Client().ApplyURI(*dsn))
		if err != nil {
			cancel()
			logger.L.Error("mongo connect", "err", err)
			os.Exit(1)
		}
		if err := cli.Ping(ctx, nil); err != nil {
			cancel()
			logger.L.Error("mongo ping", "err", err)
			os.Exit(1)
		}
		cancel()
		defer func() { _ = cli.Disconnect(context.Background()) }()
		st = mongostore.NewStore(cli, util.DatabaseFromURI(*dsn, cfg.Database))
	} else {
		logger.L.Warn("no DSN configured, using in-memory store")
		st = memory.NewStore()
	}

	api := server.New(st, server.Config{AllowedOrigins: cfg.AllowedOrigins})

	if *openapi != "" {
		data, err := json.MarshalIndent(api.OpenAPI(), "", "  ")
		if err != nil {
			logger.L.Error("marshal openapi", "err", err)
			os.Exit(1)
		}
		if err := os.WriteFile(filepath.Clean(*openapi), data, 0o600); err != nil {
			logger.L.Error("write openapi", "err", err)
			os.Exit(1)
		}
		return
	}

	logger.L.Info("listening", "addr", *addr)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      api.Adapter(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.L.Error("server error", "err", err)
		os.Exit(1)
	}
}
