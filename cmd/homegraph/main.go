// Gray Logic Home Graph
//
// homegraph serves a read-only snapshot of a smart-home object graph:
// homes, rooms, zones, accessories with their services and characteristics,
// service groups, scenes and triggers. Snapshots come from a file on disk,
// from bridges publishing over MQTT, or both. Clients query the graph over
// HTTP (JSON or CBOR request records), watch installs over WebSocket, or
// use the same operations as MCP tools on stdio.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/gray-logic-homegraph/internal/api"
	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/feed"
	"github.com/nerrad567/gray-logic-homegraph/internal/history"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-homegraph/internal/mcp"
	"github.com/nerrad567/gray-logic-homegraph/migrations"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/homegraph.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until ctx is cancelled or the MCP
// session ends.
func run(ctx context.Context) error {
	cfg, configPath, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the MCP transport when it is enabled.
	if cfg.MCP.Enabled && cfg.Logging.Output != "discard" {
		cfg.Logging.Output = "stderr"
	}
	log := logging.New(cfg.Logging, version)
	log.Info("starting homegraph",
		"version", version,
		"commit", commit,
		"build_date", date,
		"config", configPath,
	)

	decoder, err := homegraph.NewDecoder(cfg.Graph.Validate)
	if err != nil {
		return fmt.Errorf("creating snapshot decoder: %w", err)
	}
	store := homegraph.NewStore()
	store.SetLogger(log.Component("store"))

	if cfg.Graph.SnapshotPath != "" {
		if err := store.LoadFile(decoder, cfg.Graph.SnapshotPath); err != nil {
			return err
		}
	} else if !cfg.MQTT.Enabled {
		log.Warn("no snapshot source configured; every home-scoped request will fail until one is installed")
	}

	service := enumerate.New(store)
	service.SetLogger(log.Component("enumerate"))

	checks := map[string]api.HealthChecker{}

	var auditRepo audit.Repository
	if cfg.Database.Audit {
		db, err := database.Open(database.Config{
			Path:        cfg.Database.Path,
			WALMode:     cfg.Database.WALMode,
			BusyTimeout: cfg.Database.BusyTimeout,
		})
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() {
			log.Info("closing database")
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing database", "error", closeErr)
			}
		}()
		if err := db.Migrate(ctx, migrations.FS, "."); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("audit log ready", "path", cfg.Database.Path)
		auditRepo = audit.NewSQLiteRepository(db.DB)
		checks["database"] = db
	}

	if cfg.MQTT.Enabled {
		mqttClient, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log.Component("mqtt"))
		mqttClient.SetOnConnect(func() { log.Info("MQTT connected") })
		mqttClient.SetOnDisconnect(func(err error) { log.Warn("MQTT disconnected", "error", err) })
		checks["mqtt"] = mqttClient

		snapshotFeed := feed.New(mqttClient, decoder, store, cfg.Graph.MQTTTopic, byte(cfg.MQTT.QoS)) //nolint:gosec // QoS validated to 0..2
		snapshotFeed.SetLogger(log.Component("feed"))
		snapshotFeed.SetPublisher(mqttClient)
		if err := snapshotFeed.Start(); err != nil {
			return fmt.Errorf("starting snapshot feed: %w", err)
		}
		defer func() {
			if stopErr := snapshotFeed.Stop(); stopErr != nil {
				log.Warn("error stopping snapshot feed", "error", stopErr)
			}
		}()
		log.Info("snapshot feed subscribed", "topic", cfg.Graph.MQTTTopic)
	}

	if cfg.InfluxDB.Enabled {
		influxClient, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		checks["influxdb"] = influxClient

		recorder := history.New(influxClient)
		recorder.SetLogger(log.Component("history"))
		recorder.Attach(store)
		log.Info("recording characteristic history", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)
	}

	server, err := api.New(api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Security: cfg.Security,
		Logger:   log,
		Service:  service,
		Store:    store,
		Audit:    auditRepo,
		Checks:   checks,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error stopping API server", "error", closeErr)
		}
	}()
	if !cfg.AuthEnabled() {
		log.Warn("security.jwt.secret is empty; API requests are not authenticated")
	}

	if cfg.MCP.Enabled {
		return serveMCP(ctx, service, store, auditRepo, log)
	}

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")
	return nil
}

// serveMCP runs the stdio tool server until the client disconnects or ctx
// is cancelled.
func serveMCP(ctx context.Context, service *enumerate.Service, store *homegraph.Store, auditRepo audit.Repository, log *logging.Logger) error {
	tools, err := mcp.NewServer(mcp.Deps{
		Service: service,
		Store:   store,
		Audit:   auditRepo,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}
	tools.SetLogger(log.Component("mcp"))

	done := make(chan error, 1)
	go func() { done <- tools.ServeStdio() }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("serving MCP: %w", err)
		}
		log.Info("MCP client disconnected")
	case <-ctx.Done():
		log.Info("shutdown signal received, cleaning up")
	}
	return nil
}

// loadConfig reads HOMEGRAPH_CONFIG, or the default path. A missing file at
// the default path falls back to built-in defaults; a missing file that was
// asked for explicitly is an error.
func loadConfig() (*config.Config, string, error) {
	path := os.Getenv("HOMEGRAPH_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, path, nil
	}
	if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	cfg, err = config.Default()
	if err != nil {
		return nil, "", fmt.Errorf("loading default config: %w", err)
	}
	return cfg, "(defaults)", nil
}
