package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"lintang/labyrinthx/pkg/config"
	"lintang/labyrinthx/pkg/kv"
	"lintang/labyrinthx/pkg/server/rest"
	"lintang/labyrinthx/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listenAddr = flag.String("listenaddr", "", "server listen address (default dari LABYRINTHX_LISTEN_ADDR)")
	dbPath     = flag.String("db", "", "direktori pebble untuk maze (default dari LABYRINTHX_DB_PATH)")
)

func main() {
	flag.Parse()
	cfg := config.Load()
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := httplog.NewLogger("labyrinthx", httplog.Options{
		Writer:           os.Stdout,
		LogLevel:         cfg.SlogLevel(),
		JSON:             cfg.LogJSON,
		Concise:          true,
		MessageFieldName: "message",
		LevelFieldName:   "severity",
		TimeFieldFormat:  time.RFC3339,
		Tags: map[string]string{
			"version": "v1.0",
		},
		QuietDownRoutes: []string{
			"/metrics",
		},
		QuietDownPeriod: 10 * time.Second,
	})

	db, err := pebble.Open(cfg.DBPath, &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(httplog.RequestLogger(logger, []string{"/metrics"}))
	r.Use(middleware.Recoverer)
	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	mazeSvc := service.NewMazeService(kvDB, logger.Logger)
	rest.MazeRouter(r, mazeSvc, m)

	logger.Info("server started", slog.String("addr", cfg.ListenAddr), slog.String("db", cfg.DBPath))
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}
