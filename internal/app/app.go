package app

import (
	"TubeCourse/internal/app/server"
	"TubeCourse/internal/clients/gemini"
	"TubeCourse/internal/clients/youtube"
	"TubeCourse/internal/config"
	"TubeCourse/internal/delivery/http"
	"TubeCourse/internal/models"
	"TubeCourse/internal/service"
	"TubeCourse/internal/service/course"
	"TubeCourse/internal/service/playlist"
	"TubeCourse/internal/storage/elastic"
	"TubeCourse/internal/storage/memory"
	"TubeCourse/internal/storage/minio_storage"
	"TubeCourse/internal/storage/postgres"
	"TubeCourse/internal/storage/sqlite"
	"TubeCourse/pkg/jsonextract"
	"TubeCourse/pkg/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

type courseStore interface {
	Create(ctx context.Context, course models.Course) (models.Course, error)
	Get(ctx context.Context, id string) (models.Course, error)
	Update(ctx context.Context, id string, course models.Course) (models.Course, error)
}

// openStore returns the course store selected by the storage driver and a
// function releasing it.
func openStore(ctx context.Context, cfg *config.Config, log logger.Log) (courseStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg, err := postgres.NewPostgresPool(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return postgres.NewCoursePostgres(pg.Pool), pg.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, func() {
			if err := db.Close(); err != nil {
				log.ErrorErr("close sqlite", err)
			}
		}, nil
	case config.DriverMemory:
		return memory.NewCourseMemory(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// courseOptions enables search and export uploads when they are configured.
func courseOptions(ctx context.Context, cfg *config.Config, log logger.Log) ([]course.Option, error) {
	var opts []course.Option

	if len(cfg.ES.Hosts) > 0 {
		es, err := elastic.NewElasticClient(ctx, cfg.ES.Username, cfg.ES.Password, cfg.ES.Hosts)
		if err != nil {
			return nil, err
		}
		searchRepo := elastic.NewCourseSearchRepository(es, cfg.ES.Index)
		if err := searchRepo.CreateIndexIfNotExist(ctx); err != nil {
			return nil, err
		}
		opts = append(opts, course.WithSearch(searchRepo))
		log.Info("search enabled", "index", cfg.ES.Index)
	}

	if cfg.Minio.Endpoint != "" {
		mc, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
		if err != nil {
			return nil, err
		}
		exports, err := minio_storage.NewExportStorage(ctx, mc, cfg.Minio.Bucket, cfg.Minio.PresignTTL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, course.WithExports(exports))
		log.Info("export uploads enabled", "bucket", cfg.Minio.Bucket)
	}
	return opts, nil
}

func Run(cfg *config.Config) {
	ctx := context.Background()

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	if cfg.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set, playlist processing will fail")
	}
	if cfg.YouTube.APIKey == "" {
		log.Warn("YOUTUBE_API_KEY is not set, playlist processing will fail")
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.FatalErr("error opening course store", err, "driver", cfg.Storage.Driver)
	}
	defer closeStore()

	opts, err := courseOptions(ctx, cfg, log)
	if err != nil {
		log.FatalErr("error connecting optional storage", err)
	}

	yt, err := youtube.New(ctx, cfg.YouTube.APIKey, cfg.YouTube.MaxResults, log)
	if err != nil {
		log.FatalErr("error creating youtube client", err)
	}
	ai, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		log.FatalErr("error creating gemini client", err)
	}
	defer ai.Close()

	extractor := jsonextract.New(log, jsonextract.Options{
		RepairMode:    jsonextract.RepairMode(cfg.Extract.RepairMode),
		BalancedSlice: cfg.Extract.BalancedSlice,
	})

	u := service.Collection{
		CourseService:   course.NewCourseService(log, store, opts...),
		PlaylistService: playlist.NewPlaylistService(log, yt, ai, extractor, cfg.Gemini.Timeout),
	}

	r := http.InitRoutes(log, u, cfg.CORS.AllowOrigins)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.WriteTimeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("listening", "address", cfg.HTTPServer.Address, "storage", cfg.Storage.Driver)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server stopped", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown failed", err)
	}
}
