package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/catalog"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/config"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/db"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/handler"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/repository"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/router"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/service"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "nichoscope-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load title catalog")
	}

	// Without an API key the pipeline runs against the synthetic source,
	// which is what local development and the test suite use.
	var src youtube.Source
	if cfg.YouTubeAPIKey != "" {
		src = youtube.NewClient(cfg.YouTubeAPIKey)
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set, using synthetic channel source")
		src = youtube.NewSynthetic(uint64(time.Now().UnixNano()))
	}

	// The comparator only gets a real source when a key is configured.
	// Against the synthetic source every search returns exactly the
	// requested limit, so competitor counts would never discriminate;
	// a nil source switches it to simulated snapshots instead.
	var compSrc youtube.Source
	if cfg.YouTubeAPIKey != "" {
		compSrc = src
	}

	seed := uint64(time.Now().UnixNano())
	extractSvc := service.NewExtractService(src, cat, cache)
	metricsSvc := service.NewMetricsService(service.NewSyntheticSource(seed))
	validateSvc := service.NewValidateService()
	prioritizeSvc := service.NewPrioritizeService()
	titleSvc := service.NewTitleService(cat, seed)
	competitionSvc := service.NewCompetitionService(compSrc, cache, seed)
	scheduleSvc := service.NewScheduleService(titleSvc)
	trendingSvc := service.NewTrendingService(cfg.TrendingUpstreamURL, cache)
	searchRepo := repository.NewSearchRepo(pool)

	handler.InitMetrics(pool)
	cache.InstrumentWith(handler.Metrics.CacheHits, handler.Metrics.CacheMisses)

	worker := service.NewTrendingWorker(trendingSvc,
		strings.Split(cfg.TrendingRegions, ","),
		time.Duration(cfg.TrendingRefreshMinutes)*time.Minute)
	go worker.Start(ctx)
	defer worker.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "NichoScope API",
		ServerHeader: "NichoScope",
	})

	h := &router.Handlers{
		Analysis:    handler.NewAnalysisHandler(extractSvc, metricsSvc, validateSvc, prioritizeSvc),
		Title:       handler.NewTitleHandler(titleSvc),
		Competition: handler.NewCompetitionHandler(competitionSvc),
		Schedule:    handler.NewScheduleHandler(scheduleSvc),
		Search:      handler.NewSearchHandler(searchRepo, cfg.OwnerHashSalt),
		Trending:    handler.NewTrendingHandler(trendingSvc),
		Export:      handler.NewExportHandler(),
		Health:      handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutdown signal received")
		cancel()
		_ = app.Shutdown()
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Msg("NichoScope backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
