package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/idudina/library-service/config"
	"github.com/idudina/library-service/internal/events"
	"github.com/idudina/library-service/internal/handler"
	"github.com/idudina/library-service/internal/repository"
	"github.com/idudina/library-service/internal/server"
	"github.com/idudina/library-service/internal/service"
	"github.com/idudina/library-service/migrations"
	"github.com/idudina/library-service/pkg/cache"
	"github.com/idudina/library-service/pkg/kafka"
	"github.com/idudina/library-service/pkg/logger"
	"github.com/idudina/library-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	ctx := context.Background()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	// cache is a best-effort side channel; fall back to in-process when
	// redis is absent
	var c cache.Cache
	if cfg.Redis.Addr != "" {
		if c, err = cache.NewRedis(ctx, cfg.Redis); err != nil {
			log.Fatal("redis init", zap.Error(err))
		}
	} else {
		log.Warn("no redis address configured, using in-process cache")
		c = cache.NewMemory()
	}

	publisher := events.NewNop()
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		publisher = events.NewPublisher(producer, cfg.Kafka.Topic, log)
	}

	catalogSvc := service.NewCatalogService(repo, log)
	reservationSvc := service.NewReservationService(repo, publisher, log)
	dashboardSvc := service.NewDashboardService(repo, c, log)
	authSvc := service.NewAuthService(repo, log)

	h := handler.New(catalogSvc, reservationSvc, dashboardSvc, authSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
