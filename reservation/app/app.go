package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/pkg/cache"
	"github.com/sarpras/reservation-service/pkg/circuit_breaker"
	"github.com/sarpras/reservation-service/pkg/kafka"
	"github.com/sarpras/reservation-service/pkg/logger"
	"github.com/sarpras/reservation-service/pkg/postgres"
	"github.com/sarpras/reservation-service/reservation/config"
	"github.com/sarpras/reservation-service/reservation/internal/handler"
	"github.com/sarpras/reservation-service/reservation/internal/repository"
	"github.com/sarpras/reservation-service/reservation/internal/server"
	"github.com/sarpras/reservation-service/reservation/internal/service"
	"github.com/sarpras/reservation-service/reservation/migrations"
)

const (
	cbRecordLength     = 20
	cbTimeout          = 10 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "reservation")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo reservations %v", err)
	}

	var opts []service.Option

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		if rdb, err = cache.NewClient(ctx, cfg.Redis); err != nil {
			log.Warn("catalog cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
		}
	}
	opts = append(opts, service.WithResources(repository.NewCachedResources(repo, rdb, cfg.Redis.TTL, log)))

	var (
		producer sarama.SyncProducer
		group    sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled() {
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
		defer producer.Close()
		cb := circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests)
		opts = append(opts, service.WithPublisher(service.NewQueuePublisher(kafka.NewEnqueuer(producer), cb)))

		if group, err = kafka.NewConsumer(cfg.Kafka, kafka.NotifierConsumerGroup); err != nil {
			return fmt.Errorf("kafka consumer %v", err)
		}
		defer group.Close()
	} else {
		log.Info("kafka is not configured, decisions are handled in process")
	}

	svc := service.NewService(repo, log, opts...)
	h := handler.New(svc, cfg.Auth, log)

	if group != nil {
		consumer := handler.NewConsumer(svc.HandleDecision, log)
		go kafka.Consume(ctx, group, consumer, log, kafka.DecisionTopic)
	}

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
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
