package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/internal/live-progress-worker/consumer"
	"github.com/croswell/picks-feed-poc/internal/live-progress-worker/pubsub"
	"github.com/croswell/picks-feed-poc/internal/shared/cache"
	"github.com/croswell/picks-feed-poc/internal/shared/config"
	"github.com/croswell/picks-feed-poc/internal/shared/kafka"
	"github.com/croswell/picks-feed-poc/internal/shared/logger"
	"github.com/croswell/picks-feed-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	redisClient, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicLiveProgress, "live-progress-worker")
	defer reader.Close()

	consumed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_live_progress_consumed_total",
		Help: "Mensagens consumidas do Kafka",
	})
	broadcast := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_live_progress_broadcast_total",
		Help: "Mensagens repassadas pro canal Redis",
	})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_live_progress_errors_total",
		Help: "Erros por etapa do pipeline",
	}, []string{"stage"})
	prometheus.MustRegister(consumed, broadcast, errorsBy)

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	log.Info("metrics/health server started", zap.String("port", cfg.MetricsPort))

	broadcaster := pubsub.NewRedisBroadcaster(redisClient)
	channel := cfg.RedisPubSubChannel

	worker := &consumer.Worker{
		Log:    log,
		Reader: reader,
		Broadcast: func(ctx context.Context, payload []byte) error {
			return broadcaster.Publish(ctx, channel, payload)
		},
		OnConsumed:  consumed.Inc,
		OnBroadcast: broadcast.Inc,
		OnError:     func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("live progress worker started",
		zap.String("topic", cfg.TopicLiveProgress),
		zap.String("channel", channel),
	)

	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("worker failed", zap.Error(err))
	}
	log.Info("live progress worker stopped")
}
