package main

import (
	"context"
	"fmt"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/internal/live-simulator/feedclient"
	"github.com/croswell/picks-feed-poc/internal/live-simulator/progress"
	"github.com/croswell/picks-feed-poc/internal/live-simulator/publisher"
	"github.com/croswell/picks-feed-poc/internal/shared/config"
	"github.com/croswell/picks-feed-poc/internal/shared/logger"
	"github.com/croswell/picks-feed-poc/internal/shared/metrics"
)

const tickInterval = 4 * time.Second

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	ticksPublished := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_ticks_published_total",
		Help: "Ticks de progresso publicados no Kafka",
	})
	publishErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_publish_errors_total",
		Help: "Falhas ao publicar ticks",
	})
	pollErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_feed_poll_errors_total",
		Help: "Falhas ao consultar o feed-service",
	})
	liveGames := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulator_live_games",
		Help: "Jogos ao vivo sendo simulados no momento",
	})
	prometheus.MustRegister(ticksPublished, publishErrors, pollErrors, liveGames)

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error { return nil })
	log.Info("metrics/health server started", zap.String("port", cfg.MetricsPort))

	pub := publisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.TopicLiveProgress, log)
	defer pub.Close()

	feed := feedclient.New(cfg.FeedServiceURL)
	sim := progress.NewSimulator(rand.New(rand.NewSource(time.Now().UnixNano())), cfg.ServiceName)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("live simulator started",
		zap.String("feed_url", cfg.FeedServiceURL),
		zap.String("topic", cfg.TopicLiveProgress),
		zap.Duration("interval", tickInterval),
	)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("live simulator stopped")
			return
		case <-ticker.C:
		}

		plays, err := feed.LivePlays(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Warn("failed to fetch live plays", zap.Error(err))
			pollErrors.Inc()
			continue
		}

		// descarta o estado de jogos que saíram da janela ao vivo
		active := make(map[string]bool, len(plays))
		for _, p := range plays {
			active[p.ID] = true
		}
		sim.Forget(active)
		liveGames.Set(float64(len(plays)))

		now := time.Now()
		for _, play := range plays {
			upd := sim.Tick(play, now)
			if err := pub.Publish(ctx, upd); err != nil {
				publishErrors.Inc()
				continue
			}
			ticksPublished.Inc()
		}
	}
}
