package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/internal/shared/cache"
	"github.com/croswell/picks-feed-poc/internal/shared/config"
	"github.com/croswell/picks-feed-poc/internal/shared/logger"
	"github.com/croswell/picks-feed-poc/internal/shared/metrics"

	"github.com/croswell/picks-feed-poc/internal/feed-service/finance"
	httpapi "github.com/croswell/picks-feed-poc/internal/feed-service/http"
	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/rewards"
	"github.com/croswell/picks-feed-poc/internal/feed-service/seed"
	"github.com/croswell/picks-feed-poc/internal/feed-service/store"
	"github.com/croswell/picks-feed-poc/internal/feed-service/ws"
	"github.com/croswell/picks-feed-poc/pkg/contracts/events"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// Semeia o gerador: MOCK_SEED fixa o dataset, vazio usa entropia do
	// sistema (única fonte de não-determinismo do processo)
	seedVal := time.Now().UnixNano()
	if cfg.SeedValue != "" {
		v, err := strconv.ParseInt(cfg.SeedValue, 10, 64)
		if err != nil {
			log.Fatal("invalid MOCK_SEED", zap.String("value", cfg.SeedValue), zap.Error(err))
		}
		seedVal = v
	}
	dataset := seed.New(rand.New(rand.NewSource(seedVal)), time.Now()).Make()
	log.Info("mock dataset generated",
		zap.Int64("seed", seedVal),
		zap.Int("books", len(dataset.Books)),
		zap.Int("partners", len(dataset.Partners)),
		zap.Int("bets", len(dataset.Bets)),
		zap.Int("posts", len(dataset.Posts)),
	)

	dataStore := store.NewDataStore(dataset)
	filterStore := store.NewFilterStore()
	uiStore := store.NewUIStore()

	// conecta com Redis (fan-out dos ticks de progresso ao vivo)
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("redis connected")

	// Métricas do serviço
	ws.RegisterMetrics()
	liveApplied := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_live_progress_applied_total",
		Help: "Ticks de progresso aplicados ao dataset",
	})
	liveDropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_live_progress_dropped_total",
		Help: "Ticks descartados (aposta desconhecida ou liquidada)",
	})
	prometheus.MustRegister(liveApplied, liveDropped)

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// WS hub + assinatura do canal Redis: cada tick atualiza o dataset
	// em memória e é repassado aos clientes inscritos
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	ws.StartRedisSubscriber(ctx, redisClient, cfg.RedisPubSubChannel, hub, log, func(upd events.LiveProgressUpdate) {
		ok := dataStore.ApplyLiveProgress(upd.BetID, model.LiveProgress{
			CurrentScore:       upd.CurrentScore,
			TimeRemaining:      upd.TimeRemaining,
			ProgressPercentage: upd.ProgressPercentage,
			KeyStats:           upd.KeyStats,
			LastUpdate:         upd.UpdatedAt,
		})
		if ok {
			liveApplied.Inc()
		} else {
			liveDropped.Inc()
		}
	})

	api := &httpapi.API{
		Log:     log,
		Data:    dataStore,
		Filter:  filterStore,
		UI:      uiStore,
		Finance: finance.NewMock(dataStore),
		Rewards: rewards.NewMock(),
		Region:  rewards.RegionCode(cfg.RewardsRegion),
	}

	// servidor de métricas e health em goroutine própria
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	log.Info("metrics/health server started", zap.String("port", cfg.MetricsPort))

	root := chi.NewRouter()
	root.Mount("/", api.Router())
	root.Get("/ws", hub.HandleWS)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: withCORS(root),
	}

	go func() {
		<-ctx.Done()
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		_ = srv.Shutdown(shCtx)
	}()

	log.Info("feed-service listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("feed-service failed", zap.Error(err))
	}
	log.Info("feed-service stopped")
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}
