package config

import (
	"os"

	"github.com/joho/godotenv"

	ctopics "github.com/croswell/picks-feed-poc/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços
// Inclui conexões, tópicos, canais, URLs e portas
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "feed-service", "live-simulator", ...

	RedisAddr    string
	KafkaBrokers string // "a:9092,b:9092"

	// Tópicos/canais
	TopicLiveProgress    string
	TopicLiveProgressDLQ string
	RedisPubSubChannel   string

	// Seed do gerador de dados mock (vazio = entropia do sistema)
	SeedValue string

	// URL do feed-service (usada pelo live-simulator)
	FeedServiceURL string

	// Região default para o mock de rewards
	RewardsRegion string

	// Portas do serviço atual
	HTTPPort    string // Porta pública (ex.: API REST)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço
// Resolve portas e tópicos conforme o SERVICE_NAME
func Load() Config {
	_ = godotenv.Load() // .env é opcional

	svc := getEnv("SERVICE_NAME", "")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),

		TopicLiveProgress:    getEnv("KAFKA_TOPIC_LIVE_PROGRESS", ctopics.LiveProgressUpdates),
		TopicLiveProgressDLQ: getEnv("KAFKA_TOPIC_LIVE_PROGRESS_DLQ", ctopics.LiveProgressUpdatesDLQ),

		RedisPubSubChannel: getEnv("REDIS_PUBSUB_CHANNEL", "live_progress_broadcast"),

		SeedValue: getEnv("MOCK_SEED", ""),

		FeedServiceURL: getEnv("FEED_SERVICE_URL", "http://localhost:8084"),

		RewardsRegion: getEnv("REWARDS_REGION", "CA"),
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "feed-service":
		cfg.HTTPPort = getEnv("HTTP_PORT_FEED", "8084")
		cfg.MetricsPort = getEnv("METRICS_PORT_FEED", "9095")
	case "live-simulator":
		cfg.HTTPPort = getEnv("HTTP_PORT_SIMULATOR", "") // simulador não expõe HTTP público
		cfg.MetricsPort = getEnv("METRICS_PORT_SIMULATOR", "9096")
	case "live-progress-worker":
		cfg.HTTPPort = getEnv("HTTP_PORT_WORKER", "")
		cfg.MetricsPort = getEnv("METRICS_PORT_WORKER", "9097")
	default:
		cfg.HTTPPort = getEnv("HTTP_PORT", "8084")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9095")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
