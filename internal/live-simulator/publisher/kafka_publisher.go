package publisher

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	skafka "github.com/croswell/picks-feed-poc/internal/shared/kafka"
	"github.com/croswell/picks-feed-poc/pkg/contracts/events"
)

// KafkaPublisher encapsula o writer Kafka e o logger.
type KafkaPublisher struct {
	writer *skafka.Writer
	log    *zap.Logger
}

// NewKafkaPublisher cria um publisher para o tópico de progresso ao vivo.
// Em ambiente local/dev tenta criar o tópico via controller do cluster.
func NewKafkaPublisher(brokers string, topic string, log *zap.Logger) *KafkaPublisher {
	if brokers == "" {
		log.Fatal("kafka brokers not provided")
	}

	if env := os.Getenv("ENV"); env == "" || env == "local" || env == "dev" {
		ensureTopic(brokers, topic, log)
	}

	return &KafkaPublisher{
		writer: skafka.NewWriter(brokers, topic),
		log:    log,
	}
}

func ensureTopic(brokers string, topic string, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	first := strings.Split(brokers, ",")[0]
	conn, err := kafka.DialContext(ctx, "tcp", first)
	if err != nil {
		log.Fatal("failed to connect to kafka", zap.Error(err))
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		log.Fatal("failed to get kafka controller", zap.Error(err))
	}

	controllerAddr := fmt.Sprintf("%s:%d", controller.Host, controller.Port)
	cconn, err := kafka.DialContext(ctx, "tcp", controllerAddr)
	if err != nil {
		log.Fatal("failed to dial controller", zap.Error(err))
	}
	defer cconn.Close()

	cfg := kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}

	if err := cconn.CreateTopics(cfg); err != nil && !strings.Contains(err.Error(), "already exists") {
		log.Warn("failed to create kafka topic", zap.String("topic", topic), zap.Error(err))
	} else if err == nil {
		log.Info("kafka topic created", zap.String("topic", topic))
	}
}

// Publish serializa o tick em JSON; a chave é o BetID pra manter a
// ordem por partição
func (p *KafkaPublisher) Publish(ctx context.Context, e events.LiveProgressUpdate) error {
	if err := skafka.WriteEvent(ctx, p.writer, e.BetID, e); err != nil {
		p.log.Error("failed to publish live progress", zap.Error(err))
		return err
	}

	p.log.Debug("published live progress", zap.String("bet_id", e.BetID), zap.Int("version", e.Version))
	return nil
}

// Close finaliza o writer e libera recursos associados.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
