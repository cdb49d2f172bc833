package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/pkg/contracts/events"
)

// Worker consome os ticks de progresso do Kafka e os repassa pro canal
// de broadcast Redis consumido pelo WS do feed-service.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Worker struct {
	Log    *zap.Logger
	Reader *kafka.Reader

	// Broadcast publica o payload no Redis Pub/Sub
	Broadcast func(ctx context.Context, payload []byte) error

	OnConsumed  func()       // métricas (counter++)
	OnBroadcast func()       // métricas
	OnError     func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e repasse das mensagens Kafka
func (w *Worker) Run(ctx context.Context) error {
	for {
		m, err := w.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			w.Log.Warn("kafka read failed", zap.Error(err))
			if w.OnError != nil {
				w.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if w.OnConsumed != nil {
			w.OnConsumed()
		}

		// valida o payload antes de repassar
		var ev events.LiveProgressUpdate
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			w.Log.Warn("invalid message", zap.Error(err))
			if w.OnError != nil {
				w.OnError("decode")
			}
			continue
		}
		if ev.BetID == "" {
			w.Log.Warn("live progress without bet_id, dropping")
			if w.OnError != nil {
				w.OnError("validate")
			}
			continue
		}

		bctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		err = w.Broadcast(bctx, m.Value)
		cancel()
		if err != nil {
			w.Log.Warn("redis broadcast failed", zap.Error(err))
			if w.OnError != nil {
				w.OnError("broadcast")
			}
			continue
		}
		if w.OnBroadcast != nil {
			w.OnBroadcast()
		}
	}
}
