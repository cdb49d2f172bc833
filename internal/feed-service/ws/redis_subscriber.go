package ws

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/pkg/contracts/events"
)

// StartRedisSubscriber inicia uma goroutine que escuta o canal Redis
// Pub/Sub e repassa cada tick recebido:
// - onUpdate aplica o snapshot no dataset em memória
// - hub.Broadcast envia aos clientes WebSocket inscritos na aposta
func StartRedisSubscriber(ctx context.Context, r *redis.Client, channel string, hub *Hub, log *zap.Logger, onUpdate func(events.LiveProgressUpdate)) {
	sub := r.Subscribe(ctx, channel)
	ch := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				var upd events.LiveProgressUpdate
				if err := json.Unmarshal([]byte(msg.Payload), &upd); err != nil {
					log.Warn("ws subscriber unmarshal error", zap.Error(err))
					continue
				}
				if onUpdate != nil {
					onUpdate(upd)
				}
				hub.Broadcast(LiveUpdate{BetID: upd.BetID, Payload: upd})
			}
		}
	}()
}
