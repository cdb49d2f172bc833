package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Broadcast precisa conviver com clientes assinando e desassinando a
// mesma aposta ao mesmo tempo (é o que acontece a cada tick ao vivo).
// Roda limpo sob -race.
func TestBroadcastDuringSubscriptionChurn(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true })
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	const clients = 8
	errs := make(chan error, clients)

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
			if err != nil {
				errs <- err
				return
			}
			defer conn.Close()

			for j := 0; j < 50; j++ {
				if err := conn.WriteJSON(ClientMsg{Type: "subscribe", BetID: "bet_0001"}); err != nil {
					errs <- err
					return
				}
				if err := conn.WriteJSON(ClientMsg{Type: "unsubscribe", BetID: "bet_0001"}); err != nil {
					errs <- err
					return
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	update := LiveUpdate{BetID: "bet_0001", Payload: map[string]int{"version": 1}}
	for {
		select {
		case <-done:
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}
			return
		default:
			hub.Broadcast(update)
		}
	}
}

func TestBroadcastOnlyReachesSubscribers(t *testing.T) {
	hub := NewHub(func(r *http.Request) bool { return true })
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	sub, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer sub.Close()

	other, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer other.Close()

	require.NoError(t, sub.WriteJSON(ClientMsg{Type: "subscribe", BetID: "bet_0001"}))
	require.NoError(t, other.WriteJSON(ClientMsg{Type: "subscribe", BetID: "bet_0002"}))

	// ping/pong confirma que os subscribes acima já foram processados
	for _, c := range []*websocket.Conn{sub, other} {
		require.NoError(t, c.WriteJSON(ClientMsg{Type: "ping"}))
		var pong map[string]string
		require.NoError(t, c.ReadJSON(&pong))
		require.Equal(t, "pong", pong["type"])
	}

	hub.Broadcast(LiveUpdate{BetID: "bet_0001", Payload: map[string]string{"score": "24-18"}})

	var got LiveUpdate
	require.NoError(t, sub.ReadJSON(&got))
	require.Equal(t, "bet_0001", got.BetID)
}
