package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// BetID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type  string `json:"type"`  // subscribe | unsubscribe | ping
	BetID string `json:"betId"` // requerido em subscribe/unsubscribe
}

// LiveUpdate representa um tick de progresso enviado aos clientes
// inscritos na aposta
type LiveUpdate struct {
	BetID   string      `json:"betId"`
	Payload interface{} `json:"payload"`
}
