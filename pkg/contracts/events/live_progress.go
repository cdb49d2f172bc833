package events

import "time"

// Evento publicado no tópico "live_progress_updates"
// Representa um tick de progresso de uma aposta ao vivo
type LiveProgressUpdate struct {
	BetID              string         `json:"bet_id"`
	League             string         `json:"league"`
	CurrentScore       string         `json:"current_score"`       // ex: "24-18", "3-1"
	TimeRemaining      string         `json:"time_remaining"`      // ex: "Q3 8:45", "Bottom 7th"
	ProgressPercentage float64        `json:"progress_percentage"` // 0-100
	KeyStats           map[string]any `json:"key_stats,omitempty"` // ex: {"points": 24, "rebounds": 8}
	UpdatedAt          time.Time      `json:"updated_at"`
	Source             string         `json:"source"`  // "live-simulator"
	Version            int            `json:"version"` // incrementado a cada tick
}
