package model

import (
	"fmt"
	"time"
)

// Liga esportiva coberta pelo app
type League string

const (
	LeagueNFL   League = "NFL"
	LeagueNBA   League = "NBA"
	LeagueMLB   League = "MLB"
	LeagueNHL   League = "NHL"
	LeagueNCAAF League = "NCAAF"
	LeagueNCAAB League = "NCAAB"
)

// Leagues lista todas as ligas suportadas
func Leagues() []League {
	return []League{LeagueNFL, LeagueNBA, LeagueMLB, LeagueNHL, LeagueNCAAF, LeagueNCAAB}
}

// Status de uma aposta; a transição é sempre pra frente:
// active -> live -> won | lost | void
type BetStatus string

const (
	StatusActive BetStatus = "active"
	StatusLive   BetStatus = "live"
	StatusWon    BetStatus = "won"
	StatusLost   BetStatus = "lost"
	StatusVoid   BetStatus = "void"
)

// Concluded indica se a aposta já foi liquidada
func (s BetStatus) Concluded() bool {
	return s == StatusWon || s == StatusLost || s == StatusVoid
}

// Estado do jogo associado à aposta
type GameState string

const (
	GameScheduled  GameState = "scheduled"
	GameInProgress GameState = "in_progress"
	GameFinal      GameState = "final"
)

// Tipo estruturado da aposta extraída de um post
type BetType string

const (
	BetMoneyline  BetType = "moneyline"
	BetSpread     BetType = "spread"
	BetTotal      BetType = "total"
	BetPlayerProp BetType = "player_prop"
	BetParlay     BetType = "parlay"
)

// Quanto conteúdo estruturado foi reconhecido no texto do post
type Extraction string

const (
	ExtractionParsed   Extraction = "parsed"
	ExtractionPartial  Extraction = "partial"
	ExtractionUnparsed Extraction = "unparsed"
)

type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentLink  AttachmentType = "link"
)

// Book identifica uma casa de apostas do catálogo fixo
type Book struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Partner é um criador de conteúdo/handicapper do feed
type Partner struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar,omitempty"`
	IsSubscribed bool   `json:"isSubscribed"`
}

// LiveProgress é o snapshot de andamento de uma aposta ao vivo
type LiveProgress struct {
	CurrentScore       string         `json:"currentScore"`       // ex: "24-18", "3-1"
	TimeRemaining      string         `json:"timeRemaining"`      // ex: "Q3 8:45", "Bottom 7th"
	ProgressPercentage float64        `json:"progressPercentage"` // 0-100
	KeyStats           map[string]any `json:"keyStats,omitempty"` // ex: {"points": 24, "rebounds": 8}
	LastUpdate         time.Time      `json:"lastUpdate"`
}

// Bet é uma linha de aposta única
type Bet struct {
	ID           string        `json:"id"`
	League       League        `json:"league"`
	Game         string        `json:"game"`   // rótulo livre do confronto
	Market       string        `json:"market"` // Moneyline, Spread, Total, Player Prop...
	Line         string        `json:"line"`   // "+3.5", "O 24.5"...
	Odds         int           `json:"odds"`   // convenção americana, nunca zero
	BookID       string        `json:"bookId"`
	PartnerID    string        `json:"partnerId"`
	StartTime    time.Time     `json:"startTime"`
	Status       BetStatus     `json:"status"`
	Stake        float64       `json:"stake,omitempty"`
	GameState    GameState     `json:"gameState,omitempty"`
	LiveProgress *LiveProgress `json:"liveProgress,omitempty"`
}

// Validate aplica as invariantes mínimas de uma aposta gerada
func (b Bet) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("bet without id")
	}
	if b.Odds == 0 {
		return fmt.Errorf("bet %s: odds must be nonzero", b.ID)
	}
	if b.Stake < 0 {
		return fmt.Errorf("bet %s: negative stake", b.ID)
	}
	return nil
}

// ParsedBet é uma aposta extraída do texto não estruturado de um parceiro.
// Diferente de Bet, referencia a casa pelo nome de exibição, sem FK.
// A liga é carregada como campo estruturado junto do evento sintetizado,
// nunca re-derivada do texto.
type ParsedBet struct {
	League       League        `json:"league"`
	Event        string        `json:"event"` // pode embutir sufixo "(AAA vs BBB)"
	Market       string        `json:"market"`
	Line         string        `json:"line"`
	Odds         int           `json:"odds"`
	Book         string        `json:"book"`      // DraftKings, FanDuel, PrizePicks...
	EventTime    string        `json:"eventTime"` // ISO 8601
	BetType      BetType       `json:"betType,omitempty"`
	LiveProgress *LiveProgress `json:"liveProgress,omitempty"`
}

type Attachment struct {
	ID    string         `json:"id"`
	Type  AttachmentType `json:"type"`
	URL   string         `json:"url"`
	Title string         `json:"title,omitempty"`
}

// Post é uma entrada de feed de um parceiro
type Post struct {
	ID          string       `json:"id"`
	PartnerID   string       `json:"partnerId"`
	CreatedAt   time.Time    `json:"createdAt"`
	Extraction  Extraction   `json:"extraction"`
	Text        string       `json:"text"`
	BetIDs      []string     `json:"betIds,omitempty"` // caminho legado
	Parsed      []ParsedBet  `json:"parsed,omitempty"` // caminho atual
	Attachments []Attachment `json:"attachments,omitempty"`
	Views       int          `json:"views"`
	Tails       int          `json:"tails"`
}

// Validate aplica as invariantes de um post gerado
func (p Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post without id")
	}
	if p.Extraction == ExtractionParsed && len(p.Parsed) == 0 {
		return fmt.Errorf("post %s: extraction=parsed requires at least one parsed bet", p.ID)
	}
	if p.Views < 0 || p.Tails < 0 {
		return fmt.Errorf("post %s: views/tails must be non-negative", p.ID)
	}
	return nil
}

// HasImages informa se o post carrega algum anexo de imagem
func (p Post) HasImages() bool {
	for _, a := range p.Attachments {
		if a.Type == AttachmentImage {
			return true
		}
	}
	return false
}

// LinkedAccount representa uma carteira conectada de sportsbook (mock)
type LinkedAccount struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Logo        string  `json:"logo"`
	CashBalance float64 `json:"cashBalance"`
}

// EarningsPoint é um ponto da série de histórico de lucro diário
type EarningsPoint struct {
	Date   string  `json:"date"` // dia ISO
	Profit float64 `json:"profit"`
}
