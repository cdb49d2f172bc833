package dto

import (
	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/rules"
)

// DiscoverGroup é um confronto da tela Discover com a melhor odd por
// mercado clássico já resolvida
type DiscoverGroup struct {
	League    model.League         `json:"league"`
	Game      string               `json:"game"`
	StartTime string               `json:"startTime"` // ISO
	When      string               `json:"when"`      // ex: "Today at 7:30 PM"
	Bets      []model.Bet          `json:"bets"`
	Best      map[string]model.Bet `json:"best,omitempty"` // mercado -> aposta
}

// ParsedBetView anexa a validação de compatibilidade à aposta extraída
type ParsedBetView struct {
	model.ParsedBet
	Compatibility rules.Compatibility `json:"compatibility"`
	PrettyOdds    string              `json:"prettyOdds"`
}

// PostDetail é o payload da tela de detalhe do post
type PostDetail struct {
	Post     model.Post      `json:"post"`
	Partner  *model.Partner  `json:"partner,omitempty"`
	Bets     []model.Bet     `json:"bets,omitempty"` // resolvidos via betIds (legado)
	Parsed   []ParsedBetView `json:"parsed,omitempty"`
	CTALabel string          `json:"ctaLabel"`
}

// UIStateResponse é o snapshot das flags da UI
type UIStateResponse struct {
	Flags        map[string]bool `json:"flags"`
	SelectedClub string          `json:"selectedClub"`
}

// FilterResponse é o filtro ativo do feed
type FilterResponse struct {
	Selected string `json:"selected"`
}

// AtRiskResponse embrulha o valor em risco formatado
type AtRiskResponse struct {
	AtRisk float64 `json:"atRisk"`
	Pretty string  `json:"pretty"`
}

// BankrollResponse embrulha a banca total
type BankrollResponse struct {
	Total  float64 `json:"total"`
	Pretty string  `json:"pretty"`
}
