package views

import (
	"sort"
	"strings"
	"time"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
)

// GameGroup é um confronto agrupado da tela Discover
type GameGroup struct {
	League    model.League `json:"league"`
	Game      string       `json:"game"`
	StartTime time.Time    `json:"startTime"`
	Bets      []model.Bet  `json:"bets"`
}

type discoverKey struct {
	league model.League
	game   string
	start  time.Time
}

// Discover projeta as apostas ativas em grupos por (liga, jogo, horário),
// com filtro opcional de liga e busca por substring no rótulo do jogo.
// Grupos saem ordenados por horário de início, ascendente.
func Discover(bets []model.Bet, league model.League, query string) []GameGroup {
	q := strings.ToLower(strings.TrimSpace(query))

	var filtered []model.Bet
	for _, b := range bets {
		if b.Status != model.StatusActive {
			continue
		}
		if league != "" && b.League != league {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(b.Game), q) {
			continue
		}
		filtered = append(filtered, b)
	}

	byKey := GroupBy(filtered, func(b model.Bet) discoverKey {
		return discoverKey{league: b.League, game: b.Game, start: b.StartTime}
	})

	groups := make([]GameGroup, 0, len(byKey))
	for k, items := range byKey {
		groups = append(groups, GameGroup{
			League:    k.league,
			Game:      k.game,
			StartTime: k.start,
			Bets:      items,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].StartTime.Equal(groups[j].StartTime) {
			return groups[i].StartTime.Before(groups[j].StartTime)
		}
		// desempate estável pra saída determinística
		if groups[i].League != groups[j].League {
			return groups[i].League < groups[j].League
		}
		return groups[i].Game < groups[j].Game
	})

	return groups
}

// BestByMarket escolhe a aposta mais favorável de um mercado pra tailing:
// odds positivas comparadas direto, negativas pelo valor mais próximo de
// zero. Empate fica com a primeira encontrada (regra determinística).
func BestByMarket(bets []model.Bet, market string) (model.Bet, bool) {
	var best model.Bet
	found := false
	for _, b := range bets {
		if b.Market != market {
			continue
		}
		// favorabilidade: positivas comparam direto, negativas valem
		// -|odds|; na convenção americana isso reduz à comparação do
		// próprio inteiro
		if !found || b.Odds > best.Odds {
			best = b
			found = true
		}
	}
	return best, found
}
