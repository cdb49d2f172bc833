package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
)

// Plataformas daily fantasy: só aceitam parlays de player props
var dfsBooks = map[string]bool{
	"PrizePicks": true,
	"Underdog":   true,
	"Sleeper":    true,
}

// Compatibility é o resultado estruturado da validação; violação de
// regra de domínio nunca vira erro/panic, vira Valid=false + Reason
// (a UI usa isso pra desabilitar o CTA e mostrar o aviso)
type Compatibility struct {
	Valid  bool   `json:"isValid"`
	Reason string `json:"reason,omitempty"`
}

// IsDFSBook diz se o nome de exibição pertence a uma plataforma
// daily fantasy
func IsDFSBook(name string) bool { return dfsBooks[name] }

// CheckBookCompatibility valida se a aposta extraída é legalmente
// ofertável na casa indicada. Casas tradicionais aceitam tudo; DFS
// só aceita "Player Prop Parlay" com linhas over/under de jogador.
func CheckBookCompatibility(pb model.ParsedBet) Compatibility {
	if !dfsBooks[pb.Book] {
		return Compatibility{Valid: true}
	}

	event := strings.ToLower(pb.Event)

	if hasMoneyline(event) || hasSpread(event) || hasTotal(event) {
		return Compatibility{
			Valid:  false,
			Reason: fmt.Sprintf("%s only supports player prop parlays. Moneyline, spread, and total bets are not available.", pb.Book),
		}
	}

	if pb.Market != "Player Prop Parlay" {
		return Compatibility{
			Valid:  false,
			Reason: fmt.Sprintf("%s only supports player prop parlays.", pb.Book),
		}
	}

	if !strings.Contains(event, "over") && !strings.Contains(event, "under") {
		return Compatibility{
			Valid:  false,
			Reason: fmt.Sprintf("%s only supports player prop parlays with over/under lines.", pb.Book),
		}
	}

	return Compatibility{Valid: true}
}

func hasMoneyline(event string) bool {
	return strings.Contains(event, " ml") ||
		strings.Contains(event, "moneyline") ||
		strings.Contains(event, "money line")
}

func hasSpread(event string) bool {
	if strings.Contains(event, "spread") {
		return true
	}
	return strings.Contains(event, "+") && strings.Contains(event, "-") &&
		!strings.Contains(event, "over") && !strings.Contains(event, "under")
}

// Palavras de estatística de jogador: se aparecem junto de over/under,
// é prop e não total de jogo
var statKeywords = []string{
	"points", "rebounds", "assists", "threes", "yards", "receptions",
	"touchdowns", "tds", "goals", "home runs", "hrs", "strikeouts", "ks",
}

func hasTotal(event string) bool {
	if strings.Contains(event, "total") {
		return true
	}
	if !strings.Contains(event, "over") || !strings.Contains(event, "under") {
		return false
	}
	for _, kw := range statKeywords {
		if strings.Contains(event, kw) {
			return false
		}
	}
	return true
}

// Sufixo "(AAA vs BBB)" com códigos de 2-4 letras no fim do evento
var teamCodesRe = regexp.MustCompile(`\(([A-Z]{2,4}\s+vs\s+[A-Z]{2,4})\)$`)

// ExtractTeamCodes separa o sufixo de códigos de time do texto do
// evento; sem sufixo, devolve o evento intacto
func ExtractTeamCodes(event string) (teams string, cleanEvent string) {
	m := teamCodesRe.FindStringSubmatch(strings.TrimSpace(event))
	if m == nil {
		return "", event
	}
	clean := strings.TrimSpace(teamCodesRe.ReplaceAllString(strings.TrimSpace(event), ""))
	return m[1], clean
}

// MoneylineLabel formata eventos de moneyline como "Time ML" pra
// deixar claro em quem é a aposta
func MoneylineLabel(event string, market string) string {
	if market != "Moneyline" {
		return event
	}
	idx := strings.Index(event, " vs")
	if idx <= 0 {
		return event
	}
	return strings.TrimSpace(event[:idx]) + " ML"
}
