package bankroll

import (
	"errors"
	"fmt"
)

// DefaultUnitFraction é a fração padrão da banca por unidade (2%)
const DefaultUnitFraction = 0.02

// ErrZeroOdds: odds zero não existem na convenção americana e
// estourariam a divisão do ramo negativo
var ErrZeroOdds = errors.New("odds must be nonzero")

// Recommendation é a sugestão de entrada calculada a partir da banca
type Recommendation struct {
	Units  float64 `json:"units"`
	Stake  string  `json:"stake"`  // 2 casas decimais
	Payout string  `json:"payout"` // lucro potencial, 2 casas decimais
}

// CalculateUnit devolve o valor de 1 unidade da banca
func CalculateUnit(bankroll float64, unitFraction float64) float64 {
	return bankroll * unitFraction
}

// Recommend calcula stake e payout pela convenção de odds americanas:
// positivas pagam stake*odds/100, negativas stake*100/|odds|.
func Recommend(bankroll float64, odds int, units float64, unitFraction float64) (Recommendation, error) {
	if odds == 0 {
		return Recommendation{}, ErrZeroOdds
	}
	if units <= 0 {
		units = 1
	}
	if unitFraction <= 0 {
		unitFraction = DefaultUnitFraction
	}

	stake := CalculateUnit(bankroll, unitFraction) * units

	var payout float64
	if odds > 0 {
		payout = stake * float64(odds) / 100
	} else {
		payout = stake * 100 / float64(-odds)
	}

	return Recommendation{
		Units:  units,
		Stake:  fmt.Sprintf("%.2f", stake),
		Payout: fmt.Sprintf("%.2f", payout),
	}, nil
}

// UnitsFor aplica a regra simples de sizing do app: parlays e props de
// DFS valem meia unidade, o resto 1u
func UnitsFor(market string, dfsBook bool) float64 {
	if dfsBook || market == "Player Prop Parlay" || market == "Player Prop" {
		return 0.5
	}
	return 1
}
