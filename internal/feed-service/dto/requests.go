package dto

// SetFilterRequest troca o filtro ativo do feed
type SetFilterRequest struct {
	Selected string `json:"selected"` // "All" | nome do parceiro
}

// SetFlagRequest abre/fecha um drawer/sheet da UI
type SetFlagRequest struct {
	Open bool `json:"open"`
}

// SetClubRequest troca o clube selecionado no drawer de filtro
type SetClubRequest struct {
	Club string `json:"club"`
}

// RecommendRequest pede a sugestão de stake pra uma odd
type RecommendRequest struct {
	Bankroll     float64 `json:"bankroll"`
	Odds         int     `json:"odds"`
	Units        float64 `json:"units,omitempty"`        // default 1
	UnitFraction float64 `json:"unitFraction,omitempty"` // default 0.02
}
