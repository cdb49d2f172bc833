package finance

import (
	"context"
	"time"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/store"
	"github.com/croswell/picks-feed-poc/internal/feed-service/views"
)

// API é a fronteira com o backend financeiro; hoje só existe o mock,
// mas a interface é o ponto de troca quando virar chamada de rede real
type API interface {
	GetAccounts(ctx context.Context) ([]model.LinkedAccount, error)
	GetAtRisk(ctx context.Context) (float64, error)
	GetTotalBankroll(ctx context.Context) (float64, error)
	GetEarningsHistory(ctx context.Context, days int) ([]model.EarningsPoint, error)
}

// Latência artificial do mock, simulando a ida à rede
const mockDelay = 250 * time.Millisecond

var defaultAccounts = []model.LinkedAccount{
	{ID: "dk", Name: "DraftKings", Logo: "https://cdn.opticodds.com/sportsbook-logos/draftkings.jpg", CashBalance: 250.00},
	{ID: "fd", Name: "FanDuel", Logo: "https://cdn.opticodds.com/sportsbook-logos/fanduel.jpg", CashBalance: 200.00},
	{ID: "pp", Name: "PrizePicks", Logo: "https://dummyimage.com/80x80/8B5CF6/fff&text=PP", CashBalance: 50.00},
}

// Mock resolve tudo com valores fabricados após um delay fixo.
// Respeita cancelamento de contexto (quem desistiu não espera o delay).
type Mock struct {
	Store *store.DataStore
	Delay time.Duration    // zero = mockDelay; negativo = sem delay (testes)
	Now   func() time.Time // nil = time.Now
}

func NewMock(s *store.DataStore) *Mock {
	return &Mock{Store: s}
}

func (m *Mock) sleep(ctx context.Context) error {
	d := m.Delay
	if d == 0 {
		d = mockDelay
	}
	if d < 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (m *Mock) GetAccounts(ctx context.Context) ([]model.LinkedAccount, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	out := make([]model.LinkedAccount, len(defaultAccounts))
	copy(out, defaultAccounts)
	return out, nil
}

// GetAtRisk soma os stakes das apostas ativas e ao vivo
func (m *Mock) GetAtRisk(ctx context.Context) (float64, error) {
	if err := m.sleep(ctx); err != nil {
		return 0, err
	}
	return views.AtRisk(m.Store.Bets()), nil
}

// GetTotalBankroll devolve a banca fixa de $500 do demo
func (m *Mock) GetTotalBankroll(ctx context.Context) (float64, error) {
	if err := m.sleep(ctx); err != nil {
		return 0, err
	}
	return 500.00, nil
}

// GetEarningsHistory agrega o lucro diário das apostas liquidadas e
// devolve os últimos N dias, preenchendo com zero os dias sem jogos
func (m *Mock) GetEarningsHistory(ctx context.Context, days int) ([]model.EarningsPoint, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 7
	}

	byDay := make(map[string]float64)
	for _, b := range m.Store.Bets() {
		if b.Status != model.StatusWon && b.Status != model.StatusLost {
			continue // void não entra na série
		}
		key := b.StartTime.Format("2006-01-02")
		byDay[key] += profitOf(b)
	}

	nowFn := m.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	out := make([]model.EarningsPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format("2006-01-02")
		out = append(out, model.EarningsPoint{Date: key, Profit: byDay[key]})
	}
	return out, nil
}

// profitOf calcula o lucro de uma aposta liquidada: derrota perde o
// stake, vitória paga pela convenção americana
func profitOf(b model.Bet) float64 {
	if b.Status == model.StatusLost {
		return -b.Stake
	}
	if b.Odds > 0 {
		return b.Stake * float64(b.Odds) / 100
	}
	return b.Stake * 100 / float64(-b.Odds)
}
