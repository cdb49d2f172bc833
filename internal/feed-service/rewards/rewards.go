package rewards

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RegionCode identifica a região do usuário pra elegibilidade de promos
type RegionCode string

const (
	RegionCA    RegionCode = "CA"
	RegionNY    RegionCode = "NY"
	RegionNJ    RegionCode = "NJ"
	RegionPA    RegionCode = "PA"
	RegionCO    RegionCode = "CO"
	RegionAZ    RegionCode = "AZ"
	RegionTX    RegionCode = "TX"
	RegionOther RegionCode = "Other"
)

// PromoOffer é uma oferta de promoção de um sportsbook
type PromoOffer struct {
	ID              string       `json:"id"`
	ProviderID      string       `json:"providerId"`
	ProviderName    string       `json:"providerName"`
	Logo            string       `json:"logo"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	RewardValueUSD  float64      `json:"rewardValueUsd"`
	CTALabel        string       `json:"ctaLabel"`
	Deeplink        string       `json:"deeplink"`
	EligibleRegions []RegionCode `json:"eligibleRegions"`
	ExpiresAt       string       `json:"expiresAt,omitempty"` // ISO
	Claimed         bool         `json:"claimed,omitempty"`
}

// ReferralProgram é o estado do programa de indicação do usuário
type ReferralProgram struct {
	Code            string  `json:"code"`
	InviteURL       string  `json:"inviteUrl"`
	WeeklyTarget    int     `json:"weeklyTarget"`
	WeeklyCompleted int     `json:"weeklyCompleted"`
	BaseRewardUSD   float64 `json:"baseRewardUsd"`
}

// State é o payload completo da tela de rewards
type State struct {
	Promos   []PromoOffer    `json:"promos"`
	Referral ReferralProgram `json:"referral"`
}

// API é a fronteira com o backend de rewards (hoje só o mock)
type API interface {
	GetRewards(ctx context.Context, region RegionCode) (State, error)
	ClaimPromo(ctx context.Context, id string) (PromoOffer, error)
	IncrementReferral(ctx context.Context) (ReferralProgram, error)
}

const mockDelay = 300 * time.Millisecond

var defaultPromos = []PromoOffer{
	{
		ID:              "pp-200",
		ProviderID:      "pp",
		ProviderName:    "PrizePicks",
		Logo:            "https://dummyimage.com/80x80/8B5CF6/fff&text=PP",
		Title:           "Earn up to $200 in PrizePicks Cash",
		Description:     "Use code DUBCLUB and get 2% back on every play for 30 days (max $200).",
		RewardValueUSD:  200,
		CTALabel:        "Claim $200",
		Deeplink:        "https://example.org/promo/prizepicks",
		EligibleRegions: []RegionCode{RegionCA, RegionOther},
	},
	{
		ID:              "dk-250",
		ProviderID:      "dk",
		ProviderName:    "DraftKings",
		Logo:            "https://cdn.opticodds.com/sportsbook-logos/draftkings.jpg",
		Title:           "Bet $5, Get $250",
		Description:     "New users only. Min. $5 bet required.",
		RewardValueUSD:  250,
		CTALabel:        "Claim $250",
		Deeplink:        "https://example.org/promo/dk",
		EligibleRegions: []RegionCode{RegionNY, RegionNJ, RegionPA, RegionCO, RegionAZ, RegionOther},
	},
	{
		ID:              "fd-200",
		ProviderID:      "fd",
		ProviderName:    "FanDuel",
		Logo:            "https://cdn.opticodds.com/sportsbook-logos/fanduel.jpg",
		Title:           "Bet $5, Get $200",
		Description:     "New users only. Min. $5 bet required.",
		RewardValueUSD:  200,
		CTALabel:        "Claim $200",
		Deeplink:        "https://example.org/promo/fd",
		EligibleRegions: []RegionCode{RegionNY, RegionNJ, RegionPA, RegionCO, RegionAZ, RegionOther},
	},
}

// Mock mantém promos e referral em memória, com delay artificial.
// Claim é a única mutação de promo; referral satura no alvo semanal.
type Mock struct {
	mu       sync.Mutex
	promos   []PromoOffer
	referral ReferralProgram

	Delay time.Duration // zero = mockDelay; negativo = sem delay (testes)
}

func NewMock() *Mock {
	promos := make([]PromoOffer, len(defaultPromos))
	copy(promos, defaultPromos)
	return &Mock{
		promos: promos,
		referral: ReferralProgram{
			Code:            "SPIKE38400",
			InviteURL:       "https://dubclub.example/invite/SPIKE38400",
			WeeklyTarget:    5,
			WeeklyCompleted: 0,
			BaseRewardUSD:   3,
		},
	}
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

// GetRewards filtra as promos elegíveis pra região ("Other" vale em
// qualquer lugar) e devolve um snapshot do referral
func (m *Mock) GetRewards(ctx context.Context, region RegionCode) (State, error) {
	if err := m.sleep(ctx); err != nil {
		return State{}, err
	}
	if region == "" {
		region = RegionCA
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var eligible []PromoOffer
	for _, p := range m.promos {
		for _, r := range p.EligibleRegions {
			if r == region || r == RegionOther {
				eligible = append(eligible, p)
				break
			}
		}
	}
	return State{Promos: eligible, Referral: m.referral}, nil
}

func (m *Mock) ClaimPromo(ctx context.Context, id string) (PromoOffer, error) {
	if err := m.sleep(ctx); err != nil {
		return PromoOffer{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.promos {
		if m.promos[i].ID == id {
			m.promos[i].Claimed = true
			return m.promos[i], nil
		}
	}
	return PromoOffer{}, fmt.Errorf("promo %s not found", id)
}

func (m *Mock) IncrementReferral(ctx context.Context) (ReferralProgram, error) {
	if err := m.sleep(ctx); err != nil {
		return ReferralProgram{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.referral.WeeklyCompleted < m.referral.WeeklyTarget {
		m.referral.WeeklyCompleted++
	}
	return m.referral, nil
}
