package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/internal/feed-service/finance"
	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/rewards"
	"github.com/croswell/picks-feed-poc/internal/feed-service/seed"
	"github.com/croswell/picks-feed-poc/internal/feed-service/store"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testAPI() *API {
	ds := seed.Dataset{
		Books: []model.Book{{ID: "dk", Name: "DraftKings"}},
		Partners: []model.Partner{
			{ID: "pt_01", Name: "Sharp Sid", IsSubscribed: true},
			{ID: "pt_02", Name: "Fade Frank"},
		},
		Bets: []model.Bet{
			{
				ID: "bet_0001", League: model.LeagueNBA, Game: "Celtics @ Lakers",
				Market: "Moneyline", Odds: -110, BookID: "dk", PartnerID: "pt_01",
				StartTime: testNow.Add(4 * time.Hour), Status: model.StatusActive, Stake: 10,
			},
			{
				ID: "bet_0002", League: model.LeagueNBA, Game: "Celtics @ Lakers",
				Market: "Moneyline", Odds: 105, BookID: "dk", PartnerID: "pt_01",
				StartTime: testNow.Add(4 * time.Hour), Status: model.StatusActive, Stake: 10,
			},
			{
				ID: "bet_0003", League: model.LeagueNFL, Game: "Bills @ Chiefs",
				Market: "Spread", Odds: -105, BookID: "dk", PartnerID: "pt_02",
				StartTime: testNow.Add(-time.Hour), Status: model.StatusLive, Stake: 25,
			},
		},
		Posts: []model.Post{
			{
				ID: "post_0001", PartnerID: "pt_01", Extraction: model.ExtractionParsed,
				CreatedAt: testNow.Add(-time.Hour),
				Parsed: []model.ParsedBet{{
					League: model.LeagueNBA, Event: "Celtics vs Lakers (BOS vs LAL)",
					Market: "Moneyline", Line: "Celtics ML", Odds: -110,
					Book: "DraftKings", EventTime: testNow.Add(4 * time.Hour).Format(time.RFC3339),
					BetType: model.BetMoneyline,
				}},
			},
			{
				ID: "post_0002", PartnerID: "pt_02", Extraction: model.ExtractionPartial,
				CreatedAt: testNow.Add(-2 * time.Hour),
				BetIDs:    []string{"bet_0003"},
			},
		},
	}

	return &API{
		Log:     zap.NewNop(),
		Data:    store.NewDataStore(ds),
		Filter:  store.NewFilterStore(),
		UI:      store.NewUIStore(),
		Finance: &finance.Mock{Store: store.NewDataStore(ds), Delay: -1, Now: func() time.Time { return testNow }},
		Rewards: func() *rewards.Mock { m := rewards.NewMock(); m.Delay = -1; return m }(),
		Region:  rewards.RegionNY,
		Now:     func() time.Time { return testNow },
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListBooksAndPartners(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodGet, "/v1/books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var books []model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 1)

	rec = doJSON(t, h, http.MethodGet, "/v1/partners", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var partners []model.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &partners))
	require.Len(t, partners, 2)
}

func TestFeedFilter(t *testing.T) {
	h := testAPI().Router()

	// default "All" com uma assinatura ativa: só posts do assinado
	rec := doJSON(t, h, http.MethodGet, "/v1/feed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	require.Equal(t, "post_0001", posts[0].ID)

	// persiste o filtro e lê de volta
	rec = doJSON(t, h, http.MethodPut, "/v1/feed/filter", map[string]string{"selected": "Fade Frank"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/feed", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	require.Equal(t, "post_0002", posts[0].ID)

	// ?filter= sobrepõe o filtro salvo sem mutá-lo
	rec = doJSON(t, h, http.MethodGet, "/v1/feed?filter=Sharp+Sid", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Equal(t, "post_0001", posts[0].ID)

	rec = doJSON(t, h, http.MethodGet, "/v1/feed/filter", nil)
	var filter struct {
		Selected string `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filter))
	require.Equal(t, "Fade Frank", filter.Selected)
}

func TestDiscover(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodGet, "/v1/discover", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []struct {
		League string               `json:"league"`
		Game   string               `json:"game"`
		When   string               `json:"when"`
		Bets   []model.Bet          `json:"bets"`
		Best   map[string]model.Bet `json:"best"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))

	// só o confronto ativo; o live fica de fora
	require.Len(t, groups, 1)
	require.Equal(t, "Celtics @ Lakers", groups[0].Game)
	require.Len(t, groups[0].Bets, 2)
	require.Equal(t, "Today at 4:00 PM", groups[0].When)

	// odds positiva vence a negativa no tailing
	require.Equal(t, "bet_0002", groups[0].Best["Moneyline"].ID)
}

func TestPlays(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodGet, "/v1/plays", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var buckets struct {
		Active    []model.Bet `json:"active"`
		Live      []model.Bet `json:"live"`
		Upcoming  []model.Bet `json:"upcoming"`
		Completed []model.Bet `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	require.Len(t, buckets.Live, 1)
	require.Len(t, buckets.Upcoming, 2)
	require.Empty(t, buckets.Completed)
}

func TestGetPost(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodGet, "/v1/posts/post_0001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		Post    model.Post     `json:"post"`
		Partner *model.Partner `json:"partner"`
		Parsed  []struct {
			Compatibility struct {
				Valid bool `json:"isValid"`
			} `json:"compatibility"`
			PrettyOdds string `json:"prettyOdds"`
		} `json:"parsed"`
		CTALabel string `json:"ctaLabel"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.Equal(t, "post_0001", detail.Post.ID)
	require.NotNil(t, detail.Partner)
	require.Equal(t, "Sharp Sid", detail.Partner.Name)
	require.Len(t, detail.Parsed, 1)
	require.True(t, detail.Parsed[0].Compatibility.Valid)
	require.Equal(t, "-110", detail.Parsed[0].PrettyOdds)
	require.Equal(t, "View Play", detail.CTALabel)

	rec = doJSON(t, h, http.MethodGet, "/v1/posts/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommend(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodPost, "/v1/bankroll/recommend", map[string]any{
		"bankroll": 500, "odds": -110,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Units  float64 `json:"units"`
		Stake  string  `json:"stake"`
		Payout string  `json:"payout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, 1.0, out.Units)
	require.Equal(t, "10.00", out.Stake)
	require.Equal(t, "9.09", out.Payout)

	rec = doJSON(t, h, http.MethodPost, "/v1/bankroll/recommend", map[string]any{
		"bankroll": 500, "odds": 0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/bankroll/recommend", map[string]any{
		"bankroll": -10, "odds": -110,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceEndpoints(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodGet, "/v1/finance/accounts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var accounts []model.LinkedAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	require.Len(t, accounts, 3)

	rec = doJSON(t, h, http.MethodGet, "/v1/finance/at-risk", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var atRisk struct {
		AtRisk float64 `json:"atRisk"`
		Pretty string  `json:"pretty"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &atRisk))
	require.InDelta(t, 45.0, atRisk.AtRisk, 1e-9)
	require.Equal(t, "$45.00", atRisk.Pretty)

	rec = doJSON(t, h, http.MethodGet, "/v1/finance/earnings?days=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var points []model.EarningsPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 3)

	rec = doJSON(t, h, http.MethodGet, "/v1/finance/earnings?days=1000", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRewardsEndpoints(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodGet, "/v1/rewards?region=CA", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state rewards.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Len(t, state.Promos, 1)

	// sem ?region= vale a região configurada no serviço (NY neste teste)
	rec = doJSON(t, h, http.MethodGet, "/v1/rewards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Len(t, state.Promos, 2)

	rec = doJSON(t, h, http.MethodPost, "/v1/rewards/dk-250/claim", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var promo rewards.PromoOffer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &promo))
	require.True(t, promo.Claimed)

	rec = doJSON(t, h, http.MethodPost, "/v1/rewards/nope/claim", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/rewards/referral", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ref rewards.ReferralProgram
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ref))
	require.Equal(t, 1, ref.WeeklyCompleted)
}

func TestUIEndpoints(t *testing.T) {
	h := testAPI().Router()

	rec := doJSON(t, h, http.MethodPut, "/v1/ui/flags/account_drawer", map[string]bool{"open": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/ui", nil)
	var ui struct {
		Flags        map[string]bool `json:"flags"`
		SelectedClub string          `json:"selectedClub"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ui))
	require.True(t, ui.Flags["account_drawer"])
	require.Equal(t, "All", ui.SelectedClub)

	rec = doJSON(t, h, http.MethodPost, "/v1/ui/flags/emoji_picker/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	require.True(t, toggled["emoji_picker"])

	rec = doJSON(t, h, http.MethodPut, "/v1/ui/club", map[string]string{"club": "Hoops Club"})
	require.Equal(t, http.StatusOK, rec.Code)
	var club map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &club))
	require.Equal(t, "Hoops Club", club["selectedClub"])
}
