package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/croswell/picks-feed-poc/internal/feed-service/bankroll"
	"github.com/croswell/picks-feed-poc/internal/feed-service/dto"
	"github.com/croswell/picks-feed-poc/internal/feed-service/finance"
	"github.com/croswell/picks-feed-poc/internal/feed-service/format"
	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/rewards"
	"github.com/croswell/picks-feed-poc/internal/feed-service/rules"
	"github.com/croswell/picks-feed-poc/internal/feed-service/store"
	"github.com/croswell/picks-feed-poc/internal/feed-service/views"
)

// API expõe o dataset mock e as projeções de cada tela via REST
type API struct {
	Log     *zap.Logger
	Data    *store.DataStore
	Filter  *store.FilterStore
	UI      *store.UIStore
	Finance finance.API
	Rewards rewards.API

	// região usada quando a query não traz ?region= (vem da config)
	Region rewards.RegionCode

	// relógio injetável pros buckets/formatadores (nil = time.Now)
	Now func() time.Time
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Router monta o roteador REST do feed-service
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/v1/books", a.listBooks)
	r.Get("/v1/partners", a.listPartners)

	r.Get("/v1/feed", a.getFeed)
	r.Get("/v1/feed/filter", a.getFilter)
	r.Put("/v1/feed/filter", a.setFilter)

	r.Get("/v1/discover", a.getDiscover)
	r.Get("/v1/plays", a.getPlays)
	r.Get("/v1/posts/{id}", a.getPost)

	r.Post("/v1/bankroll/recommend", a.recommend)

	r.Get("/v1/finance/accounts", a.getAccounts)
	r.Get("/v1/finance/at-risk", a.getAtRisk)
	r.Get("/v1/finance/bankroll", a.getBankroll)
	r.Get("/v1/finance/earnings", a.getEarnings)

	r.Get("/v1/rewards", a.getRewards)
	r.Post("/v1/rewards/{id}/claim", a.claimPromo)
	r.Post("/v1/rewards/referral", a.incrementReferral)

	r.Get("/v1/ui", a.getUI)
	r.Put("/v1/ui/flags/{flag}", a.setFlag)
	r.Post("/v1/ui/flags/{flag}/toggle", a.toggleFlag)
	r.Put("/v1/ui/club", a.setClub)

	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (a *API) listBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Data.Books())
}

func (a *API) listPartners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Data.Partners())
}

// getFeed devolve o feed principal; ?filter= sobrepõe o filtro salvo
func (a *API) getFeed(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query().Get("filter")
	if selected == "" {
		selected = a.Filter.Selected()
	}
	posts := views.HomeFeed(a.Data.Posts(), a.Data.Partners(), selected)
	if posts == nil {
		posts = []model.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (a *API) getFilter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.FilterResponse{Selected: a.Filter.Selected()})
}

func (a *API) setFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.SetFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	a.Filter.SetSelected(req.Selected)
	writeJSON(w, http.StatusOK, dto.FilterResponse{Selected: a.Filter.Selected()})
}

// getDiscover projeta as apostas ativas agrupadas por confronto,
// com filtro de liga (?league=) e busca textual (?q=)
func (a *API) getDiscover(w http.ResponseWriter, r *http.Request) {
	league := model.League(r.URL.Query().Get("league"))
	q := r.URL.Query().Get("q")

	now := a.now()
	groups := views.Discover(a.Data.Bets(), league, q)

	out := make([]dto.DiscoverGroup, 0, len(groups))
	for _, g := range groups {
		dg := dto.DiscoverGroup{
			League:    g.League,
			Game:      g.Game,
			StartTime: g.StartTime.UTC().Format(time.RFC3339),
			When:      format.WhenReadable(g.StartTime, now),
			Bets:      g.Bets,
		}
		best := make(map[string]model.Bet)
		for _, market := range []string{"Moneyline", "Spread", "Total"} {
			if b, ok := views.BestByMarket(g.Bets, market); ok {
				best[market] = b
			}
		}
		if len(best) > 0 {
			dg.Best = best
		}
		out = append(out, dg)
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getPlays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, views.Plays(a.Data.Bets(), a.now()))
}

// getPost resolve o detalhe de um post: parceiro, apostas legadas,
// parsed bets com validação de compatibilidade e rótulo do CTA
func (a *API) getPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, ok := a.Data.Post(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	detail := dto.PostDetail{
		Post:     post,
		Bets:     a.Data.PostBets(post),
		CTALabel: views.CTALabel(post),
	}
	for _, p := range a.Data.Partners() {
		if p.ID == post.PartnerID {
			partner := p
			detail.Partner = &partner
			break
		}
	}
	for _, pb := range post.Parsed {
		detail.Parsed = append(detail.Parsed, dto.ParsedBetView{
			ParsedBet:     pb,
			Compatibility: rules.CheckBookCompatibility(pb),
			PrettyOdds:    format.PrettyOdds(pb.Odds),
		})
	}

	writeJSON(w, http.StatusOK, detail)
}

func (a *API) recommend(w http.ResponseWriter, r *http.Request) {
	var req dto.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Bankroll <= 0 {
		writeError(w, http.StatusBadRequest, "bankroll must be positive")
		return
	}

	rec, err := bankroll.Recommend(req.Bankroll, req.Odds, req.Units, req.UnitFraction)
	if err != nil {
		// odds zero é violação de pré-condição do chamador
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (a *API) getAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := a.Finance.GetAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (a *API) getAtRisk(w http.ResponseWriter, r *http.Request) {
	v, err := a.Finance.GetAtRisk(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AtRiskResponse{AtRisk: v, Pretty: format.Money(&v)})
}

func (a *API) getBankroll(w http.ResponseWriter, r *http.Request) {
	v, err := a.Finance.GetTotalBankroll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.BankrollResponse{Total: v, Pretty: format.Money(&v)})
}

func (a *API) getEarnings(w http.ResponseWriter, r *http.Request) {
	days := 7
	if s := r.URL.Query().Get("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 90 {
			writeError(w, http.StatusBadRequest, "days must be 1-90")
			return
		}
		days = n
	}
	points, err := a.Finance.GetEarningsHistory(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (a *API) getRewards(w http.ResponseWriter, r *http.Request) {
	region := rewards.RegionCode(r.URL.Query().Get("region"))
	if region == "" {
		region = a.Region
	}
	st, err := a.Rewards.GetRewards(r.Context(), region)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (a *API) claimPromo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	promo, err := a.Rewards.ClaimPromo(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, promo)
}

func (a *API) incrementReferral(w http.ResponseWriter, r *http.Request) {
	ref, err := a.Rewards.IncrementReferral(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ref)
}

func (a *API) getUI(w http.ResponseWriter, r *http.Request) {
	flags := make(map[string]bool)
	for _, f := range []string{store.FlagAccountDrawer, store.FlagBookDrawer, store.FlagClubFilterDrawer, store.FlagEmojiPicker} {
		flags[f] = a.UI.IsOpen(f)
	}
	writeJSON(w, http.StatusOK, dto.UIStateResponse{Flags: flags, SelectedClub: a.UI.SelectedClub()})
}

func (a *API) setFlag(w http.ResponseWriter, r *http.Request) {
	flag := chi.URLParam(r, "flag")
	var req dto.SetFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Open {
		a.UI.Open(flag)
	} else {
		a.UI.Close(flag)
	}
	writeJSON(w, http.StatusOK, map[string]bool{flag: a.UI.IsOpen(flag)})
}

func (a *API) toggleFlag(w http.ResponseWriter, r *http.Request) {
	flag := chi.URLParam(r, "flag")
	writeJSON(w, http.StatusOK, map[string]bool{flag: a.UI.Toggle(flag)})
}

func (a *API) setClub(w http.ResponseWriter, r *http.Request) {
	var req dto.SetClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	a.UI.SetSelectedClub(req.Club)
	writeJSON(w, http.StatusOK, map[string]string{"selectedClub": a.UI.SelectedClub()})
}
