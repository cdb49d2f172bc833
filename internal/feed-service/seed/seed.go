package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
)

// Janela na qual um evento já iniciado é considerado ao vivo
const LiveWindow = 3 * time.Hour

// Dataset é o snapshot completo gerado para alimentar todas as telas
type Dataset struct {
	Books    []model.Book
	Partners []model.Partner
	Bets     []model.Bet
	Posts    []model.Post
}

// Generator sintetiza um dataset mock internamente consistente.
// Recebe a fonte de aleatoriedade e o relógio de referência, então
// o mesmo par (seed, now) reproduz exatamente o mesmo dataset.
type Generator struct {
	r   *rand.Rand
	now time.Time

	betSeq  int
	postSeq int
}

func New(r *rand.Rand, now time.Time) *Generator {
	return &Generator{r: r, now: now}
}

// Make gera as quatro coleções. Nunca falha: o gerador não valida nem
// corrige sorteios inconsistentes entre si.
func (g *Generator) Make() Dataset {
	books := make([]model.Book, len(bookCatalog))
	copy(books, bookCatalog)

	partners := g.makePartners()
	bets := g.makeBets(partners)
	posts := g.makePosts(partners, bets)

	return Dataset{Books: books, Partners: partners, Bets: bets, Posts: posts}
}

func (g *Generator) makePartners() []model.Partner {
	partners := make([]model.Partner, 0, len(partnerNames))
	for i, name := range partnerNames {
		partners = append(partners, model.Partner{
			ID:           fmt.Sprintf("pt_%02d", i+1),
			Name:         name,
			Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=pt_%02d", i+1),
			IsSubscribed: g.chance(0.5),
		})
	}
	return partners
}

// makeBets cruza os confrontos curados com os mercados clássicos e
// completa com apostas de player prop/parlay aleatórias
func (g *Generator) makeBets(partners []model.Partner) []model.Bet {
	var bets []model.Bet

	for _, league := range model.Leagues() {
		for _, m := range matchupsByLeague[league] {
			start := g.gameStart()
			game := m.away + " @ " + m.home
			for _, market := range coreMarkets {
				b := model.Bet{
					ID:        g.nextBetID(),
					League:    league,
					Game:      game,
					Market:    market,
					Line:      g.lineFor(market, m),
					Odds:      g.pickInt(oddsPool),
					BookID:    g.pickString(traditionalBookIDs),
					PartnerID: g.pickPartner(partners),
					StartTime: start,
					Stake:     float64(g.between(5, 100)),
				}
				g.assignStatus(&b)
				bets = append(bets, b)
			}
		}
	}

	// filler: player props e parlays, únicos mercados permitidos nas
	// plataformas daily fantasy
	for i := 0; i < 8; i++ {
		league := pickLeague(g.r, propsByLeague)
		prop := g.pickProp(propsByLeague[league])
		m := matchupsByLeague[league][g.r.Intn(len(matchupsByLeague[league]))]

		market := "Player Prop"
		line := fmt.Sprintf("O %.1f", prop.low+g.r.Float64()*(prop.high-prop.low))
		if g.chance(0.25) {
			market = "Parlay"
			line = fmt.Sprintf("%d legs", g.between(2, 4))
		}

		bookID := g.pickString(dfsBookIDs)
		if g.chance(0.3) {
			bookID = g.pickString(traditionalBookIDs)
		}

		b := model.Bet{
			ID:        g.nextBetID(),
			League:    league,
			Game:      m.away + " @ " + m.home,
			Market:    market,
			Line:      prop.player + " " + line,
			Odds:      g.pickInt(oddsPool),
			BookID:    bookID,
			PartnerID: g.pickPartner(partners),
			StartTime: g.gameStart(),
			Stake:     float64(g.between(5, 100)),
		}
		g.assignStatus(&b)
		bets = append(bets, b)
	}

	return bets
}

// assignStatus deriva status/gameState da posição do startTime em
// relação ao relógio; eventos na janela ao vivo ganham snapshot de progresso
func (g *Generator) assignStatus(b *model.Bet) {
	elapsed := g.now.Sub(b.StartTime)
	switch {
	case elapsed < 0:
		b.Status = model.StatusActive
		b.GameState = model.GameScheduled
	case elapsed <= LiveWindow:
		b.Status = model.StatusLive
		b.GameState = model.GameInProgress
		lp := g.liveProgress(b.League, b.StartTime, b.Market, b.Line)
		b.LiveProgress = &lp
	default:
		b.GameState = model.GameFinal
		b.Status = g.settledStatus()
	}
}

func (g *Generator) settledStatus() model.BetStatus {
	x := g.r.Float64()
	switch {
	case x < 0.45:
		return model.StatusWon
	case x < 0.9:
		return model.StatusLost
	default:
		return model.StatusVoid
	}
}

// gameStart sorteia o horário do evento: maioria futura, uma fatia na
// janela ao vivo e o resto já encerrado
func (g *Generator) gameStart() time.Time {
	x := g.r.Float64()
	switch {
	case x < 0.5: // próximos 3 dias
		return g.now.Add(time.Duration(g.between(1, 72*60)) * time.Minute)
	case x < 0.75: // dentro da janela ao vivo
		return g.now.Add(-time.Duration(g.between(5, 175)) * time.Minute)
	default: // encerrado há até 3 dias
		return g.now.Add(-time.Duration(g.between(4*60, 72*60)) * time.Minute)
	}
}

func (g *Generator) lineFor(market string, m matchup) string {
	switch market {
	case "Spread":
		return g.pickString(spreadLines)
	case "Total":
		return g.pickString(totalLines)
	default: // Moneyline
		return m.home + " ML"
	}
}

// makePosts gera o feed com split ponderado de extração:
// parsed é o mais comum, depois partial, depois unparsed
func (g *Generator) makePosts(partners []model.Partner, bets []model.Bet) []model.Post {
	posts := make([]model.Post, 0, 28)
	for i := 0; i < 28; i++ {
		p := model.Post{
			ID:        g.nextPostID(),
			PartnerID: g.pickPartner(partners),
			CreatedAt: g.now.Add(-time.Duration(g.between(10, 72*60)) * time.Minute),
			Text:      g.pickString(postBlurbs),
			Views:     g.between(20, 2000),
			Tails:     g.between(0, 150),
		}

		x := g.r.Float64()
		switch {
		case x < 0.6:
			p.Extraction = model.ExtractionParsed
			n := g.between(1, 3)
			for j := 0; j < n; j++ {
				p.Parsed = append(p.Parsed, g.parsedBet())
			}
		case x < 0.85:
			// partial: o parser reconheceu algo, mas só sobrou a
			// referência legada por id
			p.Extraction = model.ExtractionPartial
			if len(bets) > 0 {
				for j := 0; j < g.between(1, 2); j++ {
					p.BetIDs = append(p.BetIDs, bets[g.r.Intn(len(bets))].ID)
				}
			}
		default:
			p.Extraction = model.ExtractionUnparsed
			p.Text = g.pickString(unparsedBlurbs)
		}

		if g.chance(0.3) {
			p.Attachments = append(p.Attachments, model.Attachment{
				ID:   fmt.Sprintf("%s_att1", p.ID),
				Type: model.AttachmentImage,
				URL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/450", p.ID),
			})
		} else if g.chance(0.1) {
			p.Attachments = append(p.Attachments, model.Attachment{
				ID:    fmt.Sprintf("%s_att1", p.ID),
				Type:  model.AttachmentLink,
				URL:   "https://example.org/writeup/" + p.ID,
				Title: "Full writeup",
			})
		}

		posts = append(posts, p)
	}
	return posts
}

// parsedBet sintetiza uma aposta extraída. A liga é escolhida junto do
// confronto e carregada como campo estruturado; nada é inferido do texto.
// Plataformas daily fantasy só recebem parlays de player props.
func (g *Generator) parsedBet() model.ParsedBet {
	eventTime := g.gameStart()

	// ~40% dos parsed bets caem nas plataformas DFS
	if g.chance(0.4) {
		league := pickLeague(g.r, propsByLeague)
		m := matchupsByLeague[league][g.r.Intn(len(matchupsByLeague[league]))]
		p1 := g.pickProp(propsByLeague[league])
		p2 := g.pickProp(propsByLeague[league])

		line1 := fmt.Sprintf("%s Over %.1f %s", p1.player, p1.low, p1.stat)
		line2 := fmt.Sprintf("%s Under %.1f %s", p2.player, p2.high, p2.stat)
		event := fmt.Sprintf("%s + %s (%s vs %s)", line1, line2, m.awayCode, m.homeCode)

		pb := model.ParsedBet{
			League:    league,
			Event:     event,
			Market:    "Player Prop Parlay",
			Line:      "2-Pick Power Play",
			Odds:      g.pickInt([]int{-119, -122, 100, 120, 160, 200}),
			Book:      g.dfsBookName(),
			EventTime: eventTime.UTC().Format(time.RFC3339),
			BetType:   model.BetParlay,
		}
		g.maybeLive(&pb, league, eventTime, p1.stat, p1.low)
		return pb
	}

	league := pickLeague(g.r, matchupsByLeague)
	m := matchupsByLeague[league][g.r.Intn(len(matchupsByLeague[league]))]
	event := fmt.Sprintf("%s vs %s (%s vs %s)", m.away, m.home, m.awayCode, m.homeCode)

	pb := model.ParsedBet{
		League:    league,
		Event:     event,
		Odds:      g.pickInt(oddsPool),
		Book:      g.traditionalBookName(),
		EventTime: eventTime.UTC().Format(time.RFC3339),
	}

	switch g.r.Intn(3) {
	case 0:
		pb.Market, pb.BetType = "Moneyline", model.BetMoneyline
		pb.Line = m.away + " ML"
	case 1:
		pb.Market, pb.BetType = "Spread", model.BetSpread
		pb.Line = g.pickString(spreadLines)
	default:
		pb.Market, pb.BetType = "Total", model.BetTotal
		pb.Line = g.pickString(totalLines)
	}

	g.maybeLive(&pb, league, eventTime, "", 0)
	return pb
}

// maybeLive anexa o snapshot ao vivo quando o evento está na janela
func (g *Generator) maybeLive(pb *model.ParsedBet, league model.League, eventTime time.Time, stat string, statLine float64) {
	elapsed := g.now.Sub(eventTime)
	if elapsed < 0 || elapsed > LiveWindow {
		return
	}
	lp := g.liveProgress(league, eventTime, pb.Market, pb.Line)
	if stat != "" {
		lp.KeyStats = map[string]any{stat: g.between(0, int(statLine)+4)}
	}
	pb.LiveProgress = &lp
}

// liveProgress fabrica placar, relógio e percentual compatíveis com a
// liga e com o tempo já decorrido do evento
func (g *Generator) liveProgress(league model.League, start time.Time, market, line string) model.LiveProgress {
	frac := g.now.Sub(start).Seconds() / LiveWindow.Seconds()
	if frac < 0.05 {
		frac = 0.05
	}
	if frac > 0.95 {
		frac = 0.95
	}

	lp := model.LiveProgress{
		ProgressPercentage: float64(int(frac * 100)),
		LastUpdate:         g.now,
	}

	switch league {
	case model.LeagueNBA, model.LeagueNCAAB:
		a := int(frac*100) + g.between(0, 15)
		b := a - g.between(-12, 12)
		lp.CurrentScore = fmt.Sprintf("%d-%d", a, b)
		lp.TimeRemaining = g.clockQuarter(frac, 12)
		if league == model.LeagueNCAAB {
			half := "1st Half"
			if frac > 0.5 {
				half = "2nd Half"
			}
			lp.TimeRemaining = fmt.Sprintf("%s %d:%02d", half, g.between(0, 19), g.between(0, 59))
		}
	case model.LeagueNFL, model.LeagueNCAAF:
		lp.CurrentScore = fmt.Sprintf("%d-%d", g.between(0, 35), g.between(0, 35))
		lp.TimeRemaining = g.clockQuarter(frac, 15)
	case model.LeagueMLB:
		lp.CurrentScore = fmt.Sprintf("%d-%d", g.between(0, 9), g.between(0, 9))
		half := "Top"
		if g.chance(0.5) {
			half = "Bottom"
		}
		lp.TimeRemaining = fmt.Sprintf("%s %s", half, ordinal(1+int(frac*8)))
	case model.LeagueNHL:
		lp.CurrentScore = fmt.Sprintf("%d-%d", g.between(0, 5), g.between(0, 5))
		period := 1 + int(frac*3)
		if period > 3 {
			period = 3
		}
		lp.TimeRemaining = fmt.Sprintf("%s %d:%02d", ordinal(period), g.between(0, 19), g.between(0, 59))
	}

	// props ganham a estatística corrente no snapshot
	if market == "Player Prop" {
		lp.KeyStats = map[string]any{"current": line}
	}

	return lp
}

func (g *Generator) clockQuarter(frac float64, minutes int) string {
	q := 1 + int(frac*4)
	if q > 4 {
		q = 4
	}
	return fmt.Sprintf("Q%d %d:%02d", q, g.between(0, minutes-1), g.between(0, 59))
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func (g *Generator) dfsBookName() string {
	id := g.pickString(dfsBookIDs)
	return bookName(id)
}

func (g *Generator) traditionalBookName() string {
	return bookName(g.pickString(traditionalBookIDs))
}

func bookName(id string) string {
	for _, b := range bookCatalog {
		if b.ID == id {
			return b.Name
		}
	}
	return id
}

func (g *Generator) nextBetID() string {
	g.betSeq++
	return fmt.Sprintf("bet_%04d", g.betSeq)
}

func (g *Generator) nextPostID() string {
	g.postSeq++
	return fmt.Sprintf("post_%04d", g.postSeq)
}

func (g *Generator) pickPartner(partners []model.Partner) string {
	return partners[g.r.Intn(len(partners))].ID
}

func (g *Generator) pickString(xs []string) string { return xs[g.r.Intn(len(xs))] }
func (g *Generator) pickInt(xs []int) int          { return xs[g.r.Intn(len(xs))] }

func (g *Generator) pickProp(xs []propTemplate) propTemplate { return xs[g.r.Intn(len(xs))] }

// pickLeague sorteia uma chave de um mapa por liga de forma determinística
// (itera na ordem fixa de Leagues, nunca na ordem do mapa)
func pickLeague[T any](r *rand.Rand, m map[model.League]T) model.League {
	keys := make([]model.League, 0, len(m))
	for _, l := range model.Leagues() {
		if _, ok := m[l]; ok {
			keys = append(keys, l)
		}
	}
	return keys[r.Intn(len(keys))]
}

// between retorna inteiro uniforme em [lo, hi]
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

func (g *Generator) chance(p float64) bool { return g.r.Float64() < p }
