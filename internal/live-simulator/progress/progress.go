package progress

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/croswell/picks-feed-poc/internal/live-simulator/feedclient"
	"github.com/croswell/picks-feed-poc/pkg/contracts/events"
)

// Simulator mantém o estado corrente de cada jogo ao vivo e o avança a
// cada tick: placar só cresce, progresso caminha até 100 e o relógio é
// derivado do progresso conforme a liga
type Simulator struct {
	r      *rand.Rand
	source string

	games map[string]*gameState
}

type gameState struct {
	home     int
	away     int
	progress float64
	version  int
}

func NewSimulator(r *rand.Rand, source string) *Simulator {
	return &Simulator{r: r, source: source, games: make(map[string]*gameState)}
}

// Tick avança o estado da aposta e devolve o evento de progresso
func (s *Simulator) Tick(play feedclient.LivePlay, now time.Time) events.LiveProgressUpdate {
	g, ok := s.games[play.ID]
	if !ok {
		// estado inicial coerente com o tempo já decorrido
		elapsed := now.Sub(play.StartTime)
		frac := elapsed.Seconds() / (3 * time.Hour).Seconds()
		if frac < 0.05 {
			frac = 0.05
		}
		if frac > 0.9 {
			frac = 0.9
		}
		g = &gameState{
			home:     s.r.Intn(basketScale(play.League)),
			away:     s.r.Intn(basketScale(play.League)),
			progress: frac * 100,
		}
		s.games[play.ID] = g
	}

	// avanço do tick
	g.progress += 1 + s.r.Float64()*2
	if g.progress > 100 {
		g.progress = 100
	}
	if s.r.Float64() < scoreChance(play.League) {
		if s.r.Intn(2) == 0 {
			g.home += scoreStep(play.League, s.r)
		} else {
			g.away += scoreStep(play.League, s.r)
		}
	}
	g.version++

	upd := events.LiveProgressUpdate{
		BetID:              play.ID,
		League:             play.League,
		CurrentScore:       fmt.Sprintf("%d-%d", g.home, g.away),
		TimeRemaining:      clockFor(play.League, g.progress/100, s.r),
		ProgressPercentage: float64(int(g.progress)),
		UpdatedAt:          now.UTC(),
		Source:             s.source,
		Version:            g.version,
	}

	// props carregam a estatística corrente no tick
	if play.Market == "Player Prop" || play.Market == "Player Prop Parlay" {
		upd.KeyStats = map[string]any{"current": play.Line, "pace": fmt.Sprintf("%.0f%%", g.progress)}
	}

	return upd
}

// Forget descarta o estado de apostas que saíram da janela ao vivo
func (s *Simulator) Forget(activeIDs map[string]bool) {
	for id := range s.games {
		if !activeIDs[id] {
			delete(s.games, id)
		}
	}
}

func basketScale(league string) int {
	switch league {
	case "NBA", "NCAAB":
		return 60
	case "NFL", "NCAAF":
		return 21
	case "MLB":
		return 6
	case "NHL":
		return 4
	default:
		return 10
	}
}

func scoreChance(league string) float64 {
	switch league {
	case "NBA", "NCAAB":
		return 0.9
	case "NFL", "NCAAF":
		return 0.35
	default:
		return 0.2
	}
}

func scoreStep(league string, r *rand.Rand) int {
	switch league {
	case "NBA", "NCAAB":
		return 1 + r.Intn(3)
	case "NFL", "NCAAF":
		return []int{3, 7, 7, 6}[r.Intn(4)]
	default:
		return 1
	}
}

func clockFor(league string, frac float64, r *rand.Rand) string {
	switch league {
	case "NBA":
		return quarterClock(frac, 12, r)
	case "NFL", "NCAAF":
		return quarterClock(frac, 15, r)
	case "NCAAB":
		half := "1st Half"
		if frac > 0.5 {
			half = "2nd Half"
		}
		return fmt.Sprintf("%s %d:%02d", half, r.Intn(20), r.Intn(60))
	case "MLB":
		half := "Top"
		if r.Intn(2) == 0 {
			half = "Bottom"
		}
		return fmt.Sprintf("%s %s", half, ordinal(1+int(frac*8)))
	case "NHL":
		p := 1 + int(frac*3)
		if p > 3 {
			p = 3
		}
		return fmt.Sprintf("%s %d:%02d", ordinal(p), r.Intn(20), r.Intn(60))
	default:
		return fmt.Sprintf("%.0f%%", frac*100)
	}
}

func quarterClock(frac float64, minutes int, r *rand.Rand) string {
	q := 1 + int(frac*4)
	if q > 4 {
		q = 4
	}
	return fmt.Sprintf("Q%d %d:%02d", q, r.Intn(minutes), r.Intn(60))
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
