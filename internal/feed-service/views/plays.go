package views

import (
	"sort"
	"time"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/seed"
)

// PlayBuckets particiona as apostas do usuário pelas abas de My Plays
type PlayBuckets struct {
	Active    []model.Bet `json:"active"`    // agendadas, aguardando início
	Live      []model.Bet `json:"live"`      // em andamento
	Upcoming  []model.Bet `json:"upcoming"`  // começam nas próximas 24h
	Completed []model.Bet `json:"completed"` // won/lost/void
}

// Plays aplica as regras de bucket:
//   - live: status live, ou ativa com início na janela de 0-3h no passado
//   - upcoming: ativa começando nas próximas 24h
//   - active: demais ativas, incluindo as estagnadas (início no passado
//     além da janela ao vivo mas ainda sem liquidação)
//   - completed: liquidadas, mais recente primeiro
//
// Active/Upcoming saem ascendentes por horário; Completed descendente.
func Plays(bets []model.Bet, now time.Time) PlayBuckets {
	var out PlayBuckets

	for _, b := range bets {
		switch {
		case b.Status.Concluded():
			out.Completed = append(out.Completed, b)
		case b.Status == model.StatusLive || inLiveWindow(b.StartTime, now):
			out.Live = append(out.Live, b)
		case b.StartTime.After(now) && b.StartTime.Sub(now) <= 24*time.Hour:
			out.Upcoming = append(out.Upcoming, b)
		default:
			out.Active = append(out.Active, b)
		}
	}

	asc := func(xs []model.Bet) {
		sort.SliceStable(xs, func(i, j int) bool { return xs[i].StartTime.Before(xs[j].StartTime) })
	}
	asc(out.Active)
	asc(out.Live)
	asc(out.Upcoming)
	sort.SliceStable(out.Completed, func(i, j int) bool {
		return out.Completed[i].StartTime.After(out.Completed[j].StartTime)
	})

	return out
}

// inLiveWindow diz se o evento começou há no máximo 3h
func inLiveWindow(start time.Time, now time.Time) bool {
	elapsed := now.Sub(start)
	return elapsed >= 0 && elapsed <= seed.LiveWindow
}

// AtRisk soma os stakes das apostas ativas e ao vivo
func AtRisk(bets []model.Bet) float64 {
	var sum float64
	for _, b := range bets {
		if b.Status == model.StatusActive || b.Status == model.StatusLive {
			sum += b.Stake
		}
	}
	return sum
}
