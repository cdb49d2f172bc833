package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/seed"
)

func testDataset() seed.Dataset {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return seed.Dataset{
		Books:    []model.Book{{ID: "dk", Name: "DraftKings"}},
		Partners: []model.Partner{{ID: "pt_01", Name: "Sharp Sid"}},
		Bets: []model.Bet{
			{ID: "bet_0001", Status: model.StatusLive, StartTime: now.Add(-time.Hour), Odds: -110},
			{ID: "bet_0002", Status: model.StatusActive, StartTime: now.Add(time.Hour), Odds: 120},
			{ID: "bet_0003", Status: model.StatusWon, StartTime: now.Add(-30 * time.Hour), Odds: 150},
		},
		Posts: []model.Post{
			{ID: "post_0001", PartnerID: "pt_01", BetIDs: []string{"bet_0001", "bet_0003", "bet_miss"}},
		},
	}
}

func TestDataStoreLookups(t *testing.T) {
	s := NewDataStore(testDataset())

	b, ok := s.Bet("bet_0002")
	require.True(t, ok)
	require.Equal(t, 120, b.Odds)

	_, ok = s.Bet("nope")
	require.False(t, ok)

	p, ok := s.Post("post_0001")
	require.True(t, ok)

	// referências quebradas são ignoradas silenciosamente
	bets := s.PostBets(p)
	require.Len(t, bets, 2)
	require.Equal(t, "bet_0001", bets[0].ID)
	require.Equal(t, "bet_0003", bets[1].ID)
}

func TestBetsReturnsCopy(t *testing.T) {
	s := NewDataStore(testDataset())

	out := s.Bets()
	out[0].Odds = 999

	b, _ := s.Bet("bet_0001")
	require.Equal(t, -110, b.Odds)
}

func TestApplyLiveProgress(t *testing.T) {
	s := NewDataStore(testDataset())

	lp := model.LiveProgress{CurrentScore: "24-18", TimeRemaining: "Q3 8:45", ProgressPercentage: 62}
	require.True(t, s.ApplyLiveProgress("bet_0001", lp))

	b, _ := s.Bet("bet_0001")
	require.NotNil(t, b.LiveProgress)
	require.Equal(t, "24-18", b.LiveProgress.CurrentScore)

	// aposta desconhecida
	require.False(t, s.ApplyLiveProgress("nope", lp))

	// aposta liquidada não recebe mais ticks
	require.False(t, s.ApplyLiveProgress("bet_0003", lp))
	b, _ = s.Bet("bet_0003")
	require.Nil(t, b.LiveProgress)
}

func TestFilterStore(t *testing.T) {
	f := NewFilterStore()
	require.Equal(t, FilterAll, f.Selected())

	f.SetSelected("Sharp Sid")
	require.Equal(t, "Sharp Sid", f.Selected())

	// vazio volta pro default
	f.SetSelected("")
	require.Equal(t, FilterAll, f.Selected())
}

func TestUIStore(t *testing.T) {
	u := NewUIStore()

	require.False(t, u.IsOpen(FlagAccountDrawer))

	u.Open(FlagAccountDrawer)
	require.True(t, u.IsOpen(FlagAccountDrawer))

	u.Close(FlagAccountDrawer)
	require.False(t, u.IsOpen(FlagAccountDrawer))

	require.True(t, u.Toggle(FlagEmojiPicker))
	require.False(t, u.Toggle(FlagEmojiPicker))

	require.Equal(t, FilterAll, u.SelectedClub())
	u.SetSelectedClub("Degens Anonymous")
	require.Equal(t, "Degens Anonymous", u.SelectedClub())
	u.SetSelectedClub("")
	require.Equal(t, FilterAll, u.SelectedClub())
}
