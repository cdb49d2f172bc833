package seed

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
)

func makeDataset(seed int64) Dataset {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return New(rand.New(rand.NewSource(seed)), now).Make()
}

func TestMakeIsDeterministic(t *testing.T) {
	a := makeDataset(42)
	b := makeDataset(42)
	require.True(t, reflect.DeepEqual(a, b))

	c := makeDataset(7)
	require.False(t, reflect.DeepEqual(a.Bets, c.Bets))
}

func TestMakeCollections(t *testing.T) {
	ds := makeDataset(1)

	require.Len(t, ds.Books, 6)
	require.Len(t, ds.Partners, 6)
	require.NotEmpty(t, ds.Bets)
	require.Len(t, ds.Posts, 28)
}

func TestBetsSatisfyInvariants(t *testing.T) {
	ds := makeDataset(1)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	bookIDs := make(map[string]bool)
	for _, b := range ds.Books {
		bookIDs[b.ID] = true
	}
	partnerIDs := make(map[string]bool)
	for _, p := range ds.Partners {
		partnerIDs[p.ID] = true
	}

	seen := make(map[string]bool)
	for _, b := range ds.Bets {
		require.NoError(t, b.Validate())
		require.False(t, seen[b.ID], "duplicate bet id %s", b.ID)
		seen[b.ID] = true

		require.True(t, bookIDs[b.BookID], "bet %s references unknown book %s", b.ID, b.BookID)
		require.True(t, partnerIDs[b.PartnerID], "bet %s references unknown partner %s", b.ID, b.PartnerID)

		elapsed := now.Sub(b.StartTime)
		switch {
		case elapsed < 0:
			require.Equal(t, model.StatusActive, b.Status)
			require.Equal(t, model.GameScheduled, b.GameState)
			require.Nil(t, b.LiveProgress)
		case elapsed <= LiveWindow:
			require.Equal(t, model.StatusLive, b.Status)
			require.Equal(t, model.GameInProgress, b.GameState)
			require.NotNil(t, b.LiveProgress)
			require.GreaterOrEqual(t, b.LiveProgress.ProgressPercentage, 0.0)
			require.LessOrEqual(t, b.LiveProgress.ProgressPercentage, 100.0)
		default:
			require.Equal(t, model.GameFinal, b.GameState)
			require.True(t, b.Status.Concluded())
		}
	}
}

func TestDFSBetsOnlyCarryPropMarkets(t *testing.T) {
	ds := makeDataset(3)

	dfs := make(map[string]bool)
	for _, id := range dfsBookIDs {
		dfs[id] = true
	}

	for _, b := range ds.Bets {
		if !dfs[b.BookID] {
			continue
		}
		require.Contains(t, []string{"Player Prop", "Parlay"}, b.Market,
			"bet %s on DFS book %s has market %s", b.ID, b.BookID, b.Market)
	}
}

func TestPostsSatisfyInvariants(t *testing.T) {
	ds := makeDataset(5)

	betIDs := make(map[string]bool)
	for _, b := range ds.Bets {
		betIDs[b.ID] = true
	}

	for _, p := range ds.Posts {
		require.NoError(t, p.Validate())

		for _, id := range p.BetIDs {
			require.True(t, betIDs[id], "post %s references unknown bet %s", p.ID, id)
		}

		for _, pb := range p.Parsed {
			require.NotZero(t, pb.Odds)
			require.NotEmpty(t, pb.Event)
			require.NotEmpty(t, pb.Book)
			_, err := time.Parse(time.RFC3339, pb.EventTime)
			require.NoError(t, err, "post %s parsed bet has bad eventTime %q", p.ID, pb.EventTime)

			// plataformas DFS só recebem parlays de props
			switch pb.Book {
			case "PrizePicks", "Underdog", "Sleeper":
				require.Equal(t, "Player Prop Parlay", pb.Market)
				require.Equal(t, model.BetParlay, pb.BetType)
			}
		}
	}
}

func TestPostExtractionSplit(t *testing.T) {
	counts := map[model.Extraction]int{}
	for seed := int64(1); seed <= 10; seed++ {
		for _, p := range makeDataset(seed).Posts {
			counts[p.Extraction]++
		}
	}
	// o split é ponderado (60/25/15): no agregado todas as classes
	// aparecem e parsed domina
	require.Greater(t, counts[model.ExtractionParsed], 0)
	require.Greater(t, counts[model.ExtractionPartial], 0)
	require.Greater(t, counts[model.ExtractionUnparsed], 0)
	require.Greater(t, counts[model.ExtractionParsed], counts[model.ExtractionUnparsed])
}
