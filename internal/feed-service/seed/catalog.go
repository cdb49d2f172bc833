package seed

import "github.com/croswell/picks-feed-poc/internal/feed-service/model"

// Catálogo fixo de casas de apostas
// pp/ud/sl são plataformas de daily fantasy (só aceitam player props/parlays)
var bookCatalog = []model.Book{
	{ID: "dk", Name: "DraftKings", Logo: "https://cdn.opticodds.com/sportsbook-logos/draftkings.jpg"},
	{ID: "fd", Name: "FanDuel", Logo: "https://cdn.opticodds.com/sportsbook-logos/fanduel.jpg"},
	{ID: "mgm", Name: "BetMGM", Logo: "https://cdn.opticodds.com/sportsbook-logos/betmgm.jpg"},
	{ID: "pp", Name: "PrizePicks", Logo: "https://dummyimage.com/80x80/8B5CF6/fff&text=PP"},
	{ID: "ud", Name: "Underdog", Logo: "https://dummyimage.com/80x80/F59E0B/fff&text=UD"},
	{ID: "sl", Name: "Sleeper", Logo: "https://dummyimage.com/80x80/10B981/fff&text=SL"},
}

// Casas tradicionais, elegíveis para moneyline/spread/total
var traditionalBookIDs = []string{"dk", "fd", "mgm"}

// Plataformas daily fantasy, restritas a player props e parlays
var dfsBookIDs = []string{"pp", "ud", "sl"}

var partnerNames = []string{
	"SharpEdge Sports",
	"MoneyLine Mike",
	"The Prop Father",
	"Vegas Vanessa",
	"Underdog Capital",
	"Fade The Public",
}

type matchup struct {
	home     string
	away     string
	homeCode string
	awayCode string
}

// Confrontos plausíveis por liga, com códigos de time usados no
// sufixo "(AAA vs BBB)" dos eventos extraídos
var matchupsByLeague = map[model.League][]matchup{
	model.LeagueNFL: {
		{"Chiefs", "Bills", "KC", "BUF"},
		{"Eagles", "Cowboys", "PHI", "DAL"},
		{"49ers", "Seahawks", "SF", "SEA"},
	},
	model.LeagueNBA: {
		{"Celtics", "Bucks", "BOS", "MIL"},
		{"Lakers", "Warriors", "LAL", "GSW"},
		{"Nuggets", "Suns", "DEN", "PHX"},
	},
	model.LeagueMLB: {
		{"Braves", "Rays", "ATL", "TB"},
		{"Dodgers", "Padres", "LAD", "SD"},
		{"Yankees", "Orioles", "NYY", "BAL"},
	},
	model.LeagueNHL: {
		{"Maple Leafs", "Bruins", "TOR", "BOS"},
		{"Avalanche", "Golden Knights", "COL", "VGK"},
	},
	model.LeagueNCAAF: {
		{"Georgia", "Alabama", "UGA", "ALA"},
		{"Michigan", "Ohio State", "MICH", "OSU"},
	},
	model.LeagueNCAAB: {
		{"Duke", "North Carolina", "DUKE", "UNC"},
		{"Kansas", "Gonzaga", "KU", "GONZ"},
	},
}

type propTemplate struct {
	player string
	stat   string
	low    float64
	high   float64
}

// Templates de player props por liga (jogador, estatística e faixa da linha)
var propsByLeague = map[model.League][]propTemplate{
	model.LeagueNBA: {
		{"LeBron James", "Points", 22.5, 28.5},
		{"Jayson Tatum", "Rebounds", 7.5, 9.5},
		{"Giannis Antetokounmpo", "Assists", 4.5, 6.5},
		{"Stephen Curry", "Threes", 3.5, 5.5},
	},
	model.LeagueNFL: {
		{"Patrick Mahomes", "Passing Yards", 265.5, 295.5},
		{"Tyreek Hill", "Receptions", 5.5, 7.5},
		{"Josh Allen", "Passing TDs", 1.5, 2.5},
		{"Christian McCaffrey", "Rushing Yards", 75.5, 95.5},
	},
	model.LeagueMLB: {
		{"Aaron Judge", "Home Runs", 0.5, 0.5},
		{"Gerrit Cole", "Strikeouts", 6.5, 8.5},
		{"Mookie Betts", "Total Bases", 1.5, 2.5},
	},
	model.LeagueNHL: {
		{"Connor McDavid", "Shots on Goal", 3.5, 4.5},
		{"Auston Matthews", "Goals", 0.5, 0.5},
	},
}

// Mercados clássicos cruzados com os confrontos curados
var coreMarkets = []string{"Moneyline", "Spread", "Total"}

// Odds americanas plausíveis (nunca zero)
var oddsPool = []int{-135, -120, -115, -110, -105, 100, 105, 120, 145, 160, 200}

var spreadLines = []string{"+3.5", "-2.5", "+6.5", "-7.5", "+1.5"}
var totalLines = []string{"O 224.5", "U 218.5", "O 48.5", "U 41.5", "O 8.5"}

var postBlurbs = []string{
	"Hammering this one before the line moves.",
	"Best number on the board right now.",
	"Lock of the day, tail at your own risk.",
	"Books are begging you to take the other side.",
	"Model loves this spot, fire away.",
	"Been on this since open, still playable.",
}

var unparsedBlurbs = []string{
	"Huge slate tonight, full card dropping in the club soon.",
	"What a sweat that was. On to the next one.",
	"Recap thread: 4-1 yesterday, keep riding.",
}
