package store

import (
	"sync"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
	"github.com/croswell/picks-feed-poc/internal/feed-service/seed"
)

// DataStore segura o snapshot gerado no boot do serviço.
// O dataset é tratado como somente leitura pelos consumidores; o único
// caminho de escrita é ApplyLiveProgress, alimentado pelo pipeline de
// progresso ao vivo.
type DataStore struct {
	mu sync.RWMutex
	ds seed.Dataset

	byBetID map[string]int
}

func NewDataStore(ds seed.Dataset) *DataStore {
	idx := make(map[string]int, len(ds.Bets))
	for i, b := range ds.Bets {
		idx[b.ID] = i
	}
	return &DataStore{ds: ds, byBetID: idx}
}

// Books retorna o catálogo de casas; o chamador não deve mutar o slice
func (s *DataStore) Books() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Books
}

func (s *DataStore) Partners() []model.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Partners
}

// Bets retorna uma cópia do slice de apostas (os elementos embutem
// ponteiro de LiveProgress que pode ser trocado pelo pipeline)
func (s *DataStore) Bets() []model.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Bet, len(s.ds.Bets))
	copy(out, s.ds.Bets)
	return out
}

func (s *DataStore) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Posts
}

// Bet busca uma aposta por id
func (s *DataStore) Bet(id string) (model.Bet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byBetID[id]
	if !ok {
		return model.Bet{}, false
	}
	return s.ds.Bets[i], true
}

// Post busca um post por id
func (s *DataStore) Post(id string) (model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.ds.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

// PostBets resolve as referências legadas por id de um post
func (s *DataStore) PostBets(p model.Post) []model.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Bet
	for _, id := range p.BetIDs {
		if i, ok := s.byBetID[id]; ok {
			out = append(out, s.ds.Bets[i])
		}
	}
	return out
}

// ApplyLiveProgress troca o snapshot de progresso de uma aposta ao vivo.
// Retorna false quando a aposta não existe ou já foi liquidada.
func (s *DataStore) ApplyLiveProgress(betID string, lp model.LiveProgress) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byBetID[betID]
	if !ok {
		return false
	}
	if s.ds.Bets[i].Status.Concluded() {
		return false
	}
	s.ds.Bets[i].LiveProgress = &lp
	return true
}

// FilterStore guarda o filtro ativo do feed: "All" ou o nome de um parceiro
type FilterStore struct {
	mu       sync.RWMutex
	selected string
}

const FilterAll = "All"

func NewFilterStore() *FilterStore {
	return &FilterStore{selected: FilterAll}
}

func (f *FilterStore) Selected() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.selected
}

func (f *FilterStore) SetSelected(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v == "" {
		v = FilterAll
	}
	f.selected = v
}

// UIStore guarda as flags de drawers/sheets abertos e o clube
// selecionado; espelha o estado de UI do app e só muda via setters
type UIStore struct {
	mu           sync.RWMutex
	flags        map[string]bool
	selectedClub string
}

// Flags conhecidas (outras chaves são aceitas e começam fechadas)
const (
	FlagAccountDrawer    = "account_drawer"
	FlagBookDrawer       = "book_drawer"
	FlagClubFilterDrawer = "club_filter_drawer"
	FlagEmojiPicker      = "emoji_picker"
)

func NewUIStore() *UIStore {
	return &UIStore{flags: make(map[string]bool), selectedClub: FilterAll}
}

func (u *UIStore) IsOpen(flag string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.flags[flag]
}

func (u *UIStore) Open(flag string)  { u.set(flag, true) }
func (u *UIStore) Close(flag string) { u.set(flag, false) }

func (u *UIStore) Toggle(flag string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.flags[flag] = !u.flags[flag]
	return u.flags[flag]
}

func (u *UIStore) set(flag string, v bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.flags[flag] = v
}

func (u *UIStore) SelectedClub() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.selectedClub
}

func (u *UIStore) SetSelectedClub(club string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if club == "" {
		club = FilterAll
	}
	u.selectedClub = club
}
