package views

import (
	"strconv"

	"github.com/croswell/picks-feed-poc/internal/feed-service/model"
)

// HomeFeed filtra os posts do feed principal.
//
// Com filtro "All": só posts de parceiros assinados; se o usuário não
// assina ninguém, cai pro feed completo (nunca retorna vazio por falta
// de assinatura). Com um parceiro selecionado pelo nome: só os posts
// dele; nome desconhecido também cai pro feed completo.
func HomeFeed(posts []model.Post, partners []model.Partner, selected string) []model.Post {
	if selected == "" || selected == "All" {
		subscribed := make(map[string]bool)
		for _, p := range partners {
			if p.IsSubscribed {
				subscribed[p.ID] = true
			}
		}
		if len(subscribed) == 0 {
			return posts
		}
		var out []model.Post
		for _, p := range posts {
			if subscribed[p.PartnerID] {
				out = append(out, p)
			}
		}
		return out
	}

	var partnerID string
	for _, p := range partners {
		if p.Name == selected {
			partnerID = p.ID
			break
		}
	}
	if partnerID == "" {
		return posts
	}

	var out []model.Post
	for _, p := range posts {
		if p.PartnerID == partnerID {
			out = append(out, p)
		}
	}
	return out
}

// CTALabel é o rótulo do call-to-action de um post, em função de
// quantas apostas legadas ele referencia
func CTALabel(p model.Post) string {
	switch n := len(p.BetIDs); {
	case n >= 2:
		return "Bet " + strconv.Itoa(n) + " Picks (mock)"
	case n == 1:
		return "Bet Now (mock)"
	default:
		return "View Play"
	}
}
