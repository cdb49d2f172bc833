package views

// GroupBy agrupa itens pela chave extraída, preservando a ordem de
// chegada dentro de cada grupo. Entrada vazia produz mapa vazio.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		out[k] = append(out[k], it)
	}
	return out
}
