package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// PrettyOdds renderiza odds americanas: "+N" pra positivas, o número
// com sinal nativo pra negativas ou zero
func PrettyOdds(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}

// Money formata moeda em en-US; nil vira o placeholder "—"
func Money(n *float64) string {
	if n == nil {
		return "—"
	}
	return usd.Sprintf("$%.2f", *n)
}

// When devolve o tempo relativo grosseiro até/desde t, escolhendo a
// maior unidade cuja magnitude é >= 1, sempre com divisão inteira:
// segundos viram minutos em 60s exatos, minutos viram horas em 60m,
// horas viram dias em 24h. Direção pelo sinal da diferença.
func When(t time.Time, now time.Time) string {
	d := t.Sub(now)
	future := d >= 0
	if !future {
		d = -d
	}

	s := int64(d.Seconds())
	if s < 1 {
		s = 1
	}

	var out string
	switch {
	case s < 60:
		out = fmt.Sprintf("%ds", s)
	case s < 60*60:
		out = fmt.Sprintf("%dm", s/60)
	case s < 24*60*60:
		out = fmt.Sprintf("%dh", s/(60*60))
	default:
		out = fmt.Sprintf("%dd", s/(24*60*60))
	}

	if future {
		return "in " + out
	}
	return out + " ago"
}

// WhenReadable é a variante "legível": compara dias de calendário
// (alinhados à meia-noite), não o tempo decorrido
func WhenReadable(t time.Time, now time.Time) string {
	days := calendarDays(now, t)
	clock := t.Format("3:04 PM")

	switch days {
	case 0:
		return "Today at " + clock
	case 1:
		return "Tomorrow at " + clock
	default:
		return t.Format("Monday, Jan 2") + " at " + clock
	}
}

// calendarDays conta quantas viradas de dia existem entre a e b
func calendarDays(a, b time.Time) int {
	am := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bm := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(bm.Sub(am) / (24 * time.Hour))
}
