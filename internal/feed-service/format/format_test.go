package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrettyOdds(t *testing.T) {
	require.Equal(t, "+150", PrettyOdds(150))
	require.Equal(t, "-110", PrettyOdds(-110))
	require.Equal(t, "+5", PrettyOdds(5))
	require.Equal(t, "0", PrettyOdds(0))
}

func TestMoney(t *testing.T) {
	require.Equal(t, "—", Money(nil))

	v := 10.0
	require.Equal(t, "$10.00", Money(&v))

	v = 1234.5
	require.Equal(t, "$1,234.50", Money(&v))

	v = 0
	require.Equal(t, "$0.00", Money(&v))
}

func TestWhen(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"futuro em segundos", now.Add(45 * time.Second), "in 45s"},
		{"passado em segundos", now.Add(-59 * time.Second), "59s ago"},
		{"vira minuto em 60s exatos", now.Add(60 * time.Second), "in 1m"},
		{"minutos", now.Add(-30 * time.Minute), "30m ago"},
		{"teto dos minutos", now.Add(59 * time.Minute), "in 59m"},
		{"vira hora em 60m exatos", now.Add(60 * time.Minute), "in 1h"},
		{"hora e meia arredonda pra baixo", now.Add(-90 * time.Minute), "1h ago"},
		{"teto das horas", now.Add(23 * time.Hour), "in 23h"},
		{"vira dia em 24h exatas", now.Add(24 * time.Hour), "in 1d"},
		{"dias", now.Add(-72 * time.Hour), "3d ago"},
		{"agora conta como 1s", now, "in 1s"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, When(tc.t, now))
		})
	}
}

func TestWhenReadable(t *testing.T) {
	// 2025-03-10 é segunda-feira
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	sameDay := time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC)
	require.Equal(t, "Today at 7:30 PM", WhenReadable(sameDay, now))

	// virada de dia conta mesmo com menos de 24h de distância
	tomorrow := time.Date(2025, 3, 11, 0, 15, 0, 0, time.UTC)
	require.Equal(t, "Tomorrow at 12:15 AM", WhenReadable(tomorrow, now))

	later := time.Date(2025, 3, 13, 15, 5, 0, 0, time.UTC)
	require.Equal(t, "Thursday, Mar 13 at 3:05 PM", WhenReadable(later, now))
}
