package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGroupsDays(t *testing.T) {
	cleaned := strings.Join([]string{
		"VanderVeg",
		"Ponedeljek, 2.6.",
		"Korenčkova juha 1,9",
		"Zelenjavski curry",
		"z rižem 6,11",
		"Torek, 3.6.",
		"Paradižnikova juha 1",
		"Polnjene paprike 1,3,7",
		"ALERGENI: 1 gluten, 3 jajca",
	}, "\n")

	week := Parse(cleaned)
	require.Len(t, week, 2)

	require.Equal(t, "Ponedeljek, 2. 6.", week[0].Name)
	require.Equal(t, "Korenčkova juha", week[0].Soup)
	require.Equal(t, "Zelenjavski curry z rižem", week[0].Main)

	require.Equal(t, "Torek, 3. 6.", week[1].Name)
	require.Equal(t, "Paradižnikova juha", week[1].Soup)
	require.Equal(t, "Polnjene paprike", week[1].Main)
}

func TestParseHandlesCaronDayNames(t *testing.T) {
	week := Parse("Četrtek, 5.6.\nGobova juha 1\nRižota 7")
	require.Len(t, week, 1)
	require.Equal(t, "Četrtek, 5. 6.", week[0].Name)
}

func TestParseIgnoresLinesBeforeFirstHeader(t *testing.T) {
	week := Parse("Tedenski meni\nSreda, 4.6.\nBučkina juha 1")
	require.Len(t, week, 1)
	require.Equal(t, "Bučkina juha", week[0].Soup)
	require.Empty(t, week[0].Main)
}

func TestParseSkipsNameMisreads(t *testing.T) {
	week := Parse("uanderueg\nPetek, 6.6.\nJuha dneva 1\nvanderueg\nTofu v omaki 6")
	require.Len(t, week, 1)
	require.Equal(t, "Juha dneva", week[0].Soup)
	require.Equal(t, "Tofu v omaki", week[0].Main)
}

func TestParseNoHeadersYieldsEmptyWeek(t *testing.T) {
	require.Empty(t, Parse("Soup 2.50\nBread"))
	require.Empty(t, Parse(""))
}
