package menu

import "strings"

// Format renders the parsed week as the printable menu, attaching the
// advertised prices when known.
func Format(week Week, soupPrice, mainPrice string) string {
	var b strings.Builder
	b.WriteString("--- VanderVeg Menu ---\n\n")
	for _, day := range week {
		b.WriteString(day.Name)
		b.WriteByte('\n')
		b.WriteString("Juha: " + day.Soup + priceSuffix(soupPrice))
		b.WriteByte('\n')
		b.WriteString("Glavna jed: " + day.Main + priceSuffix(mainPrice))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func priceSuffix(price string) string {
	if price == "" {
		return ""
	}
	return " (" + price + ")"
}
