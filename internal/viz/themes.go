package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette for cells and chrome.
type Theme struct {
	Name string
	// Even and Odd colour alive cells by neighbour-count parity.
	Even   lipgloss.Color
	Odd    lipgloss.Color
	Dead   lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

var (
	ThemeEmber = Theme{
		Name:   "ember",
		Even:   lipgloss.Color("#ff2020"),
		Odd:    lipgloss.Color("#ff8800"),
		Dead:   lipgloss.Color("#1a1a1a"),
		Border: lipgloss.Color("#444466"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Accent: lipgloss.Color("#00ccff"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Even:   lipgloss.Color("#00ff00"),
		Odd:    lipgloss.Color("#88ff88"),
		Dead:   lipgloss.Color("#001100"),
		Border: lipgloss.Color("#005500"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Even:   lipgloss.Color("#ffffff"),
		Odd:    lipgloss.Color("#cccccc"),
		Dead:   lipgloss.Color("#000000"),
		Border: lipgloss.Color("#888888"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Even:   lipgloss.Color("#0077be"),
		Odd:    lipgloss.Color("#00a8cc"),
		Dead:   lipgloss.Color("#001a33"),
		Border: lipgloss.Color("#4488aa"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Even:   lipgloss.Color("#ff00ff"),
		Odd:    lipgloss.Color("#00ffff"),
		Dead:   lipgloss.Color("#0a0a0a"),
		Border: lipgloss.Color("#444466"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
	}

	CurrentTheme = ThemeEmber

	Themes = []Theme{
		ThemeEmber,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeCyberpunk,
	}
)

// GetTheme returns a theme by name, falling back to ember.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme advances CurrentTheme and returns it.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
