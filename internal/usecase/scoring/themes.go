package scoring

import (
	"fmt"

	"lp-forge/internal/domain"
)

// suppressedRankThreshold — оси с рангом не ниже этого порога явно
// исключаются из промпта.
const suppressedRankThreshold = 6

// dominantDirectives — директивы для оси ранга 1. Таблица полная:
// отсутствие записи для известной оси — ошибка программирования.
var dominantDirectives = map[domain.DimensionKey]string{
	domain.DimensionMinimal:      "minimal design, generous whitespace, simple elements",
	domain.DimensionBold:         "bold design, high contrast, oversized statement typography",
	domain.DimensionWarm:         "warm palette, soft oranges and earth tones, inviting atmosphere",
	domain.DimensionCool:         "cool palette, blues and teals, crisp composed atmosphere",
	domain.DimensionProfessional: "professional corporate look, structured grid, restrained color use",
	domain.DimensionPlayful:      "playful design, rounded shapes, bright friendly accents",
	domain.DimensionLuxury:       "luxury aesthetic, deep tones with gold accents, refined serif typography",
	domain.DimensionNatural:      "natural organic feel, botanical motifs, muted green palette",
	domain.DimensionModern:       "modern tech-forward design, geometric layout, gradient highlights",
	domain.DimensionClassic:      "classic timeless design, symmetric layout, traditional typography",
	domain.DimensionEnergetic:    "energetic design, dynamic diagonals, saturated vivid colors",
	domain.DimensionCalm:         "calm serene design, soft pastels, gentle spacing and rhythm",
}

// accentDirectives — параллельная таблица для оси ранга 2, формулировки
// мягче доминантных.
var accentDirectives = map[domain.DimensionKey]string{
	domain.DimensionMinimal:      "a light minimal touch in secondary sections",
	domain.DimensionBold:         "occasional bold accents on key calls to action",
	domain.DimensionWarm:         "subtle warm undertones in backgrounds",
	domain.DimensionCool:         "cool secondary accents in supporting elements",
	domain.DimensionProfessional: "a professional undertone in copy and spacing",
	domain.DimensionPlayful:      "small playful details in icons and hover states",
	domain.DimensionLuxury:       "discreet premium touches in dividers and details",
	domain.DimensionNatural:      "soft natural textures as secondary background motifs",
	domain.DimensionModern:       "modern secondary flourishes such as subtle gradients",
	domain.DimensionClassic:      "classic secondary details in borders and headings",
	domain.DimensionEnergetic:    "restrained energetic accents in transitions",
	domain.DimensionCalm:         "a calm secondary rhythm in section spacing",
}

// ThemeSelection — категориальные директивы, выведенные из ранжирования.
type ThemeSelection struct {
	Dominant   string
	Accent     string
	Suppressed []domain.DimensionKey
}

// SelectThemes выбирает доминантную и акцентную директивы и список
// подавляемых осей (ранг >= 6). Акцент пустой, если осей меньше двух.
func SelectThemes(ranking []domain.RankEntry) ThemeSelection {
	var selection ThemeSelection
	for _, entry := range ranking {
		switch {
		case entry.Rank == 1:
			selection.Dominant = directiveFor(dominantDirectives, entry.Key)
		case entry.Rank == 2:
			selection.Accent = directiveFor(accentDirectives, entry.Key)
		case entry.Rank >= suppressedRankThreshold:
			selection.Suppressed = append(selection.Suppressed, entry.Key)
		}
	}
	return selection
}

func directiveFor(table map[domain.DimensionKey]string, key domain.DimensionKey) string {
	directive, ok := table[key]
	if !ok {
		panic(fmt.Sprintf("scoring: no directive for dimension %q", key))
	}
	return directive
}
