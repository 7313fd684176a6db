package scoring

import (
	"testing"

	"lp-forge/internal/domain"
)

func TestSelectThemes(t *testing.T) {
	values := map[domain.DimensionKey]float64{
		domain.DimensionMinimal:      20,
		domain.DimensionProfessional: 15,
		domain.DimensionModern:       12,
		domain.DimensionBold:         10,
		domain.DimensionCalm:         8,
	}
	result := Normalize(rawVector(values))
	selection := SelectThemes(result.Ranking)

	if selection.Dominant != dominantDirectives[domain.DimensionMinimal] {
		t.Fatalf("ожидали доминантную директиву minimal, получили %q", selection.Dominant)
	}
	if selection.Accent != accentDirectives[domain.DimensionProfessional] {
		t.Fatalf("ожидали акцентную директиву professional, получили %q", selection.Accent)
	}
	if len(selection.Suppressed) != len(domain.DimensionKeys)-suppressedRankThreshold+1 {
		t.Fatalf("ожидали %d подавленных осей, получили %d", len(domain.DimensionKeys)-suppressedRankThreshold+1, len(selection.Suppressed))
	}
	for _, key := range selection.Suppressed {
		switch key {
		case domain.DimensionMinimal, domain.DimensionProfessional, domain.DimensionModern, domain.DimensionBold, domain.DimensionCalm:
			t.Fatalf("ось %s с высоким рангом не должна подавляться", key)
		}
	}
}

func TestSelectThemesAccentEmptyWithSingleDimension(t *testing.T) {
	ranking := []domain.RankEntry{{Key: domain.DimensionLuxury, Raw: 5, Rank: 1}}
	selection := SelectThemes(ranking)
	if selection.Dominant == "" {
		t.Fatalf("доминанта обязана присутствовать")
	}
	if selection.Accent != "" {
		t.Fatalf("при единственной оси акцент должен быть пустым")
	}
}

func TestDirectiveTablesCoverAllDimensions(t *testing.T) {
	for _, key := range domain.DimensionKeys {
		if _, ok := dominantDirectives[key]; !ok {
			t.Fatalf("нет доминантной директивы для %s", key)
		}
		if _, ok := accentDirectives[key]; !ok {
			t.Fatalf("нет акцентной директивы для %s", key)
		}
	}
}

func TestDirectiveForUnknownKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("неизвестная ось — ошибка программирования, ожидали панику")
		}
	}()
	directiveFor(dominantDirectives, domain.DimensionKey("vaporwave"))
}
