package scoring

import (
	"math"
	"sort"

	"lp-forge/internal/domain"
)

// NormalizedScores — результат нормализации сырого вектора.
type NormalizedScores struct {
	Normalized domain.ScoreVector `json:"normalized"`
	Ranking    []domain.RankEntry `json:"ranking"`
	Dominant   domain.DimensionKey `json:"dominant"`
}

// Normalize пересчитывает сырой вектор в диапазон 0..100 (min-max, один
// знак после запятой) и строит убывающее ранжирование по сырым значениям.
// Когда все значения равны (включая нулевой вектор), каждая ось получает
// ровно 50.0. Ничьи разрешаются порядком осей в domain.DimensionKeys.
func Normalize(raw domain.ScoreVector) NormalizedScores {
	result := NormalizedScores{
		Normalized: make(domain.ScoreVector, len(domain.DimensionKeys)),
	}
	if len(domain.DimensionKeys) == 0 {
		return result
	}

	min := raw[domain.DimensionKeys[0]]
	max := min
	for _, key := range domain.DimensionKeys {
		v := raw[key]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		for _, key := range domain.DimensionKeys {
			result.Normalized[key] = 50.0
		}
	} else {
		span := max - min
		for _, key := range domain.DimensionKeys {
			scaled := (raw[key] - min) / span * 100
			result.Normalized[key] = math.Round(scaled*10) / 10
		}
	}

	ranking := make([]domain.RankEntry, 0, len(domain.DimensionKeys))
	for _, key := range domain.DimensionKeys {
		ranking = append(ranking, domain.RankEntry{Key: key, Raw: raw[key]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Raw > ranking[j].Raw })
	for idx := range ranking {
		ranking[idx].Rank = idx + 1
	}

	result.Ranking = ranking
	result.Dominant = ranking[0].Key
	return result
}
