// Package scoring реализует общий вычислитель стилевых предпочтений:
// агрегацию свайпов, нормализацию и выбор тем. Это единственная копия
// этой логики во всех рантаймах продукта.
package scoring

import "lp-forge/internal/domain"

// Aggregate складывает очки лайкнутых карточек в сырой вектор.
// Дизлайки ничего не добавляют. Событие с неизвестным sample_id молча
// пропускается: каталог на клиенте может отставать от серверного.
func Aggregate(events []domain.SwipeEvent, samples []domain.DesignSample) domain.ScoreVector {
	raw := make(domain.ScoreVector, len(domain.DimensionKeys))
	for _, key := range domain.DimensionKeys {
		raw[key] = 0
	}

	byID := make(map[int64]domain.DesignSample, len(samples))
	for _, sample := range samples {
		byID[sample.ID] = sample
	}

	for _, event := range events {
		if !event.Liked {
			continue
		}
		sample, ok := byID[event.SampleID]
		if !ok {
			continue
		}
		for _, key := range domain.DimensionKeys {
			raw[key] += float64(sample.Scores[key])
		}
	}
	return raw
}
