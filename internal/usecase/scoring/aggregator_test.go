package scoring

import (
	"testing"

	"lp-forge/internal/domain"
)

func sampleWith(id int64, scores map[domain.DimensionKey]int) domain.DesignSample {
	full := make(map[domain.DimensionKey]int, len(domain.DimensionKeys))
	for _, key := range domain.DimensionKeys {
		full[key] = scores[key]
	}
	return domain.DesignSample{ID: id, Scores: full}
}

func TestAggregateEmptyEvents(t *testing.T) {
	raw := Aggregate(nil, []domain.DesignSample{sampleWith(1, map[domain.DimensionKey]int{domain.DimensionBold: 7})})
	for _, key := range domain.DimensionKeys {
		if raw[key] != 0 {
			t.Fatalf("пустой список событий должен давать нулевой вектор, %s = %v", key, raw[key])
		}
	}
}

func TestAggregateDislikedContributeNothing(t *testing.T) {
	samples := []domain.DesignSample{sampleWith(1, map[domain.DimensionKey]int{domain.DimensionWarm: 9})}
	events := []domain.SwipeEvent{{SampleID: 1, Liked: false}}
	raw := Aggregate(events, samples)
	if raw[domain.DimensionWarm] != 0 {
		t.Fatalf("дизлайк не должен добавлять очков, получили %v", raw[domain.DimensionWarm])
	}
}

func TestAggregateSumsLikedSamples(t *testing.T) {
	samples := []domain.DesignSample{
		sampleWith(1, map[domain.DimensionKey]int{domain.DimensionMinimal: 8, domain.DimensionCalm: 3}),
		sampleWith(2, map[domain.DimensionKey]int{domain.DimensionMinimal: 5, domain.DimensionCalm: 2}),
	}
	events := []domain.SwipeEvent{
		{SampleID: 1, Liked: true},
		{SampleID: 2, Liked: true},
	}
	raw := Aggregate(events, samples)
	if raw[domain.DimensionMinimal] != 13 {
		t.Fatalf("ожидали 13 по minimal, получили %v", raw[domain.DimensionMinimal])
	}
	if raw[domain.DimensionCalm] != 5 {
		t.Fatalf("ожидали 5 по calm, получили %v", raw[domain.DimensionCalm])
	}
}

func TestAggregateSkipsUnknownSampleID(t *testing.T) {
	samples := []domain.DesignSample{sampleWith(1, map[domain.DimensionKey]int{domain.DimensionBold: 4})}
	events := []domain.SwipeEvent{
		{SampleID: 1, Liked: true},
		{SampleID: 999, Liked: true},
	}
	raw := Aggregate(events, samples)
	if raw[domain.DimensionBold] != 4 {
		t.Fatalf("неизвестный sample_id должен молча пропускаться, получили %v", raw[domain.DimensionBold])
	}
}
