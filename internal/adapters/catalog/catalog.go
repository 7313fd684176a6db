// Package catalog загружает каталог карточек дизайна. Каталог читается
// один раз при старте и дальше используется только на чтение, поэтому
// безопасен для конкурентного доступа без синхронизации.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"lp-forge/internal/domain"
)

//go:embed samples.json
var embeddedSamples []byte

// Load возвращает каталог карточек. Непустой path переопределяет
// встроенный каталог; файл обязан проходить ту же валидацию.
func Load(path string) ([]domain.DesignSample, error) {
	data := embeddedSamples
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("чтение каталога %s: %w", path, err)
		}
	}

	var samples []domain.DesignSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("разбор каталога: %w", err)
	}
	if err := validate(samples); err != nil {
		return nil, fmt.Errorf("валидация каталога: %w", err)
	}
	return samples, nil
}

func validate(samples []domain.DesignSample) error {
	if len(samples) == 0 {
		return fmt.Errorf("каталог пуст")
	}
	seen := make(map[int64]bool, len(samples))
	for _, sample := range samples {
		if seen[sample.ID] {
			return fmt.Errorf("дубликат id %d", sample.ID)
		}
		seen[sample.ID] = true
		if len(sample.Scores) != len(domain.DimensionKeys) {
			return fmt.Errorf("карточка %d: ожидали %d осей, получили %d", sample.ID, len(domain.DimensionKeys), len(sample.Scores))
		}
		for _, key := range domain.DimensionKeys {
			score, ok := sample.Scores[key]
			if !ok {
				return fmt.Errorf("карточка %d: нет оси %s", sample.ID, key)
			}
			if score < 0 || score > 10 {
				return fmt.Errorf("карточка %d: ось %s вне диапазона 0..10: %d", sample.ID, key, score)
			}
		}
	}
	return nil
}
