package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"lp-forge/internal/domain"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	samples, err := Load("")
	if err != nil {
		t.Fatalf("встроенный каталог обязан проходить валидацию: %v", err)
	}
	if len(samples) != 12 {
		t.Fatalf("ожидали 12 карточек, получили %d", len(samples))
	}
	for _, sample := range samples {
		for _, key := range domain.DimensionKeys {
			if _, ok := sample.Scores[key]; !ok {
				t.Fatalf("карточка %d не содержит ось %s", sample.ID, key)
			}
		}
	}
}

func TestLoadRejectsMissingDimension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	broken := `[{"id": 1, "title": "x", "scores": {"minimal": 5}}]`
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("подготовка файла: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("каталог с неполными осями должен отклоняться")
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	samples, err := Load("")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	seen := make(map[int64]bool)
	for _, sample := range samples {
		if seen[sample.ID] {
			t.Fatalf("id %d встречается дважды", sample.ID)
		}
		seen[sample.ID] = true
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("отсутствующий файл должен возвращать ошибку")
	}
}
