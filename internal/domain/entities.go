package domain

import "time"

// DimensionKey — одна из 12 фиксированных осей стиля.
type DimensionKey string

// Фиксированный порядок осей. Этот порядок определяет разрешение ничьих
// при ранжировании, поэтому менять его нельзя без пересчёта golden-векторов.
var DimensionKeys = []DimensionKey{
	DimensionMinimal,
	DimensionBold,
	DimensionWarm,
	DimensionCool,
	DimensionProfessional,
	DimensionPlayful,
	DimensionLuxury,
	DimensionNatural,
	DimensionModern,
	DimensionClassic,
	DimensionEnergetic,
	DimensionCalm,
}

const (
	DimensionMinimal      DimensionKey = "minimal"
	DimensionBold         DimensionKey = "bold"
	DimensionWarm         DimensionKey = "warm"
	DimensionCool         DimensionKey = "cool"
	DimensionProfessional DimensionKey = "professional"
	DimensionPlayful      DimensionKey = "playful"
	DimensionLuxury       DimensionKey = "luxury"
	DimensionNatural      DimensionKey = "natural"
	DimensionModern       DimensionKey = "modern"
	DimensionClassic      DimensionKey = "classic"
	DimensionEnergetic    DimensionKey = "energetic"
	DimensionCalm         DimensionKey = "calm"
)

// DesignSample описывает карточку дизайна из каталога свайпов.
// Записи каталога неизменяемы и загружаются один раз при старте.
type DesignSample struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Hint        string               `json:"hint"`
	ImagePath   string               `json:"image_path"`
	Scores      map[DimensionKey]int `json:"scores"`
}

// SwipeEvent — одно действие пользователя на карточке каталога.
type SwipeEvent struct {
	SampleID int64 `json:"sample_id"`
	Liked    bool  `json:"liked"`
}

// ScoreVector отображает оси стиля в неотрицательные значения.
// Сырой вектор — сумма очков лайкнутых карточек, нормализованный — 0..100.
type ScoreVector map[DimensionKey]float64

// RankEntry — позиция оси в убывающем ранжировании сырого вектора.
type RankEntry struct {
	Key  DimensionKey `json:"key"`
	Raw  float64      `json:"raw"`
	Rank int          `json:"rank"`
}

// PurposeType — цель лендинга, выбирает один из пяти блоков промпта.
type PurposeType string

const (
	PurposeProduct PurposeType = "product"
	PurposeBrand   PurposeType = "brand"
	PurposeService PurposeType = "service"
	PurposeLead    PurposeType = "lead"
	PurposeEvent   PurposeType = "event"
)

// Valid сообщает, известна ли цель.
func (p PurposeType) Valid() bool {
	switch p {
	case PurposeProduct, PurposeBrand, PurposeService, PurposeLead, PurposeEvent:
		return true
	}
	return false
}

// Language — язык генерируемой страницы.
type Language string

const (
	LanguageJA Language = "ja"
	LanguageEN Language = "en"
)

// Valid сообщает, поддерживается ли язык.
func (l Language) Valid() bool {
	return l == LanguageJA || l == LanguageEN
}

// ProjectRequest — пользовательский ввод одной генерации.
type ProjectRequest struct {
	ServiceName  string      `json:"service_name"`
	Description  string      `json:"description"`
	Purpose      PurposeType `json:"purpose"`
	Language     Language    `json:"language"`
	CTAText      string      `json:"cta_text,omitempty"`
	RedirectURL  string      `json:"redirect_url,omitempty"`
	Achievements string      `json:"achievements,omitempty"`
	CustomHead   string      `json:"custom_head,omitempty"`
	CustomBody   string      `json:"custom_body,omitempty"`
}

// ProfileSnapshot — биографические поля профиля, читаемые при генерации.
// Все поля опциональны и по умолчанию пустые.
type ProfileSnapshot struct {
	CompanyName          string `json:"company_name"`
	CompanyAchievements  string `json:"company_achievements"`
	ContactInfo          string `json:"contact_info"`
	PersonalName         string `json:"personal_name"`
	PersonalBio          string `json:"personal_bio"`
	PersonalAchievements string `json:"personal_achievements"`
}

// Profile — запись пользователя с тарифом и дневными счётчиками.
type Profile struct {
	UserID               int64
	Plan                 PlanType
	IsAdmin              bool
	Snapshot             ProfileSnapshot
	DailyGenerationCount int
	DailyProjectCount    int
	ResetAt              *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// UsageSnapshot возвращается вызывающей стороне вместе с артефактом.
type UsageSnapshot struct {
	Current   int  `json:"current"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	IsAdmin   bool `json:"is_admin"`
}

// GeneratedArtifact — результат успешной генерации.
type GeneratedArtifact struct {
	HTML  string        `json:"html"`
	Usage UsageSnapshot `json:"usage"`
}

// Project — сохранённый лендинг пользователя.
type Project struct {
	ID          int64
	PublicID    string
	UserID      int64
	ServiceName string
	Purpose     PurposeType
	Language    Language
	HTML        string
	CreatedAt   time.Time
}

// AuditRecord — запись журнала попыток генерации.
// Пишется и на успехе, и на ошибке внешнего вызова.
type AuditRecord struct {
	ID           string
	UserID       int64
	Success      bool
	ErrorMessage string
	Plan         PlanType
	CreatedAt    time.Time
}
