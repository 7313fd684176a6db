package domain

import "strings"

// PlanType описывает тариф пользователя.
type PlanType string

const (
	PlanFree PlanType = "free"
	PlanPlus PlanType = "plus"
)

// UnlimitedLimit — сентинел безлимитного тарифа в снапшоте использования.
const UnlimitedLimit = -1

// PlanLimits описывает ограничения тарифа.
type PlanLimits struct {
	Plan             PlanType
	Name             string
	DailyGenerations int
	// MaxProjects ограничивает число новых проектов за окно. Действует
	// только для plus: лимит free считается по общему числу сохранённых
	// проектов и живёт на стороне хранилища проектов.
	MaxProjects int
}

var plans = map[PlanType]PlanLimits{
	PlanFree: {
		Plan:             PlanFree,
		Name:             "Free",
		DailyGenerations: 3,
	},
	PlanPlus: {
		Plan:             PlanPlus,
		Name:             "Plus",
		DailyGenerations: 30,
		MaxProjects:      10,
	},
}

// PlanForType возвращает лимиты тарифа. Неизвестный тариф трактуется как free.
func PlanForType(plan PlanType) PlanLimits {
	if limits, ok := plans[PlanType(strings.ToLower(string(plan)))]; ok {
		return limits
	}
	return plans[PlanFree]
}

// Limits возвращает лимиты тарифа пользователя.
func (p Profile) Limits() PlanLimits {
	return PlanForType(p.Plan)
}
