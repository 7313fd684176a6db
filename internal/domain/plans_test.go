package domain

import "testing"

func TestPlanForType(t *testing.T) {
	tests := []struct {
		name string
		plan PlanType
		want PlanType
	}{
		{name: "free", plan: PlanFree, want: PlanFree},
		{name: "plus", plan: PlanPlus, want: PlanPlus},
		{name: "plus в верхнем регистре", plan: PlanType("PLUS"), want: PlanPlus},
		{name: "неизвестный тариф падает в free", plan: PlanType("enterprise"), want: PlanFree},
		{name: "пустой тариф падает в free", plan: PlanType(""), want: PlanFree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanForType(tt.plan); got.Plan != tt.want {
				t.Fatalf("PlanForType(%q).Plan = %v, want %v", tt.plan, got.Plan, tt.want)
			}
		})
	}
}

func TestPlanLimitsShape(t *testing.T) {
	free := PlanForType(PlanFree)
	if free.DailyGenerations <= 0 {
		t.Fatalf("у free должен быть положительный дневной лимит генераций")
	}
	if free.MaxProjects != 0 {
		t.Fatalf("дневной лимит проектов free живёт вне менеджера квот")
	}
	plus := PlanForType(PlanPlus)
	if plus.DailyGenerations <= free.DailyGenerations {
		t.Fatalf("plus должен давать больше генераций, чем free")
	}
	if plus.MaxProjects <= 0 {
		t.Fatalf("у plus должен быть дневной лимит проектов")
	}
}
