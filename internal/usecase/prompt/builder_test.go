package prompt

import (
	"strings"
	"testing"

	"lp-forge/internal/domain"
	"lp-forge/internal/usecase/scoring"
)

func buildParams(plan domain.PlanType, language domain.Language, purpose domain.PurposeType) BuildParams {
	raw := make(domain.ScoreVector, len(domain.DimensionKeys))
	for _, key := range domain.DimensionKeys {
		raw[key] = 1
	}
	raw[domain.DimensionMinimal] = 20
	raw[domain.DimensionProfessional] = 15
	normalized := scoring.Normalize(raw)
	return BuildParams{
		Project: domain.ProjectRequest{
			ServiceName: "Aurora CRM",
			Description: "CRM для небольших студий",
			Purpose:     purpose,
			Language:    language,
			CTAText:     "Попробовать бесплатно",
			RedirectURL: "https://aurora.example/start",
		},
		Profile: domain.ProfileSnapshot{
			CompanyName: "Aurora Inc.",
			ContactInfo: "hello@aurora.example",
		},
		Themes:  scoring.SelectThemes(normalized.Ranking),
		Ranking: normalized.Ranking,
		Plan:    plan,
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	params := buildParams(domain.PlanFree, domain.LanguageEN, domain.PurposeProduct)
	first := Build(params)
	second := Build(params)
	if first != second {
		t.Fatalf("одинаковый вход должен давать побайтно одинаковый промпт")
	}
}

func TestBuildSubstitutesFields(t *testing.T) {
	params := buildParams(domain.PlanPlus, domain.LanguageEN, domain.PurposeProduct)
	out := Build(params)
	for _, want := range []string{"Aurora CRM", "hello@aurora.example", "https://aurora.example/start"} {
		if !strings.Contains(out, want) {
			t.Fatalf("промпт должен содержать %q", want)
		}
	}
	if strings.Contains(out, "{service_name}") || strings.Contains(out, "{contact_info}") {
		t.Fatalf("в промпте остались незамещённые плейсхолдеры")
	}
}

func TestBuildEmptyOptionalFieldsResolveToEmpty(t *testing.T) {
	params := buildParams(domain.PlanPlus, domain.LanguageEN, domain.PurposeProduct)
	params.Project.CTAText = ""
	params.Profile.PersonalBio = ""
	out := Build(params)
	if strings.Contains(out, "{cta_text}") || strings.Contains(out, "{personal_bio}") {
		t.Fatalf("пустые опциональные поля должны схлопываться в пустую строку")
	}
}

func TestBuildPurposeExclusivity(t *testing.T) {
	markers := map[domain.PurposeType]string{
		domain.PurposeProduct: "Page goal: product sales",
		domain.PurposeBrand:   "Page goal: brand awareness",
		domain.PurposeService: "Page goal: service introduction",
		domain.PurposeLead:    "Page goal: lead generation",
		domain.PurposeEvent:   "Page goal: event invitation",
	}
	for purpose, marker := range markers {
		out := Build(buildParams(domain.PlanPlus, domain.LanguageEN, purpose))
		if !strings.Contains(out, marker) {
			t.Fatalf("для цели %s ожидали блок %q", purpose, marker)
		}
		for other, otherMarker := range markers {
			if other == purpose {
				continue
			}
			if strings.Contains(out, otherMarker) {
				t.Fatalf("для цели %s в промпт попал чужой блок %q", purpose, otherMarker)
			}
		}
	}
}

func TestBuildCustomCodeSections(t *testing.T) {
	params := buildParams(domain.PlanPlus, domain.LanguageEN, domain.PurposeProduct)
	out := Build(params)
	if strings.Contains(out, "Custom head code") || strings.Contains(out, "Custom body code") {
		t.Fatalf("при пустом кастомном коде меток в промпте быть не должно")
	}

	params.Project.CustomHead = `<meta name="robots" content="noindex">`
	params.Project.CustomBody = `<script>console.log("hi")</script>`
	out = Build(params)
	if !strings.Contains(out, "Custom head code") || !strings.Contains(out, params.Project.CustomHead) {
		t.Fatalf("непустой custom_head должен попадать в промпт дословно")
	}
	if !strings.Contains(out, "Custom body code") || !strings.Contains(out, params.Project.CustomBody) {
		t.Fatalf("непустой custom_body должен попадать в промпт дословно")
	}
}

func TestBuildComplianceBlockAlwaysPresent(t *testing.T) {
	for _, plan := range []domain.PlanType{domain.PlanFree, domain.PlanPlus} {
		out := Build(buildParams(plan, domain.LanguageJA, domain.PurposeLead))
		if !strings.Contains(out, "Critical compliance directives") {
			t.Fatalf("блок комплаенса обязателен для тарифа %s", plan)
		}
		if !strings.Contains(out, "privacy-modal") || !strings.Contains(out, "tokushoho-modal") {
			t.Fatalf("разметка юридических ссылок обязательна для тарифа %s", plan)
		}
	}
}

func TestBuildFreePlanBrandingByLanguage(t *testing.T) {
	en := Build(buildParams(domain.PlanFree, domain.LanguageEN, domain.PurposeBrand))
	if !strings.Contains(en, "Made with lp-forge") {
		t.Fatalf("free/en должен содержать английский брендинг")
	}
	ja := Build(buildParams(domain.PlanFree, domain.LanguageJA, domain.PurposeBrand))
	if !strings.Contains(ja, "このページは lp-forge で作成されました") {
		t.Fatalf("free/ja должен содержать японский брендинг")
	}
	if !strings.Contains(ja, "padding-bottom: 56px") {
		t.Fatalf("брендинг должен резервировать нижний отступ")
	}
}

func TestBuildPaidPlanHasNoBranding(t *testing.T) {
	out := Build(buildParams(domain.PlanPlus, domain.LanguageEN, domain.PurposeBrand))
	if strings.Contains(out, "Made with lp-forge") || strings.Contains(out, "lp-forge-branding") {
		t.Fatalf("на платном тарифе брендинга быть не должно")
	}
}
