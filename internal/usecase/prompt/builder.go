package prompt

import (
	"fmt"
	"strings"

	"lp-forge/internal/domain"
	"lp-forge/internal/usecase/scoring"
)

// BuildParams — входные данные одной сборки промпта.
type BuildParams struct {
	Project domain.ProjectRequest
	Profile domain.ProfileSnapshot
	Themes  scoring.ThemeSelection
	Ranking []domain.RankEntry
	Plan    domain.PlanType
}

// Build собирает промпт генерации. Подстановка полей — одна проходная
// замена без рекурсии; обязательные блоки дописываются после неё в
// фиксированном порядке. При одинаковом входе результат побайтно одинаков.
func Build(params BuildParams) string {
	var skeleton strings.Builder
	skeleton.WriteString(basePrompt)
	if block, ok := purposeBlocks[params.Project.Purpose]; ok {
		skeleton.WriteString("\n")
		skeleton.WriteString(block)
	}
	if strings.TrimSpace(params.Project.CustomHead) != "" {
		skeleton.WriteString("\n")
		skeleton.WriteString(customHeadSection)
	}
	if strings.TrimSpace(params.Project.CustomBody) != "" {
		skeleton.WriteString("\n")
		skeleton.WriteString(customBodySection)
	}

	replacer := strings.NewReplacer(
		"{language}", string(params.Project.Language),
		"{service_name}", params.Project.ServiceName,
		"{service_description}", params.Project.Description,
		"{cta_text}", params.Project.CTAText,
		"{redirect_url}", params.Project.RedirectURL,
		"{achievements}", params.Project.Achievements,
		"{company_name}", params.Profile.CompanyName,
		"{company_achievements}", params.Profile.CompanyAchievements,
		"{contact_info}", params.Profile.ContactInfo,
		"{personal_name}", params.Profile.PersonalName,
		"{personal_bio}", params.Profile.PersonalBio,
		"{personal_achievements}", params.Profile.PersonalAchievements,
		"{score_summary}", scoreSummary(params.Ranking),
		"{dominant_directive}", params.Themes.Dominant,
		"{accent_directive}", params.Themes.Accent,
		"{custom_head}", params.Project.CustomHead,
		"{custom_body}", params.Project.CustomBody,
	)

	var out strings.Builder
	out.WriteString(replacer.Replace(skeleton.String()))
	out.WriteString("\n")
	out.WriteString(complianceBlock(params.Themes, params.Ranking))
	if params.Plan == domain.PlanFree {
		out.WriteString("\n")
		out.WriteString(brandingInstruction(params.Project.Language))
	}
	return out.String()
}

func scoreSummary(ranking []domain.RankEntry) string {
	lines := make([]string, 0, len(ranking))
	for _, entry := range ranking {
		lines = append(lines, fmt.Sprintf("%d. %s (raw score %g)", entry.Rank, entry.Key, entry.Raw))
	}
	return strings.Join(lines, "\n")
}

func complianceBlock(themes scoring.ThemeSelection, ranking []domain.RankEntry) string {
	var b strings.Builder
	b.WriteString(compliancePrefix)
	b.WriteString(fmt.Sprintf("\n1. Foreground the rank-1 style direction everywhere: %s.\n", themes.Dominant))
	if themes.Accent != "" {
		b.WriteString(fmt.Sprintf("2. Keep the rank-2 direction in the background only: %s.\n", themes.Accent))
	} else {
		b.WriteString("2. There is no secondary direction; do not invent one.\n")
	}
	if len(themes.Suppressed) > 0 {
		keys := make([]string, 0, len(themes.Suppressed))
		for _, key := range themes.Suppressed {
			keys = append(keys, string(key))
		}
		b.WriteString(fmt.Sprintf("3. Completely ignore these style axes (ranked %d or lower): %s.\n", suppressedThreshold(ranking), strings.Join(keys, ", ")))
	} else {
		b.WriteString("3. No style axes are suppressed for this request.\n")
	}
	b.WriteString("\n")
	b.WriteString(complianceFooterLinks)
	return b.String()
}

// suppressedThreshold восстанавливает порог подавления из ранжирования,
// чтобы текст директивы не расходился с выбором тем.
func suppressedThreshold(ranking []domain.RankEntry) int {
	threshold := len(ranking)
	if threshold > 6 {
		threshold = 6
	}
	return threshold
}

func brandingInstruction(language domain.Language) string {
	if instruction, ok := brandingInstructions[language]; ok {
		return instruction
	}
	return brandingInstructions[domain.LanguageEN]
}
