// Package prompt собирает промпт генерации лендинга: одна проходная
// подстановка {полей} поверх статического шаблона плюс обязательные
// блоки пост-обработки.
package prompt

import "lp-forge/internal/domain"

// basePrompt — каркас промпта. Плейсхолдеры вида {field} заменяются
// буквально и ровно один раз; пустые опциональные поля схлопываются в
// пустую строку, окружающий текст написан так, чтобы это читалось.
const basePrompt = `You are an expert landing page designer and front-end developer.
Produce one complete, self-contained HTML document (inline CSS in a <style> tag,
inline JS only when strictly needed). The page must be responsive and must not
reference external build tooling. Write all visible copy in the "{language}" language.

## Project brief

Service name: {service_name}
Description: {service_description}
Primary call to action: {cta_text}
CTA destination URL: {redirect_url}
Notable achievements to highlight: {achievements}

## About the author

Company: {company_name}
Company achievements: {company_achievements}
Contact: {contact_info}
Person: {personal_name}
Bio: {personal_bio}
Personal achievements: {personal_achievements}

Leave out any section of the page for which no information was provided above.

## Style direction

The user's swipe session produced the following style preference ranking
(rank 1 is strongest):
{score_summary}

Primary direction: {dominant_directive}.
Secondary direction: {accent_directive}.
`

// purposeBlocks — ровно один блок попадает в промпт, остальные четыре
// отсутствуют целиком.
var purposeBlocks = map[domain.PurposeType]string{
	domain.PurposeProduct: `## Page goal: product sales

Structure the page around the product: hero with the product promise, feature
grid with concrete benefits, social proof, pricing or offer section, and a
purchase-oriented call to action repeated after every major section.
`,
	domain.PurposeBrand: `## Page goal: brand awareness

Structure the page around the brand story: an emotive hero, the mission and
values, milestones, imagery-led sections with drastically less text, and a soft
call to action inviting the visitor to learn more or follow.
`,
	domain.PurposeService: `## Page goal: service introduction

Structure the page around the service: hero naming the outcome for the client,
how-it-works steps, deliverables and scope, testimonials, a contact or booking
call to action with low commitment wording.
`,
	domain.PurposeLead: `## Page goal: lead generation

Structure the page around conversion: a hero with a single clear value
proposition, benefit bullets, trust markers, and a prominent lead form (name,
email, message) repeated near the end. Every call to action submits the form.
`,
	domain.PurposeEvent: `## Page goal: event invitation

Structure the page around the event: hero with the event name, date and venue,
agenda or schedule section, speakers or highlights, and a registration call to
action with a visible deadline.
`,
}

// customHeadSection и customBodySection включаются только при непустом
// содержимом: висячих меток без кода в промпте быть не должно.
const customHeadSection = `## Custom head code

Insert the following snippet verbatim inside <head>:
{custom_head}
`

const customBodySection = `## Custom body code

Insert the following snippet verbatim right before </body>:
{custom_body}
`

// compliancePrefix — обязательный финальный блок. Хвост с перечислением
// рангов дописывается сборщиком.
const compliancePrefix = `## Critical compliance directives

These rules override anything above:
`

// complianceFooterLinks — обязательная разметка юридических ссылок.
const complianceFooterLinks = `The page footer must contain two modal-triggered links, privacy policy and
commerce disclosure, using exactly this markup shape:

<footer>
  <a href="#" onclick="document.getElementById('privacy-modal').style.display='block';return false;">Privacy Policy</a>
  <a href="#" onclick="document.getElementById('tokushoho-modal').style.display='block';return false;">Commerce Disclosure</a>
</footer>

Both modals must exist in the document with matching ids and a close control.
`

// brandingInstructions — брендинг free-тарифа по языкам. Маркер текста
// проверяется тестами и клиентом, поэтому строки фиксированы.
var brandingInstructions = map[domain.Language]string{
	domain.LanguageEN: `## Required branding (free plan)

Insert the following fragment immediately before the closing </body> tag,
unchanged:

<div class="lp-forge-branding"><a href="https://lp-forge.app" target="_blank" rel="noopener">Made with lp-forge</a></div>

Add this CSS so the badge never covers page content:

.lp-forge-branding { position: fixed; bottom: 0; left: 0; right: 0; height: 48px; display: flex; align-items: center; justify-content: center; background: #111; color: #fff; font-size: 13px; z-index: 9999; }
body { padding-bottom: 56px; }
`,
	domain.LanguageJA: `## Required branding (free plan)

Insert the following fragment immediately before the closing </body> tag,
unchanged:

<div class="lp-forge-branding"><a href="https://lp-forge.app" target="_blank" rel="noopener">このページは lp-forge で作成されました</a></div>

Add this CSS so the badge never covers page content:

.lp-forge-branding { position: fixed; bottom: 0; left: 0; right: 0; height: 48px; display: flex; align-items: center; justify-content: center; background: #111; color: #fff; font-size: 13px; z-index: 9999; }
body { padding-bottom: 56px; }
`,
}
