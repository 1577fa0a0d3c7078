package report

import (
	"fmt"
	"strings"

	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// SystemPrompt steers the narrative model toward short, practical advice.
const SystemPrompt = "You are a professional, concise business advisor. Give advice that translates directly into action."

// ctaStrength maps the signal tier to how firmly the closing sentence
// should push the follow-up session.
func ctaStrength(signal diagnosis.SignalTier) string {
	switch signal {
	case diagnosis.SignalRed:
		return "strongly recommended"
	case diagnosis.SignalYellow:
		return "recommended"
	default:
		return "optional"
	}
}

// BuildPrompt renders the user prompt for narrative comment generation.
// It carries the theme persona, the headline numbers and the two weakest
// categories so the model can ground its advice in the actual result.
func BuildPrompt(theme diagnosis.ThemeDefinition, company string, res diagnosis.DiagnosisResult) string {
	if company == "" {
		company = "(not provided)"
	}

	categories := make([]string, len(res.CategoryScores))
	for i, cs := range res.CategoryScores {
		categories[i] = cs.Category
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Based on the diagnostic result below, write one paragraph of roughly 260-340 characters addressed to the business owner.\n", theme.PromptPersona)
	b.WriteString("- No preamble or disclaimers, no bullet points, concrete actions over generalities.\n")
	fmt.Fprintf(&b, "- Close with a natural invitation to a 90-minute spot diagnosis, pitched as %s (red=strongly recommended, yellow=recommended, blue=optional refinement).\n\n", ctaStrength(res.Signal))
	fmt.Fprintf(&b, "[Company] %s\n", company)
	fmt.Fprintf(&b, "[Overall average] %.2f / 5\n", res.OverallAverage)
	fmt.Fprintf(&b, "[Signal] %s\n", res.Signal)
	fmt.Fprintf(&b, "[Type] %s\n", res.DominantType)
	fmt.Fprintf(&b, "[Weakest categories] %s\n", strings.Join(res.WeakestCategories, ", "))
	fmt.Fprintf(&b, "[Categories] %s", strings.Join(categories, ", "))
	return b.String()
}
