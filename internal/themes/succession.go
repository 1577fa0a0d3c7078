package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// Succession is the business-succession readiness diagnostic: successor,
// control structure, capital, stakeholders and the owner's own plans.
// q4 asks about a risk signal, so its answer scale is inverted.
func Succession() *diagnosis.ThemeDefinition {
	return &diagnosis.ThemeDefinition{
		ID:    "succession",
		Title: "Succession Readiness Bottlenecks | 3-Minute Diagnostic",
		Lead:  "Answer 10 questions to see where your succession bottleneck hides: successor, capital, governance, stakeholders and life plan.",

		Categories: []diagnosis.Category{
			{
				Name: "Successor Readiness",
				Questions: []diagnosis.Question{
					{
						ID:      "q1",
						Prompt:  "Is a successor candidate (family, employee or external) already clearly decided?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q2",
						Prompt:  "Is a development plan running to build the candidate's decision-making and financial literacy?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Control & Decision Rights",
				Questions: []diagnosis.Question{
					{
						ID:      "q3",
						Prompt:  "Have the current owner and the successor documented who decides what and who is responsible for what?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q4",
						Prompt:  "Is there unease or a temperature gap about the succession among executives and senior staff? (Yes means high risk)",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
						Invert:  true,
					},
				},
			},
			{
				Name: "Equity & Estate",
				Questions: []diagnosis.Question{
					{
						ID:      "q5",
						Prompt:  "Do you know the shareholding structure and valuation, and have you estimated the post-succession tax burden?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q6",
						Prompt:  "Have you sorted out post-succession risks around property, personal guarantees and borrowings, with a policy for each?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Stakeholder Relations",
				Questions: []diagnosis.Question{
					{
						ID:      "q7",
						Prompt:  "Have key customers and banks been told the succession policy and transition schedule?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q8",
						Prompt:  "Are internal leaders ready to accept the successor as the next head of the business?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Owner Life Plan",
				Questions: []diagnosis.Question{
					{
						ID:      "q9",
						Prompt:  "Has the owner mapped out their own post-retirement role, involvement and life plan in concrete terms?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q10",
						Prompt:  "Is there a written succession plan stating when, to whom and how?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
		},

		BalancedType: "Succession-Ready Type",
		TypeByCategory: map[string]string{
			"Successor Readiness":       "Unprepared-Successor Type",
			"Control & Decision Rights": "Opaque-Control Type",
			"Equity & Estate":           "Capital-Risk Type",
			"Stakeholder Relations":     "Stakeholder-Disconnect Type",
			"Owner Life Plan":           "Unready-Owner Type",
		},
		TypeText: map[string]string{
			"Unprepared-Successor Type":   "Identifying and developing the successor is behind schedule, with a real risk of missing the handover date. Name the candidate and design deliberate on-the-job development and delegation.",
			"Opaque-Control Type":         "Decision rights and responsibilities are vague, breeding unease inside and outside the company. Document governance, draw up an authority matrix and set transition milestones.",
			"Capital-Risk Type":           "Shares, inheritance, guarantees and borrowings are not sorted out, which feeds straight into tax burden and post-succession cash strain. Start with share valuation, tax funding and guarantee cleanup.",
			"Stakeholder-Disconnect Type": "Key customers, banks and internal key people have not been brought along, risking lost trust and defections. Map the key relationships and plan the briefings.",
			"Unready-Owner Type":          "The owner's own post-handover role and life plan are unsettled, which delays the transfer. Sketch the post-retirement role and involvement first, then build agreement.",
			"Succession-Ready Type":       "Preparation is broadly in order. Do not let succession end as defense: move on to growth investment, digital adoption and KPIs for the next-generation team.",
		},

		PromptPersona: "You are a management consultant who specializes in business succession, advising the owner or the successor.",
	}
}
