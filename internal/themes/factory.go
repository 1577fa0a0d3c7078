package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// Factory is the manufacturing hidden-waste diagnostic: five risk
// structures across inventory, skills transfer, cost culture, planning and
// data visibility.
func Factory() *diagnosis.ThemeDefinition {
	return &diagnosis.ThemeDefinition{
		ID:    "factory",
		Title: "Hidden Waste on the Factory Floor | 3-Minute Diagnostic",
		Lead:  "Answer 10 questions to map the risk structure of your operation.",

		Categories: []diagnosis.Category{
			{
				Name: "Inventory & Handling",
				Questions: []diagnosis.Question{
					{
						ID:      "q1",
						Prompt:  "Do you manage finished-goods and WIP inventory against numeric targets?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q2",
						Prompt:  "Is there a clear owner (or KPI) for inventory reduction?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Skills",
				Questions: []diagnosis.Question{
					{
						ID:      "q3",
						Prompt:  "Can 30% or more of your operations only be handled by veteran workers? (Yes means high risk)",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
						Invert:  true,
					},
					{
						ID:      "q4",
						Prompt:  "Is there a working process for keeping standard work instructions up to date?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Cost Awareness",
				Questions: []diagnosis.Question{
					{
						ID:      "q5",
						Prompt:  "Do you track improvement proposals and cost-reduction targets numerically?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q6",
						Prompt:  "Do shop-floor leaders act with a sense of cost?",
						Options: diagnosis.OptionsLikert5,
						Mapping: diagnosis.MappingLikert5,
					},
				},
			},
			{
				Name: "Production Planning",
				Questions: []diagnosis.Question{
					{
						ID:      "q7",
						Prompt:  "Are there standard rules for handling order swings and rush jobs?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q8",
						Prompt:  "Do you regularly review lead-time reduction initiatives?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Data & Visibility",
				Questions: []diagnosis.Question{
					{
						ID:      "q9",
						Prompt:  "Can you see shop-floor progress and production results in real time?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q10",
						Prompt:  "Do management and shop-floor meetings run on data?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
		},

		BalancedType: "Well-Balanced Type",
		TypeByCategory: map[string]string{
			"Inventory & Handling": "Inventory-Stagnation Type",
			"Skills":               "Expert-Dependency Type",
			"Cost Awareness":       "Cost-Blackbox Type",
			"Production Planning":  "Volatility-Fragile Type",
			"Data & Visibility":    "Data-Disconnect Type",
		},
		TypeText: map[string]string{
			"Inventory-Stagnation Type": "Excess stock and stalled WIP are likely tying up cash. Shift the focus from output volume to designing the flow.",
			"Expert-Dependency Type":    "Skills are locked in individual veterans and the risk of a sharp drop when they leave is high. Take stock of skills and design multi-skilling now.",
			"Cost-Blackbox Type":        "Weak cost visibility is quietly eroding profit. Bring visible cost management all the way down to the shop floor.",
			"Volatility-Fragile Type":   "Order swings and rush jobs translate directly into delivery trouble and overtime. Design buffers that let variation flow instead of fighting it.",
			"Data-Disconnect Type":      "Progress and results are invisible, so decisions come late. Start with visibility and connect shop-floor data to management.",
			"Well-Balanced Type":        "Risk is well spread and your systems are maturing. The next move is profit-generating use of data and continued lead-time reduction.",
		},

		PromptPersona: "You are a management consultant specializing in shop-floor improvement for manufacturers.",
	}
}
