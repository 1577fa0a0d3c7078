package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// Sales is the sales-capability diagnostic: lead generation, proposal
// quality, pricing discipline, repeat business and pipeline visibility.
func Sales() *diagnosis.ThemeDefinition {
	return &diagnosis.ThemeDefinition{
		ID:    "sales",
		Title: "Sales Capability | 3-Minute Diagnostic",
		Lead:  "Answer 10 questions to see where your sales pipeline gets stuck.",

		Categories: []diagnosis.Category{
			{
				Name: "Lead Generation",
				Questions: []diagnosis.Question{
					{
						ID:      "q1",
						Prompt:  "Do you track monthly targets and actuals for new contacts (inquiries, referrals, visits)?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q2",
						Prompt:  "Is there a mechanism that makes referrals happen naturally (thank-yous, standing referral requests, incentives)?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Meetings & Proposals",
				Questions: []diagnosis.Question{
					{
						ID:      "q3",
						Prompt:  "In first meetings, do you reliably learn the customer's problems, decision process and alternatives?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q4",
						Prompt:  "Do your proposals and quotes offer selectable options (standard / extended / minimal)?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Orders & Pricing",
				Questions: []diagnosis.Question{
					{
						ID:      "q5",
						Prompt:  "Before discounting, do you adjust through other means such as alternative offers or scope changes?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q6",
						Prompt:  "After winning an order, how often does billing for extras or out-of-scope work end up vague?",
						Options: diagnosis.OptionsFreq3,
						Mapping: diagnosis.MappingFreq3,
					},
				},
			},
			{
				Name: "Repeat & Referral",
				Questions: []diagnosis.Question{
					{
						ID:      "q7",
						Prompt:  "Do you tell existing customers in advance about scheduled check-ups and renewals?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q8",
						Prompt:  "Do you notice the early signs of churn or shrinking business (slow replies, delays)?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Pipeline Visibility",
				Questions: []diagnosis.Question{
					{
						ID:      "q9",
						Prompt:  "Do you review the deal list (prospect to order) weekly and share priorities?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q10",
						Prompt:  "Are meeting notes, quotes and documents kept in shared templates anyone can use?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
		},

		BalancedType: "Well-Balanced Type",
		TypeByCategory: map[string]string{
			"Lead Generation":      "Lead-Shortage Type",
			"Meetings & Proposals": "Weak-Proposal Type",
			"Orders & Pricing":     "Margin-Squeeze Type",
			"Repeat & Referral":    "Weak-Repeat Type",
			"Pipeline Visibility":  "Unmanaged-Pipeline Type",
		},
		TypeText: map[string]string{
			"Lead-Shortage Type":      "Too few new encounters are thinning out your deal flow. Add mechanisms that attract leads: referral loops, publishing, calls and visits.",
			"Weak-Proposal Type":      "Deals exist but proposals lack depth and customer understanding. Verbalize the problem, show comparisons and cases, and involve the decision maker.",
			"Margin-Squeeze Type":     "Discount-first orders are letting profit escape. Build breakwaters: standard quotes, term-alignment procedures and alternative offers.",
			"Weak-Repeat Type":        "Too many one-off deals, weak renewal and deepening. Make scheduled check-ups, regular touchpoints and early churn detection routine.",
			"Unmanaged-Pipeline Type": "Numbers and progress are invisible, so focus is lost and work gets redone. Start with visibility: a deal list, weekly reviews and shared notes.",
			"Well-Balanced Type":      "Sales is in good shape overall. Next, maximize margin and build referral chains by codifying your winning patterns and coaching to them.",
		},

		PromptPersona: "You are a consultant familiar with sales improvement for small businesses.",
	}
}
