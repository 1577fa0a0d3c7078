package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// Retention is the employee-retention diagnostic: where attrition risk
// smolders across hiring, evaluation, development, working conditions and
// management culture. Questions about good habits use the frequency scale
// directly; questions about bad signals (q7, q9) invert it.
func Retention() *diagnosis.ThemeDefinition {
	return &diagnosis.ThemeDefinition{
		ID:    "retention",
		Title: "Employee Retention | 3-Minute Diagnostic",
		Lead:  "Answer 10 questions to surface the sparks of attrition from five angles.",

		Categories: []diagnosis.Category{
			{
				Name: "Hiring & Onboarding",
				Questions: []diagnosis.Question{
					{
						ID:      "q1",
						Prompt:  "Are your hiring criteria (skills, experience, mindset, culture fit) written down and applied consistently in interviews?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q2",
						Prompt:  "Is onboarding and support for the first three months in place?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Evaluation & Career Path",
				Questions: []diagnosis.Question{
					{
						ID:      "q3",
						Prompt:  "Is the link between grades, evaluation criteria and pay easy to understand, and are evaluations based on goals set at the start of the term?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q4",
						Prompt:  "Is there a visible growth path or rotation scheme that you discuss with each person?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Training & Growth",
				Questions: []diagnosis.Question{
					{
						ID:      "q5",
						Prompt:  "How often do managers sit down with staff to review their work?",
						Options: diagnosis.OptionsFreq3,
						Mapping: diagnosis.MappingFreq3,
					},
					{
						ID:      "q6",
						Prompt:  "Do employees get chances to learn job-relevant skills (in-house or external training)?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Working Conditions",
				Questions: []diagnosis.Question{
					{
						ID:      "q7",
						Prompt:  "How often do you hear that overtime or weekend work is heavy?",
						Options: diagnosis.OptionsFreq3,
						Mapping: diagnosis.MappingFreq3,
						Invert:  true,
					},
					{
						ID:      "q8",
						Prompt:  "Are there occasions to hear employee views on pay, working style and benefits, and to revisit them?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Management & Culture",
				Questions: []diagnosis.Question{
					{
						ID:      "q9",
						Prompt:  "Do you sense employees who are unhappy with their manager or workplace relationships?",
						Options: diagnosis.OptionsFreq3,
						Mapping: diagnosis.MappingFreq3,
						Invert:  true,
					},
					{
						ID:      "q10",
						Prompt:  "Is there a habit or mechanism for spotting worries and early signs of resignation, and talking them through?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
		},

		BalancedType: "Strong-Retention Type",
		TypeByCategory: map[string]string{
			"Hiring & Onboarding":      "Unprepared-Onboarding Type",
			"Evaluation & Career Path": "Unclear-Career-Path Type",
			"Training & Growth":        "Stalled-Development Type",
			"Working Conditions":       "Workstyle-Mismatch Type",
			"Management & Culture":     "Management-Culture Type",
		},
		TypeText: map[string]string{
			"Unprepared-Onboarding Type": "Gaps in hiring criteria and onboarding are seeding early departures. Sharpen the hiring bar and support people through their first three months.",
			"Unclear-Career-Path Type":   "Evaluation and growth paths are hard to see, so motivation leaks away. Put goal-setting and review cycles in place to make growth tangible.",
			"Stalled-Development Type":   "The mechanisms for learning through work are weak and people plateau. Plan deliberate learning opportunities, in-house and external.",
			"Workstyle-Mismatch Type":    "Dissatisfaction with hours, pay and flexibility is accumulating. Ask for opinions on a regular cycle and revise how people work.",
			"Management-Culture Type":    "Friction with managers and workplace relationships is raising attrition risk. Pick up the voices on the floor and manage for trust.",
			"Strong-Retention Type":      "Retention looks healthy overall. Move on to early detection of likely leavers and investing in your best performers.",
		},

		PromptPersona: "You are a management consultant who specializes in employee retention.",
	}
}
