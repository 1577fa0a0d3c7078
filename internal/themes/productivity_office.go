package themes

import (
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// ProductivityOffice is the office-productivity bottleneck diagnostic:
// meetings, information sharing, IT adoption, time use and team
// collaboration. The two frequency questions (q7, q8) ask about bad
// patterns, so the frequency scale applies without inversion.
func ProductivityOffice() *diagnosis.ThemeDefinition {
	return &diagnosis.ThemeDefinition{
		ID:    "productivity_office",
		Title: "Office Productivity Bottlenecks | 3-Minute Diagnostic",
		Lead:  "Answer 10 questions to see your office bottlenecks from five angles: meetings, sharing, IT, time use and teamwork.",

		Categories: []diagnosis.Category{
			{
				Name: "Visibility & Standardization",
				Questions: []diagnosis.Question{
					{
						ID:      "q1",
						Prompt:  "Is there a working way to share daily tasks and progress (task boards, daily reports)?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q2",
						Prompt:  "When several people do the same work, do they do it the same way?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Meetings & Communication",
				Questions: []diagnosis.Question{
					{
						ID:      "q3",
						Prompt:  "Do regular meetings have a clear purpose and usually finish on time?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q4",
						Prompt:  "Does chat and email sharing happen without duplication or gaps?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "IT & Tool Adoption",
				Questions: []diagnosis.Question{
					{
						ID:      "q5",
						Prompt:  "Are there initiatives to streamline work with spreadsheets or cloud tools?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q6",
						Prompt:  "Is there an atmosphere where staff try out and share useful tools?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
			{
				Name: "Time & Priorities",
				Questions: []diagnosis.Question{
					{
						ID:      "q7",
						Prompt:  "How often do meetings, reports and coordination push your real work back?",
						Options: diagnosis.OptionsFreq3,
						Mapping: diagnosis.MappingFreq3,
					},
					{
						ID:      "q8",
						Prompt:  "How often do urgent interruptions keep you from working to plan?",
						Options: diagnosis.OptionsFreq3,
						Mapping: diagnosis.MappingFreq3,
					},
				},
			},
			{
				Name: "Team Collaboration",
				Questions: []diagnosis.Question{
					{
						ID:      "q9",
						Prompt:  "Does helping out and sharing information happen naturally within the team?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
					{
						ID:      "q10",
						Prompt:  "Are roles assigned to play to each person's strengths?",
						Options: diagnosis.OptionsYN3,
						Mapping: diagnosis.MappingYN3,
					},
				},
			},
		},

		BalancedType: "Well-Balanced Type",
		TypeByCategory: map[string]string{
			"Visibility & Standardization": "Person-Dependent-Work Type",
			"Meetings & Communication":     "Meeting-Overload Type",
			"IT & Tool Adoption":           "IT-Stagnation Type",
			"Time & Priorities":            "Time-Loss Type",
			"Team Collaboration":           "Team-Silo Type",
		},
		TypeText: map[string]string{
			"Person-Dependent-Work Type": "Work is done differently by each person, making handovers and cover difficult. Start by making procedures visible and standardizing them.",
			"Meeting-Overload Type":      "Meetings and reporting lack purpose and time discipline, crowding out real work. Clarify purpose, shorten, and move what you can to asynchronous updates.",
			"IT-Stagnation Type":         "Digital adoption has stalled and work stays manual and paper-centric. Establish reusable patterns for spreadsheets and cloud sharing first.",
			"Time-Loss Type":             "Urgent work and coordination dominate and priorities blur. Protect planned time and agree on what not to do.",
			"Team-Silo Type":             "Information stays with individuals and mutual support is weak. Raise team productivity with sharing rules and strength-based roles.",
			"Well-Balanced Type":         "The overall balance is good. Continue improving against concrete targets such as cutting wasted time by ten percent.",
		},

		PromptPersona: "You are a management consultant who specializes in office productivity.",
	}
}
