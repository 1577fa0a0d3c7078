package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoCategoryTheme builds a minimal theme with two questions per category,
// the shape every shipped theme uses.
func twoCategoryTheme() *ThemeDefinition {
	return &ThemeDefinition{
		ID:    "test",
		Title: "Test Theme",
		Categories: []Category{
			{
				Name: "First",
				Questions: []Question{
					{ID: "q1", Options: OptionsYN3, Mapping: MappingYN3},
					{ID: "q2", Options: OptionsYN3, Mapping: MappingYN3},
				},
			},
			{
				Name: "Second",
				Questions: []Question{
					{ID: "q3", Options: OptionsFreq3, Mapping: MappingFreq3, Invert: true},
					{ID: "q4", Options: OptionsLikert5, Mapping: MappingLikert5},
				},
			},
		},
		BalancedType: "Balanced",
		TypeByCategory: map[string]string{
			"First":  "First-Weak Type",
			"Second": "Second-Weak Type",
		},
		TypeText: map[string]string{
			"Balanced":         "balanced text",
			"First-Weak Type":  "first text",
			"Second-Weak Type": "second text",
		},
	}
}

func TestScoreCategories(t *testing.T) {
	theme := twoCategoryTheme()

	tests := []struct {
		name     string
		answers  map[QuestionID]AnswerOption
		expected []CategoryScore
	}{
		{
			name: "all favorable answers",
			answers: map[QuestionID]AnswerOption{
				"q1": "Yes", "q2": "Yes", "q3": "Often", "q4": "5 (fully)",
			},
			expected: []CategoryScore{
				{Category: "First", Score: 5},
				{Category: "Second", Score: 5},
			},
		},
		{
			name: "all unfavorable answers",
			answers: map[QuestionID]AnswerOption{
				"q1": "No", "q2": "No", "q3": "Hardly ever", "q4": "1 (not at all)",
			},
			expected: []CategoryScore{
				{Category: "First", Score: 1},
				{Category: "Second", Score: 1},
			},
		},
		{
			name: "mixed answers average per category",
			answers: map[QuestionID]AnswerOption{
				"q1": "Yes", "q2": "No", "q3": "Sometimes", "q4": "4",
			},
			expected: []CategoryScore{
				{Category: "First", Score: 3},    // (5+1)/2
				{Category: "Second", Score: 3.5}, // (3+4)/2
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreCategories(tt.answers, theme)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScoreCategories_OrderFollowsDeclaration(t *testing.T) {
	theme := twoCategoryTheme()
	answers := map[QuestionID]AnswerOption{
		"q1": "Yes", "q2": "Yes", "q3": "Often", "q4": "5 (fully)",
	}

	got, err := ScoreCategories(answers, theme)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Category)
	assert.Equal(t, "Second", got[1].Category)
}

func TestScoreCategories_MissingAnswer(t *testing.T) {
	theme := twoCategoryTheme()
	answers := map[QuestionID]AnswerOption{
		"q1": "Yes", "q2": "Yes", "q3": "Often",
		// q4 missing
	}

	_, err := ScoreCategories(answers, theme)

	var incompleteErr *IncompleteSubmissionError
	require.ErrorAs(t, err, &incompleteErr)
	assert.Equal(t, QuestionID("q4"), incompleteErr.Question)
}

func TestScoreCategories_UnknownAnswerAborts(t *testing.T) {
	theme := twoCategoryTheme()
	answers := map[QuestionID]AnswerOption{
		"q1": "Yes", "q2": "Definitely", "q3": "Often", "q4": "5 (fully)",
	}

	got, err := ScoreCategories(answers, theme)

	var unknownErr *UnknownAnswerError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, QuestionID("q2"), unknownErr.Question)
	assert.Nil(t, got)
}

func TestScoreCategories_ExtraAnswersIgnored(t *testing.T) {
	theme := twoCategoryTheme()
	answers := map[QuestionID]AnswerOption{
		"q1": "Yes", "q2": "Yes", "q3": "Often", "q4": "5 (fully)",
		"q99": "whatever",
	}

	got, err := ScoreCategories(answers, theme)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRound2_HalfToEven(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"exact value untouched", 3.5, 3.5},
		{"half rounds down to even", 1.125, 1.12},
		{"half rounds up to even", 1.135, 1.14},
		{"ordinary value rounds normally", 2.666, 2.67},
		{"integer passes through", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, round2(tt.input), 1e-9)
		})
	}
}
