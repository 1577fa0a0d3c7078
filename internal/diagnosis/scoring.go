package diagnosis

import "math"

// ScoreCategories turns a flat answer set into the per-category average
// score table, in the theme's declared category order.
//
// Every declared question must have an answer; a missing one fails with
// IncompleteSubmissionError before any scoring happens, and an answer
// outside its question's option set fails with UnknownAnswerError. Category
// averages are rounded to 2 decimal places with round-half-to-even, matching
// the behavior downstream classification thresholds were tuned against.
func ScoreCategories(answers map[QuestionID]AnswerOption, theme *ThemeDefinition) ([]CategoryScore, error) {
	// Completeness first: no partial table is ever produced.
	for _, cat := range theme.Categories {
		for _, q := range cat.Questions {
			if _, ok := answers[q.ID]; !ok {
				return nil, &IncompleteSubmissionError{Question: q.ID}
			}
		}
	}

	table := make([]CategoryScore, 0, len(theme.Categories))
	for _, cat := range theme.Categories {
		sum := 0
		for _, q := range cat.Questions {
			s, err := Score(q.ID, answers[q.ID], q.Mapping, q.Invert)
			if err != nil {
				return nil, err
			}
			sum += s
		}
		avg := float64(sum) / float64(len(cat.Questions))
		table = append(table, CategoryScore{Category: cat.Name, Score: round2(avg)})
	}
	return table, nil
}

// round2 rounds to 2 decimal places, half to even (banker's rounding).
func round2(x float64) float64 {
	scaled := x * 100
	return math.RoundToEven(scaled) / 100
}
