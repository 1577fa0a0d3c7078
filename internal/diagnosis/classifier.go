package diagnosis

// Signal thresholds on the overall average. Boundary values belong to the
// better tier. These are independent of the risk-level thresholds used in
// the persisted row; the two sets diverge on purpose.
const (
	signalBlueMin   = 4.0
	signalYellowMin = 2.6
)

// balancedMin is the per-category floor above which no weakness is reported.
const balancedMin = 4.0

// Classify derives the overall average, signal tier and dominant type from
// a per-category score table. Pure and deterministic: identical inputs give
// identical results.
//
// The overall average is the unrounded mean of the already-rounded category
// values, not a re-derivation from raw answers.
func Classify(scores []CategoryScore, theme *ThemeDefinition) (DiagnosisResult, error) {
	sum := 0.0
	for _, cs := range scores {
		sum += cs.Score
	}
	overall := sum / float64(len(scores))

	var signal SignalTier
	switch {
	case overall >= signalBlueMin:
		signal = SignalBlue
	case overall >= signalYellowMin:
		signal = SignalYellow
	default:
		signal = SignalRed
	}

	dominant := theme.BalancedType
	if !allAtLeast(scores, balancedMin) {
		weak := minCategory(scores)
		label, ok := theme.TypeByCategory[weak]
		if !ok {
			return DiagnosisResult{}, &UnmappedCategoryError{Theme: theme.ID, Category: weak}
		}
		dominant = label
	}

	return DiagnosisResult{
		CategoryScores:    scores,
		OverallAverage:    overall,
		Signal:            signal,
		DominantType:      dominant,
		WeakestCategories: weakestCategories(scores, 2),
	}, nil
}

func allAtLeast(scores []CategoryScore, min float64) bool {
	for _, cs := range scores {
		if cs.Score < min {
			return false
		}
	}
	return true
}

// minCategory returns the lowest-scoring category; on ties, the first in
// declared order. Declared order is the slice order, so a plain scan keeps
// the tie-break stable.
func minCategory(scores []CategoryScore) string {
	best := scores[0]
	for _, cs := range scores[1:] {
		if cs.Score < best.Score {
			best = cs
		}
	}
	return best.Category
}

// weakestCategories returns up to n category names in ascending score
// order, declared order on ties (stable selection).
func weakestCategories(scores []CategoryScore, n int) []string {
	picked := make([]bool, len(scores))
	if n > len(scores) {
		n = len(scores)
	}
	out := make([]string, 0, n)
	for len(out) < n {
		idx := -1
		for i, cs := range scores {
			if picked[i] {
				continue
			}
			if idx == -1 || cs.Score < scores[idx].Score {
				idx = i
			}
		}
		picked[idx] = true
		out = append(out, scores[idx].Category)
	}
	return out
}
