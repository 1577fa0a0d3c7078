package diagnosis

import "fmt"

// QuestionID identifies a question within a theme (e.g. "q3").
type QuestionID string

// AnswerOption is a discrete answer label offered by a question. It is
// never numeric; scoring happens through the question's ScaleMapping.
type AnswerOption string

// SignalTier is the three-level overall risk classification.
type SignalTier int

const (
	SignalBlue SignalTier = iota // low risk
	SignalYellow
	SignalRed
)

func (s SignalTier) String() string {
	switch s {
	case SignalBlue:
		return "blue"
	case SignalYellow:
		return "yellow"
	case SignalRed:
		return "red"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the tier as its color name.
func (s SignalTier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Question is one form item: an ordered option list and the mapping that
// turns a chosen option into a 1-5 score. Invert reflects the score around
// the midpoint for questions phrased so that an affirmative answer means
// higher risk.
type Question struct {
	ID      QuestionID
	Prompt  string
	Options []AnswerOption
	Mapping ScaleMapping
	Invert  bool
}

// Category groups questions whose scores are averaged together. Display
// order of categories is significant: it drives tie-breaking, the rendered
// score table and the persisted JSON.
type Category struct {
	Name      string
	Questions []Question
}

// ThemeDefinition is the full static configuration of one diagnostic theme.
// Definitions are built once at startup and never mutated.
type ThemeDefinition struct {
	ID    string
	Title string
	Lead  string

	Categories []Category

	// BalancedType is reported when no category is weak.
	BalancedType string
	// TypeByCategory maps a weak category to its dominant type label.
	TypeByCategory map[string]string
	// TypeText holds the descriptive text for every type label.
	TypeText map[string]string

	// PromptPersona opens the narrative-comment prompt ("You are a ...").
	PromptPersona string
}

// Validate checks the cross-table invariants of a definition. It is run at
// registration time so that classification can never hit a hole in the
// fallback tables at request time.
func (t *ThemeDefinition) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("theme has no id")
	}
	if len(t.Categories) == 0 {
		return fmt.Errorf("theme %q has no categories", t.ID)
	}
	names := make(map[string]bool, len(t.Categories))
	for _, cat := range t.Categories {
		if len(cat.Questions) == 0 {
			return fmt.Errorf("theme %q category %q has no questions", t.ID, cat.Name)
		}
		if names[cat.Name] {
			return fmt.Errorf("theme %q declares category %q twice", t.ID, cat.Name)
		}
		names[cat.Name] = true
		for _, q := range cat.Questions {
			if len(q.Mapping) == 0 {
				return fmt.Errorf("theme %q question %q has an empty mapping", t.ID, q.ID)
			}
			for _, opt := range q.Options {
				if _, ok := q.Mapping[opt]; !ok {
					return fmt.Errorf("theme %q question %q offers option %q with no score", t.ID, q.ID, opt)
				}
			}
		}
	}
	for cat, label := range t.TypeByCategory {
		if !names[cat] {
			return fmt.Errorf("theme %q maps unknown category %q", t.ID, cat)
		}
		if _, ok := t.TypeText[label]; !ok {
			return fmt.Errorf("theme %q type %q has no descriptive text", t.ID, label)
		}
	}
	for name := range names {
		if _, ok := t.TypeByCategory[name]; !ok {
			return fmt.Errorf("theme %q category %q has no type mapping", t.ID, name)
		}
	}
	if t.BalancedType == "" {
		return fmt.Errorf("theme %q has no balanced type", t.ID)
	}
	if _, ok := t.TypeText[t.BalancedType]; !ok {
		return fmt.Errorf("theme %q balanced type %q has no descriptive text", t.ID, t.BalancedType)
	}
	return nil
}

// QuestionCount returns the number of questions across all categories.
func (t *ThemeDefinition) QuestionCount() int {
	n := 0
	for _, cat := range t.Categories {
		n += len(cat.Questions)
	}
	return n
}

// CategoryScore is one row of the per-category score table.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// DiagnosisResult is the complete outcome of one submission. It is created
// once per form submit, handed to the report boundary, and never mutated.
type DiagnosisResult struct {
	CategoryScores []CategoryScore `json:"category_scores"`
	OverallAverage float64         `json:"overall_average"`
	Signal         SignalTier      `json:"signal"`
	DominantType   string          `json:"dominant_type"`

	// WeakestCategories lists the two lowest-scoring categories in
	// ascending score order (declared order on ties); used by the
	// narrative prompt.
	WeakestCategories []string `json:"weakest_categories"`
}
