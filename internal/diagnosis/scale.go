package diagnosis

// ScaleMapping is a closed table from answer label to a score in [1,5],
// where 5 always means favorable/low-risk. Every option a question offers
// must have an entry; there is no default score.
type ScaleMapping map[AnswerOption]int

// invertTable reflects a score around the midpoint 3. Only {1,3,5} occur in
// the shipped mappings, but the table is total over 1-5.
var invertTable = map[int]int{1: 5, 2: 4, 3: 3, 4: 2, 5: 1}

// Score converts an answer label to its 1-5 score, reflecting around the
// midpoint when invert is set. An answer outside the mapping fails with
// UnknownAnswerError; question identifies the offender in the error.
func Score(question QuestionID, answer AnswerOption, mapping ScaleMapping, invert bool) (int, error) {
	v, ok := mapping[answer]
	if !ok {
		return 0, &UnknownAnswerError{Question: question, Answer: answer}
	}
	if invert {
		return invertTable[v], nil
	}
	return v, nil
}

// Shared answer vocabularies used across themes. Option order is the order
// the form renders them in.

// Yes / Partially / No, affirmative is favorable.
var (
	OptionsYN3 = []AnswerOption{"Yes", "Partially", "No"}
	MappingYN3 = ScaleMapping{"Yes": 5, "Partially": 3, "No": 1}
)

// Frequency scale where frequent is unfavorable. Questions where frequent
// is the healthy answer use this with Invert.
var (
	OptionsFreq3 = []AnswerOption{"Often", "Sometimes", "Hardly ever"}
	MappingFreq3 = ScaleMapping{"Often": 1, "Sometimes": 3, "Hardly ever": 5}
)

// Five-step self-rating, 5 favorable.
var (
	OptionsLikert5 = []AnswerOption{"5 (fully)", "4", "3", "2", "1 (not at all)"}
	MappingLikert5 = ScaleMapping{"5 (fully)": 5, "4": 4, "3": 3, "2": 2, "1 (not at all)": 1}
)
