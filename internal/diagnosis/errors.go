package diagnosis

import "fmt"

// UnknownAnswerError reports an answer value outside the declared option set
// of its question. Scoring aborts; the answer is never silently defaulted.
type UnknownAnswerError struct {
	Question QuestionID
	Answer   AnswerOption
}

func (e *UnknownAnswerError) Error() string {
	return fmt.Sprintf("answer %q is not a valid option for question %s", e.Answer, e.Question)
}

// IncompleteSubmissionError reports a declared question with no answer.
// It is raised before any scoring happens.
type IncompleteSubmissionError struct {
	Question QuestionID
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("question %s has no answer", e.Question)
}

// UnknownThemeError reports a theme id that is not in the registry.
type UnknownThemeError struct {
	ID string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("theme %q is not registered", e.ID)
}

// UnmappedCategoryError reports a weak category absent from the theme's
// fallback table. Registration-time validation makes this unreachable for
// registered themes; the classifier still guards against it instead of
// substituting a label.
type UnmappedCategoryError struct {
	Theme    string
	Category string
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("category %q has no type mapping in theme %q", e.Category, e.Theme)
}
