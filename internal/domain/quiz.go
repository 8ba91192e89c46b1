package domain

// Question represents a single multiple-choice synonym question. Questions
// are immutable once loaded; the quiz engine shuffles display copies of
// Options, never the slice held here.
type Question struct {
	ID            int      `json:"id"`
	Category      string   `json:"category"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) < 2 {
		return NewValidationError("at least two options are required")
	}
	matches := 0
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		return NewValidationError("exactly one option must equal the correct answer")
	}
	return nil
}

// Category groups the questions that share a topic tag. IDs are dense,
// starting at 1, and their ascending order drives "next category" traversal.
type Category struct {
	ID          int
	Name        string
	Description string
	Icon        string
	Questions   []*Question
}

// Startable reports whether the category can be entered. A category with
// zero questions is never surfaced as startable.
func (c *Category) Startable() bool {
	return len(c.Questions) > 0
}

// WrongAnswer records one incorrect selection during a category attempt.
// The list is append-only per attempt and cleared when the category is
// (re)started.
type WrongAnswer struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}
