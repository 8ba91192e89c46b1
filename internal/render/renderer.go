// Package render defines the contract between the domain engines and the
// presentation layer. The engines call these methods unconditionally and
// never read view state back; presence or absence of optional UI affordances
// is entirely the implementation's concern.
package render

import "vocab-coach/internal/domain"

// CategoryView is one row of the category list.
type CategoryView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	QuestionCount int    `json:"questionCount"`
	Completed     bool   `json:"completed"`
}

// QuestionView carries everything needed to show one question. Options is a
// freshly shuffled display copy; the underlying question is not mutated.
type QuestionView struct {
	CategoryName string   `json:"categoryName"`
	CategoryIcon string   `json:"categoryIcon"`
	Number       int      `json:"number"`
	Total        int      `json:"total"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
}

// FeedbackView marks the chosen and correct options for visual diff and
// surfaces the explanation.
type FeedbackView struct {
	Selected    string `json:"selected"`
	Correct     string `json:"correct"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// CheckpointView is the summary shown after finishing all questions in one
// category.
type CheckpointView struct {
	CategoryID   int                  `json:"categoryId"`
	CategoryName string               `json:"categoryName"`
	CategoryIcon string               `json:"categoryIcon"`
	Score        int                  `json:"score"`
	Total        int                  `json:"total"`
	Accuracy     int                  `json:"accuracy"`
	WrongAnswers []domain.WrongAnswer `json:"wrongAnswers"`
	AllComplete  bool                 `json:"allComplete"`
}

// FinalResultsView aggregates totals across all completed categories.
// Accuracy is pre-formatted; it reads "—" when nothing has been answered.
type FinalResultsView struct {
	TotalScore      int    `json:"totalScore"`
	TotalQuestions  int    `json:"totalQuestions"`
	Accuracy        string `json:"accuracy"`
	CompletedCount  int    `json:"completedCount"`
	TotalCategories int    `json:"totalCategories"`
}

// TransportView is the player seekbar/controls state.
type TransportView struct {
	SessionTitle string  `json:"sessionTitle"`
	CurrentTime  float64 `json:"currentTime"`
	Duration     float64 `json:"duration"`
	IsPlaying    bool    `json:"isPlaying"`
	IsLooping    bool    `json:"isLooping"`
	Rate         float64 `json:"rate"`
}

// Renderer translates engine state into visible UI. Implementations route
// user gestures back into the engines as method calls; the engines only ever
// push state out through this interface.
type Renderer interface {
	RenderCategoryList(categories []CategoryView)
	RenderQuestion(question QuestionView)
	RenderAnswerFeedback(feedback FeedbackView)
	RenderCheckpoint(checkpoint CheckpointView)
	RenderFinalResults(results FinalResultsView)
	RenderPlayerTransport(transport TransportView)
	// RenderSubtitle shows the given HTML fragment, or clears the subtitle
	// area when the fragment is empty.
	RenderSubtitle(fragment string)
	RenderError(code string, message string)
}
