// Package quiz implements the category-driven quiz progression state
// machine. The engine owns all session state and pushes every visible change
// through the render.Renderer contract; it never reads view state back.
package quiz

import (
	"math/rand"
	"time"

	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"
	"vocab-coach/internal/render"
	"vocab-coach/internal/util"

	"go.uber.org/zap"
)

// State identifies where the engine is in its screen-transition machine.
type State string

const (
	StateIdle             State = "idle"
	StateCategoryBrowsing State = "categoryBrowsing"
	StateInQuestion       State = "inQuestion"
	StateAnswerRevealed   State = "answerRevealed"
	StateCategoryComplete State = "categoryComplete"
	StateFinished         State = "finished"
)

// accuracyPlaceholder is displayed when no questions have been answered yet,
// instead of dividing by zero.
const accuracyPlaceholder = "—"

// Engine walks a learner through multiple-choice questions grouped by
// category, tracking per-category and aggregate score. All methods run to
// completion on the calling event; an Engine instance is not safe for
// concurrent use and callers must serialize access.
type Engine struct {
	categories []*domain.Category
	renderer   render.Renderer
	rng        *rand.Rand

	state State

	current       *domain.Category
	questionOrder []*domain.Question
	questionIndex int
	answered      bool

	categoryScore int
	wrongAnswers  []domain.WrongAnswer

	completed     map[int]bool
	totalScore    int
	totalAnswered int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects a deterministic random source for tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// NewEngine creates an engine over the given categories. Category order is
// significant: ascending IDs drive "next category" traversal.
func NewEngine(categories []*domain.Category, renderer render.Renderer, opts ...Option) *Engine {
	e := &Engine{
		categories: categories,
		renderer:   renderer,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		state:      StateIdle,
		completed:  make(map[int]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current machine state.
func (e *Engine) State() State {
	return e.state
}

// BrowseCategories shows the category list. Valid from any state; it is the
// entry into category selection and also the "back to menu" path.
func (e *Engine) BrowseCategories() {
	e.state = StateCategoryBrowsing
	e.renderCategoryList()
}

// StartCategory begins a fresh attempt at the given category: question order
// reshuffled, per-category score zeroed, wrong answers cleared. The category
// list never surfaces an empty category as startable, but the precondition
// is enforced here as well so a stale gesture cannot corrupt state.
func (e *Engine) StartCategory(categoryID int) error {
	category := e.findCategory(categoryID)
	if category == nil {
		err := domain.NewCategoryNotFoundError(categoryID)
		e.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	if !category.Startable() {
		err := domain.NewInvalidSelectionError("This category has no questions yet")
		e.renderer.RenderError(string(err.Code), err.Message)
		return err
	}

	e.current = category
	e.questionOrder = shuffleCopy(e.rng, category.Questions)
	e.questionIndex = 0
	e.categoryScore = 0
	e.wrongAnswers = nil

	logger.Get().Info("Starting category",
		zap.Int("category_id", category.ID),
		zap.String("category", category.Name),
		zap.Int("questions", len(category.Questions)),
	)

	e.state = StateInQuestion
	e.displayQuestion()
	return nil
}

// displayQuestion renders the current question with a freshly shuffled
// display copy of its options. The question itself is never mutated, so
// repeat visits never reuse a stale shuffle order. Re-entering a question
// also resets the single-fire answer guard.
func (e *Engine) displayQuestion() {
	question := e.questionOrder[e.questionIndex]
	e.answered = false
	e.renderer.RenderQuestion(render.QuestionView{
		CategoryName: e.current.Name,
		CategoryIcon: e.current.Icon,
		Number:       e.questionIndex + 1,
		Total:        len(e.questionOrder),
		Question:     question.Question,
		Options:      shuffleCopy(e.rng, question.Options),
	})
}

// SelectAnswer scores the chosen option against the current question. It is
// single-fire per question: once an answer is revealed, further selections
// are rejected without touching any counter.
func (e *Engine) SelectAnswer(selected string) error {
	if e.state != StateInQuestion || e.answered {
		err := domain.NewInvalidSelectionError("No question is awaiting an answer")
		e.renderer.RenderError(string(err.Code), err.Message)
		return err
	}

	question := e.questionOrder[e.questionIndex]
	isCorrect := selected == question.CorrectAnswer

	e.answered = true
	e.totalAnswered++
	if isCorrect {
		e.categoryScore++
		e.totalScore++
	} else {
		e.wrongAnswers = append(e.wrongAnswers, domain.WrongAnswer{
			Question:      question.Question,
			YourAnswer:    selected,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		})
	}

	e.state = StateAnswerRevealed
	e.renderer.RenderAnswerFeedback(render.FeedbackView{
		Selected:    selected,
		Correct:     question.CorrectAnswer,
		IsCorrect:   isCorrect,
		Explanation: question.Explanation,
	})
	return nil
}

// NextQuestion advances past a revealed answer: either into the next
// question or, when the category is exhausted, into the checkpoint.
func (e *Engine) NextQuestion() error {
	if e.state != StateAnswerRevealed {
		err := domain.NewInvalidSelectionError("Answer the current question first")
		e.renderer.RenderError(string(err.Code), err.Message)
		return err
	}

	e.questionIndex++
	if e.questionIndex < len(e.questionOrder) {
		e.state = StateInQuestion
		e.displayQuestion()
		return nil
	}

	e.completeCategory()
	return nil
}

// completeCategory is the CategoryComplete entry action: it marks the
// category completed and exposes score, accuracy and the wrong-answer list
// for review. Whether to retry, advance or browse is the user's choice.
func (e *Engine) completeCategory() {
	e.completed[e.current.ID] = true
	e.state = StateCategoryComplete

	total := len(e.questionOrder)
	logger.Get().Info("Category completed",
		zap.Int("category_id", e.current.ID),
		zap.Int("score", e.categoryScore),
		zap.Int("total", total),
	)

	e.renderer.RenderCheckpoint(render.CheckpointView{
		CategoryID:   e.current.ID,
		CategoryName: e.current.Name,
		CategoryIcon: e.current.Icon,
		Score:        e.categoryScore,
		Total:        total,
		Accuracy:     util.Percent(e.categoryScore, total),
		WrongAnswers: e.wrongAnswers,
		AllComplete:  e.allComplete(),
	})
}

// RetryCategory discards the previous attempt of the current category and
// starts it again: clean reshuffle, scores reset, wrong answers dropped.
func (e *Engine) RetryCategory() error {
	if e.state != StateCategoryComplete || e.current == nil {
		err := domain.NewInvalidSelectionError("No completed category to retry")
		e.renderer.RenderError(string(err.Code), err.Message)
		return err
	}
	delete(e.completed, e.current.ID)
	return e.StartCategory(e.current.ID)
}

// NextCategory advances to the next uncompleted startable category in
// ascending ID order. When every category is complete it routes to the
// final results instead.
func (e *Engine) NextCategory() error {
	if e.state != StateCategoryComplete {
		err := domain.NewInvalidSelectionError("Finish the current category first")
		e.renderer.RenderError(string(err.Code), err.Message)
		return err
	}

	if e.allComplete() {
		e.FinalResults()
		return nil
	}
	for _, category := range e.categories {
		if !category.Startable() || e.completed[category.ID] {
			continue
		}
		return e.StartCategory(category.ID)
	}
	// Startable categories exhausted even though completion tracking says
	// otherwise; fall back to the results screen rather than getting stuck.
	e.FinalResults()
	return nil
}

// FinalResults shows the aggregate totals across all categories.
func (e *Engine) FinalResults() {
	e.state = StateFinished

	accuracy := accuracyPlaceholder
	if e.totalAnswered > 0 {
		accuracy = util.FormatPercent(util.Percent(e.totalScore, e.totalAnswered))
	}

	e.renderer.RenderFinalResults(render.FinalResultsView{
		TotalScore:      e.totalScore,
		TotalQuestions:  e.totalAnswered,
		Accuracy:        accuracy,
		CompletedCount:  len(e.completed),
		TotalCategories: e.startableCount(),
	})
}

// StartOver clears all progress and returns to Idle.
func (e *Engine) StartOver() {
	e.completed = make(map[int]bool)
	e.totalScore = 0
	e.totalAnswered = 0
	e.current = nil
	e.questionOrder = nil
	e.questionIndex = 0
	e.categoryScore = 0
	e.wrongAnswers = nil
	e.answered = false
	e.state = StateIdle

	logger.Get().Info("Quiz reset")
}

// CurrentQuestion returns the question being displayed, or nil outside of a
// question screen. Used by the pronunciation fallback, not by rendering.
func (e *Engine) CurrentQuestion() *domain.Question {
	if e.state != StateInQuestion && e.state != StateAnswerRevealed {
		return nil
	}
	return e.questionOrder[e.questionIndex]
}

func (e *Engine) renderCategoryList() {
	views := make([]render.CategoryView, 0, len(e.categories))
	for _, category := range e.categories {
		if !category.Startable() {
			continue
		}
		views = append(views, render.CategoryView{
			ID:            category.ID,
			Name:          category.Name,
			Description:   category.Description,
			Icon:          category.Icon,
			QuestionCount: len(category.Questions),
			Completed:     e.completed[category.ID],
		})
	}
	e.renderer.RenderCategoryList(views)
}

func (e *Engine) findCategory(categoryID int) *domain.Category {
	for _, category := range e.categories {
		if category.ID == categoryID {
			return category
		}
	}
	return nil
}

func (e *Engine) allComplete() bool {
	return len(e.completed) >= e.startableCount()
}

func (e *Engine) startableCount() int {
	n := 0
	for _, category := range e.categories {
		if category.Startable() {
			n++
		}
	}
	return n
}
