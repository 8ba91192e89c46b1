package handler

import (
	"vocab-coach/internal/domain"
	"vocab-coach/internal/dto"
	"vocab-coach/internal/player"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler routes quiz gestures into a client's engine.
type QuizHandler struct {
	store      *ClientStore
	pronouncer *player.FallbackChain
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(store *ClientStore, pronouncer *player.FallbackChain) *QuizHandler {
	return &QuizHandler{
		store:      store,
		pronouncer: pronouncer,
	}
}

// CreateClient handles POST /api/clients: it creates an independent engine
// instance for the calling page and answers with the initial category list.
func (h *QuizHandler) CreateClient(c *fiber.Ctx) error {
	client := h.store.Create()
	frames, _, _ := client.Do(func() error {
		client.Engine.BrowseCategories()
		return nil
	})
	return c.JSON(dto.ClientResponse{
		ClientID: client.ID,
		Frames:   frames,
	})
}

// BrowseCategories handles GET /api/quiz/:clientId/categories
func (h *QuizHandler) BrowseCategories(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Engine.BrowseCategories()
		return nil
	})
}

// StartCategory handles POST /api/quiz/:clientId/start
func (h *QuizHandler) StartCategory(c *fiber.Ctx) error {
	var req dto.StartCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		return client.Engine.StartCategory(req.CategoryID)
	})
}

// SelectAnswer handles POST /api/quiz/:clientId/answer
func (h *QuizHandler) SelectAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		return client.Engine.SelectAnswer(req.Option)
	})
}

// NextQuestion handles POST /api/quiz/:clientId/next
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		return client.Engine.NextQuestion()
	})
}

// RetryCategory handles POST /api/quiz/:clientId/retry
func (h *QuizHandler) RetryCategory(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		return client.Engine.RetryCategory()
	})
}

// NextCategory handles POST /api/quiz/:clientId/next-category
func (h *QuizHandler) NextCategory(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		return client.Engine.NextCategory()
	})
}

// FinalResults handles POST /api/quiz/:clientId/results
func (h *QuizHandler) FinalResults(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Engine.FinalResults()
		return nil
	})
}

// StartOver handles POST /api/quiz/:clientId/start-over
func (h *QuizHandler) StartOver(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Engine.StartOver()
		client.Engine.BrowseCategories()
		return nil
	})
}

// Speak handles POST /api/quiz/:clientId/speak: it resolves how the current
// question's word should be pronounced, preferring the pre-generated audio
// file and falling back to synthesized speech.
func (h *QuizHandler) Speak(c *fiber.Ctx) error {
	client, ok := h.store.Get(c.Params("clientId"))
	if !ok {
		return domain.NewNotFoundError("Unknown client")
	}

	var directive *player.PlaybackDirective
	_, _, err := client.Do(func() error {
		question := client.Engine.CurrentQuestion()
		if question == nil {
			return domain.NewInvalidSelectionError("No question is being displayed")
		}
		resolved, err := h.pronouncer.Resolve(player.PronunciationRequest{
			QuestionID: question.ID,
			Text:       question.Question,
		})
		directive = resolved
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SpeakResponse{Directive: directive})
}

// run executes one engine command for the addressed client and answers with
// the frames it produced. Rejected operations surface through the error
// middleware with a user-facing message; the engine is never left stuck.
func (h *QuizHandler) run(c *fiber.Ctx, command func(*Client) error) error {
	client, ok := h.store.Get(c.Params("clientId"))
	if !ok {
		return domain.NewNotFoundError("Unknown client")
	}

	frames, directives, err := client.Do(func() error {
		return command(client)
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.CommandResponse{
		Frames:          frames,
		MediaDirectives: directives,
	})
}
