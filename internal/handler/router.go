package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the quiz and player command routes. Media-element
// lifecycle events get their own subtree: they are callbacks, not gestures.
func RegisterRoutes(app *fiber.App, quizHandler *QuizHandler, playerHandler *PlayerHandler) {
	api := app.Group("/api")

	api.Post("/clients", quizHandler.CreateClient)

	quizGroup := api.Group("/quiz/:clientId")
	quizGroup.Get("/categories", quizHandler.BrowseCategories)
	quizGroup.Post("/start", quizHandler.StartCategory)
	quizGroup.Post("/answer", quizHandler.SelectAnswer)
	quizGroup.Post("/next", quizHandler.NextQuestion)
	quizGroup.Post("/retry", quizHandler.RetryCategory)
	quizGroup.Post("/next-category", quizHandler.NextCategory)
	quizGroup.Post("/results", quizHandler.FinalResults)
	quizGroup.Post("/start-over", quizHandler.StartOver)
	quizGroup.Post("/speak", quizHandler.Speak)

	api.Get("/player/sessions", playerHandler.GetCatalog)

	playerGroup := api.Group("/player/:clientId")
	playerGroup.Post("/load", playerHandler.LoadSession)
	playerGroup.Post("/play", playerHandler.Play)
	playerGroup.Post("/pause", playerHandler.Pause)
	playerGroup.Post("/seek", playerHandler.Seek)
	playerGroup.Post("/jump", playerHandler.JumpToWord)
	playerGroup.Post("/loop", playerHandler.ToggleLoop)
	playerGroup.Post("/rate", playerHandler.SetRate)

	events := playerGroup.Group("/events")
	events.Post("/loadedmetadata", playerHandler.OnLoadedMetadata)
	events.Post("/timeupdate", playerHandler.OnTimeUpdate)
	events.Post("/play", playerHandler.OnPlay)
	events.Post("/pause", playerHandler.OnPause)
	events.Post("/ended", playerHandler.OnEnded)
	events.Post("/error", playerHandler.OnMediaError)
}
