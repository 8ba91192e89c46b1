package handler

import (
	"vocab-coach/internal/domain"
	"vocab-coach/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// PlayerHandler routes transport gestures and media-element events into a
// client's player.
type PlayerHandler struct {
	store   *ClientStore
	catalog *domain.SessionCatalog
	rates   []float64
}

// NewPlayerHandler creates a new PlayerHandler instance
func NewPlayerHandler(store *ClientStore, catalog *domain.SessionCatalog, rates []float64) *PlayerHandler {
	return &PlayerHandler{
		store:   store,
		catalog: catalog,
		rates:   rates,
	}
}

// GetCatalog handles GET /api/player/sessions
func (h *PlayerHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{
		Metadata: h.catalog.Metadata,
		Sessions: h.catalog.Sessions,
		Rates:    h.rates,
	})
}

// LoadSession handles POST /api/player/:clientId/load
func (h *PlayerHandler) LoadSession(c *fiber.Ctx) error {
	var req dto.LoadSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	session := h.findSession(req.SessionID)
	if session == nil {
		return domain.NewSessionNotFoundError(req.SessionID)
	}

	return h.run(c, func(client *Client) error {
		return client.Player.LoadSession(c.Context(), session)
	})
}

// Play handles POST /api/player/:clientId/play
func (h *PlayerHandler) Play(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		return client.Player.Play()
	})
}

// Pause handles POST /api/player/:clientId/pause
func (h *PlayerHandler) Pause(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		return client.Player.Pause()
	})
}

// Seek handles POST /api/player/:clientId/seek
func (h *PlayerHandler) Seek(c *fiber.Ctx) error {
	var req dto.SeekRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		return client.Player.Seek(req.Seconds)
	})
}

// JumpToWord handles POST /api/player/:clientId/jump
func (h *PlayerHandler) JumpToWord(c *fiber.Ctx) error {
	var req dto.JumpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		return client.Player.JumpToWord(req.Index)
	})
}

// ToggleLoop handles POST /api/player/:clientId/loop
func (h *PlayerHandler) ToggleLoop(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Player.ToggleLoop()
		return nil
	})
}

// SetRate handles POST /api/player/:clientId/rate
func (h *PlayerHandler) SetRate(c *fiber.Ctx) error {
	var req dto.RateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		return client.Player.SetPlaybackRate(req.Rate)
	})
}

// OnLoadedMetadata handles POST /api/player/:clientId/events/loadedmetadata
func (h *PlayerHandler) OnLoadedMetadata(c *fiber.Ctx) error {
	var event dto.LoadedMetadataEvent
	if err := c.BodyParser(&event); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		client.Player.HandleLoadedMetadata(event.Duration)
		return nil
	})
}

// OnTimeUpdate handles POST /api/player/:clientId/events/timeupdate
func (h *PlayerHandler) OnTimeUpdate(c *fiber.Ctx) error {
	var event dto.TimeUpdateEvent
	if err := c.BodyParser(&event); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		client.Player.HandleTimeUpdate(event.CurrentTime)
		return nil
	})
}

// OnPlay handles POST /api/player/:clientId/events/play
func (h *PlayerHandler) OnPlay(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Player.HandlePlay()
		return nil
	})
}

// OnPause handles POST /api/player/:clientId/events/pause
func (h *PlayerHandler) OnPause(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Player.HandlePause()
		return nil
	})
}

// OnEnded handles POST /api/player/:clientId/events/ended
func (h *PlayerHandler) OnEnded(c *fiber.Ctx) error {
	return h.run(c, func(client *Client) error {
		client.Player.HandleEnded()
		return nil
	})
}

// OnMediaError handles POST /api/player/:clientId/events/error
func (h *PlayerHandler) OnMediaError(c *fiber.Ctx) error {
	var event dto.MediaErrorEvent
	if err := c.BodyParser(&event); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return h.run(c, func(client *Client) error {
		client.Player.HandleError(event.Message)
		return nil
	})
}

func (h *PlayerHandler) findSession(sessionID int) *domain.ListeningSession {
	for i := range h.catalog.Sessions {
		if h.catalog.Sessions[i].ID == sessionID {
			return &h.catalog.Sessions[i]
		}
	}
	return nil
}

func (h *PlayerHandler) run(c *fiber.Ctx, command func(*Client) error) error {
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
