package dto

import (
	"vocab-coach/internal/domain"
	"vocab-coach/internal/player"
)

// CatalogResponse lists the available listening sessions along with the
// playback rates the transport should offer.
type CatalogResponse struct {
	Metadata domain.CatalogMetadata    `json:"metadata"`
	Sessions []domain.ListeningSession `json:"sessions"`
	Rates    []float64                 `json:"rates"`
}

// LoadSessionRequest selects the listening session to load.
type LoadSessionRequest struct {
	SessionID int `json:"sessionId"`
}

// SeekRequest moves the playback position.
type SeekRequest struct {
	Seconds float64 `json:"seconds"`
}

// JumpRequest jumps to a word by index.
type JumpRequest struct {
	Index int `json:"index"`
}

// RateRequest sets the playback speed multiplier.
type RateRequest struct {
	Rate float64 `json:"rate"`
}

// TimeUpdateEvent is the media element's periodic position notification.
type TimeUpdateEvent struct {
	CurrentTime float64 `json:"currentTime"`
}

// LoadedMetadataEvent reports the media duration once known.
type LoadedMetadataEvent struct {
	Duration float64 `json:"duration"`
}

// MediaErrorEvent reports a playback failure from the media element.
type MediaErrorEvent struct {
	Message string `json:"message"`
}

// SpeakResponse carries the resolved pronunciation directive.
type SpeakResponse struct {
	Directive *player.PlaybackDirective `json:"directive"`
}
